package system

import (
	"fmt"
	"log"
	"sync/atomic"

	"github.com/lixenwraith/treasure-haul/component"
	"github.com/lixenwraith/treasure-haul/core"
	"github.com/lixenwraith/treasure-haul/engine"
	"github.com/lixenwraith/treasure-haul/event"
	"github.com/lixenwraith/treasure-haul/input"
	"github.com/lixenwraith/treasure-haul/parameter"
)

// SelectionSystem owns the roster and the active treasure
// All roster mutation happens here; carry and movement receive explicit snapshots
type SelectionSystem struct {
	world     *engine.World
	cs        *engine.ComponentStore
	raycaster input.Raycaster
	carry     *CarrySystem
	movement  *MovementSystem

	roster   Roster
	treasure core.Entity // Active treasure, 0 when none

	statRejected *atomic.Int64
	statFaults   *atomic.Int64

	enabled bool
}

// NewSelectionSystem creates the selection system
func NewSelectionSystem(world *engine.World, raycaster input.Raycaster, carry *CarrySystem, movement *MovementSystem) *SelectionSystem {
	s := &SelectionSystem{
		world:     world,
		cs:        &world.Components,
		raycaster: raycaster,
		carry:     carry,
		movement:  movement,

		statRejected: world.Resources.Status.Ints.Get("selection.rejected"),
		statFaults:   world.Resources.Status.Ints.Get("selection.faults"),
	}
	s.Init()
	return s
}

func (s *SelectionSystem) Init() {
	s.roster = Roster{}
	s.treasure = 0
	s.statRejected.Store(0)
	s.statFaults.Store(0)
	s.enabled = true
}

func (s *SelectionSystem) Name() string {
	return "selection"
}

func (s *SelectionSystem) Priority() int {
	return parameter.PrioritySelection
}

func (s *SelectionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPointerPrimary,
		event.EventPointerSecondary,
	}
}

func (s *SelectionSystem) HandleEvent(ev event.GameEvent) {
	if !s.enabled {
		return
	}

	var err error
	switch ev.Type {
	case event.EventPointerPrimary:
		if p, ok := ev.Payload.(*event.PointerPayload); ok {
			err = s.OnPrimaryClick(p.X, p.Y)
		}
	case event.EventPointerSecondary:
		err = s.OnSecondaryClick()
	}

	if err != nil {
		s.statFaults.Add(1)
		log.Printf("[selection] %v", err)
	}
}

// Update has no tick logic, selection is event driven
func (s *SelectionSystem) Update() {}

// Roster returns a snapshot of the current roster
func (s *SelectionSystem) Roster() Roster {
	return s.roster.Clone()
}

// ActiveTreasure returns the treasure being assembled or carried
func (s *SelectionSystem) ActiveTreasure() (core.Entity, bool) {
	return s.treasure, s.treasure != 0
}

// OnPrimaryClick routes a click to selection, or to movement when nothing selectable is hit
func (s *SelectionSystem) OnPrimaryClick(col, row int) error {
	hit, ok := s.raycaster.Raycast(col, row, input.LayerSelectable)
	if !ok {
		s.world.Emit(event.EventMoveRequest, &event.PointerPayload{X: col, Y: row})
		return nil
	}

	sel, ok := s.cs.Selectable.GetComponent(hit.Entity)
	if !ok {
		return core.NewFault(core.ErrMissingCollaborator, hit.Entity, "no selectable state")
	}

	switch sel.Kind {
	case core.KindTreasure:
		return s.SelectTreasure(hit.Entity)
	default:
		return s.SelectCharacter(hit.Entity)
	}
}

// OnSecondaryClick releases everything
func (s *SelectionSystem) OnSecondaryClick() error {
	return s.ReleaseAll()
}

// SelectTreasure clears the roster and starts assembling carriers for t
func (s *SelectionSystem) SelectTreasure(t core.Entity) error {
	tc, ok := s.cs.Treasure.GetComponent(t)
	if !ok {
		return core.NewFault(core.ErrMissingCollaborator, t, "no treasure state")
	}

	var err error
	if s.world.Resources.Config.RebindPolicy == parameter.RebindRelease {
		err = s.ReleaseAll()
	} else {
		s.discard()
	}

	s.setSelected(t, true)
	s.roster.add(t)
	s.treasure = t
	s.movement.Publish(s.roster)
	s.publishCount(t, tc)

	s.emitSound(core.SoundSelect)
	s.emitChanged()
	return err
}

// SelectCharacter adds c as a carrier while a treasure is active, otherwise makes c the sole selection
func (s *SelectionSystem) SelectCharacter(c core.Entity) error {
	if s.treasure == 0 {
		if err := s.ReleaseAll(); err != nil {
			log.Printf("[selection] %v", err)
		}
		s.setSelected(c, true)
		s.roster.add(c)
		s.movement.Publish(s.roster)

		s.emitSound(core.SoundSelect)
		s.emitChanged()
		return nil
	}

	carrier, ok := s.cs.Carrier.GetComponent(c)
	if !ok {
		return core.NewFault(core.ErrMissingCollaborator, c, "no carrier state")
	}
	if s.roster.Contains(c) {
		return s.reject(c, "already selected")
	}
	if carrier.IsCarrying {
		return s.reject(c, "already carrying")
	}

	tc, ok := s.cs.Treasure.GetComponent(s.treasure)
	if !ok {
		return core.NewFault(core.ErrMissingCollaborator, s.treasure, "no treasure state")
	}

	s.roster.add(c)
	s.setSelected(c, true)
	carrier.IsCarrying = true
	s.cs.Carrier.SetComponent(c, carrier)
	// Carriers below weight still take move orders
	s.movement.Publish(s.roster)

	if s.carrierCount() >= tc.Weight {
		s.carry.Bind(s.treasure, s.carriers())
	}

	s.publishCount(s.treasure, tc)
	s.emitSound(core.SoundSelect)
	s.emitChanged()
	return nil
}

// ReleaseAll drops or restricts the active treasure, then clears every selection flag
// Returns an InsufficientCarriers fault when the release was below weight
// Idempotent on an empty roster
func (s *SelectionSystem) ReleaseAll() error {
	var err error

	if s.treasure != 0 {
		t := s.treasure
		count := s.carrierCount()
		tc, _ := s.cs.Treasure.GetComponent(t)

		if count >= tc.Weight {
			if p, ok := s.carry.Centroid(s.roster.Members, IsCarrying); ok {
				s.carry.Drop(t, p, count)
			} else {
				err = core.NewFault(core.ErrEmptyCentroid, t, "drop skipped")
			}
		} else {
			err = core.NewFault(core.ErrInsufficientCarriers, t, fmt.Sprintf(parameter.CountFormat, count, tc.Weight))
			for _, c := range s.roster.Members {
				if cc, ok := s.cs.Carrier.GetComponent(c); ok && cc.IsCarrying {
					s.carry.Restrict(c, t)
				}
			}
		}

		s.clear()
		s.publishCount(t, tc)
		return err
	}

	s.clear()
	return nil
}

// discard clears the roster and binding without the drop or restriction check
func (s *SelectionSystem) discard() {
	if b, ok := s.carry.Binding(); ok {
		log.Printf("[selection] binding of treasure %d discarded", b.Treasure)
	}
	t := s.treasure
	s.clear()
	if tc, ok := s.cs.Treasure.GetComponent(t); ok && t != 0 {
		s.publishCount(t, tc)
	}
}

// clear resets flags on every member and republishes the empty roster
func (s *SelectionSystem) clear() {
	for _, e := range s.roster.Members {
		s.setSelected(e, false)
		if c, ok := s.cs.Carrier.GetComponent(e); ok && c.IsCarrying {
			c.IsCarrying = false
			s.cs.Carrier.SetComponent(e, c)
		}
	}
	s.roster.reset()
	s.treasure = 0
	s.carry.Unbind()
	s.movement.Publish(s.roster)
	s.emitChanged()
}

func (s *SelectionSystem) reject(c core.Entity, reason string) error {
	err := core.NewFault(core.ErrInvalidSelection, c, reason)
	s.statRejected.Add(1)
	s.world.Emit(event.EventSelectionRejected, &event.FaultPayload{Err: err})
	return err
}

// setSelected toggles the flag and the entity's selection indicator
func (s *SelectionSystem) setSelected(e core.Entity, selected bool) {
	sel, ok := s.cs.Selectable.GetComponent(e)
	if !ok {
		return
	}
	sel.Selected = selected
	s.cs.Selectable.SetComponent(e, sel)

	if h, ok := s.cs.Handle.GetComponent(e); ok && h.Transform != nil {
		h.Transform.SetIndicatorVisible(parameter.IndicatorTag, selected)
	}
}

// carrierCount is the roster size excluding the active treasure
func (s *SelectionSystem) carrierCount() int {
	if s.treasure == 0 {
		return 0
	}
	return s.roster.Len() - 1
}

// carriers returns roster characters in selection order
func (s *SelectionSystem) carriers() []core.Entity {
	out := make([]core.Entity, 0, s.roster.Len())
	for _, e := range s.roster.Members {
		if e != s.treasure {
			out = append(out, e)
		}
	}
	return out
}

// publishCount mirrors the carrier count into treasure state and its display
// An inactive treasure always shows zero carriers
func (s *SelectionSystem) publishCount(t core.Entity, tc component.TreasureComponent) {
	current := 0
	if t == s.treasure {
		current = s.carrierCount()
	}
	tc.CurrentCarriers = current
	s.cs.Treasure.SetComponent(t, tc)

	if h, ok := s.cs.Handle.GetComponent(t); ok && h.Display != nil {
		h.Display.SetText(fmt.Sprintf(parameter.CountFormat, current, tc.Weight))
	}
	s.world.Emit(event.EventCarrierCountChanged, &event.CarrierCountPayload{
		Treasure: t,
		Current:  current,
		Weight:   tc.Weight,
	})
}

func (s *SelectionSystem) emitChanged() {
	s.world.Emit(event.EventSelectionChanged, &event.SelectionPayload{
		Roster:   s.roster.Clone().Members,
		Treasure: s.treasure,
	})
}

func (s *SelectionSystem) emitSound(sound core.SoundType) {
	s.world.Emit(event.EventSoundRequest, &event.SoundRequestPayload{Sound: sound})
}
