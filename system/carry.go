package system

import (
	"fmt"
	"log"
	"sync/atomic"

	"github.com/lixenwraith/treasure-haul/component"
	"github.com/lixenwraith/treasure-haul/core"
	"github.com/lixenwraith/treasure-haul/engine"
	"github.com/lixenwraith/treasure-haul/event"
	"github.com/lixenwraith/treasure-haul/parameter"
	"github.com/lixenwraith/treasure-haul/vmath"
)

// Binding associates the active treasure with the carriers that satisfied its weight
type Binding struct {
	Treasure core.Entity
	Carriers []core.Entity
}

// CarrierPredicate filters centroid contributors
type CarrierPredicate func(e core.Entity, c component.CarrierComponent) bool

// IsCarrying selects characters flagged as carrying
func IsCarrying(_ core.Entity, c component.CarrierComponent) bool {
	return c.IsCarrying
}

// CarrySystem keeps a bound treasure at its carriers' centroid and resolves drops and restrictions
type CarrySystem struct {
	world *engine.World
	cs    *engine.ComponentStore

	binding Binding
	bound   bool

	statActive     *atomic.Bool
	statBound      *atomic.Int64
	statDrops      *atomic.Int64
	statRestricted *atomic.Int64

	enabled bool
}

// NewCarrySystem creates the carry system
func NewCarrySystem(world *engine.World) *CarrySystem {
	s := &CarrySystem{
		world: world,
		cs:    &world.Components,

		statActive:     world.Resources.Status.Bools.Get("carry.active"),
		statBound:      world.Resources.Status.Ints.Get("carry.bound"),
		statDrops:      world.Resources.Status.Ints.Get("carry.drops"),
		statRestricted: world.Resources.Status.Ints.Get("carry.restricted"),
	}
	s.Init()
	return s
}

// Init resets session state
func (s *CarrySystem) Init() {
	s.binding = Binding{}
	s.bound = false
	s.statActive.Store(false)
	s.statBound.Store(0)
	s.statDrops.Store(0)
	s.statRestricted.Store(0)
	s.enabled = true
}

func (s *CarrySystem) Name() string {
	return "carry"
}

func (s *CarrySystem) Priority() int {
	return parameter.PriorityCarry
}

// Update moves the bound treasure to the carrier centroid
func (s *CarrySystem) Update() {
	if !s.enabled || !s.bound {
		return
	}
	s.Follow()

	if s.world.Resources.Config.Tether {
		s.tether()
	}
}

// Bind records a binding, characters stay flagged as carrying until release
// Rebinding the same treasure replaces its carrier set silently
func (s *CarrySystem) Bind(treasure core.Entity, carriers []core.Entity) {
	rebind := s.bound && s.binding.Treasure == treasure
	s.binding = Binding{Treasure: treasure, Carriers: append([]core.Entity(nil), carriers...)}
	s.bound = true
	s.statActive.Store(true)
	if rebind {
		return
	}
	s.statBound.Add(1)

	log.Printf("[carry] treasure %d bound to %d carriers", treasure, len(carriers))
	s.world.Emit(event.EventCarryBound, &event.CarryPayload{
		Treasure: treasure,
		Carriers: s.binding.Carriers,
	})
}

// Unbind drops the binding without touching entity state
func (s *CarrySystem) Unbind() {
	s.binding = Binding{}
	s.bound = false
	s.statActive.Store(false)
}

// Binding returns the active binding
func (s *CarrySystem) Binding() (Binding, bool) {
	return s.binding, s.bound
}

// Centroid averages the positions of entities accepted by pred
// Entities without a transform or carrier state are skipped
// Returns false when nothing qualifies
func (s *CarrySystem) Centroid(entities []core.Entity, pred CarrierPredicate) (vmath.Vec3F, bool) {
	points := make([]vmath.Vec3F, 0, len(entities))
	for _, e := range entities {
		c, ok := s.cs.Carrier.GetComponent(e)
		if !ok || !pred(e, c) {
			continue
		}
		h, ok := s.cs.Handle.GetComponent(e)
		if !ok || h.Transform == nil {
			continue
		}
		points = append(points, h.Transform.Position())
	}
	return vmath.V3FMean(points)
}

// Follow places the bound treasure at the centroid of its carriers
// Keeps the last position when no carrier qualifies
func (s *CarrySystem) Follow() {
	if !s.bound {
		return
	}
	p, ok := s.Centroid(s.binding.Carriers, IsCarrying)
	if !ok {
		return
	}
	if h, ok := s.cs.Handle.GetComponent(s.binding.Treasure); ok && h.Transform != nil {
		h.Transform.SetPosition(p)
	}
}

// EnforceRadius clamps a character onto the treasure's carry sphere
// Reports whether the character was moved
func (s *CarrySystem) EnforceRadius(character, treasure core.Entity) (bool, error) {
	ch, ok := s.cs.Handle.GetComponent(character)
	if !ok || ch.Transform == nil {
		return false, core.NewFault(core.ErrMissingCollaborator, character, "no transform")
	}
	th, ok := s.cs.Handle.GetComponent(treasure)
	if !ok || th.Transform == nil {
		return false, core.NewFault(core.ErrMissingCollaborator, treasure, "no transform")
	}
	tc, ok := s.cs.Treasure.GetComponent(treasure)
	if !ok {
		return false, core.NewFault(core.ErrMissingCollaborator, treasure, "no treasure state")
	}

	p, clamped := vmath.V3FClampToSphere(ch.Transform.Position(), th.Transform.Position(), tc.CarryRadius)
	if clamped {
		ch.Transform.SetPosition(p)
	}
	return clamped, nil
}

// TriggerRestrictedEffect starts a shake on the character, superseding any in-flight one
// The origin captured is the pre-effect state, so restoration after a retrigger is exact
func (s *CarrySystem) TriggerRestrictedEffect(character core.Entity) error {
	h, ok := s.cs.Handle.GetComponent(character)
	if !ok || h.Transform == nil || h.Material == nil {
		return core.NewFault(core.ErrMissingCollaborator, character, "no material")
	}
	c, ok := s.cs.Carrier.GetComponent(character)
	if !ok {
		return core.NewFault(core.ErrMissingCollaborator, character, "no carrier state")
	}

	s.CancelEffect(character)

	s.cs.Shake.SetComponent(character, component.ShakeComponent{
		Duration:       c.ShakeDuration,
		Amplitude:      c.ShakeAmplitude,
		OriginPosition: h.Transform.Position(),
		OriginColor:    h.Material.Color(),
	})
	h.Material.SetColor(c.RestrictedColor)
	return nil
}

// CancelEffect restores and removes an in-flight shake, no-op when idle
func (s *CarrySystem) CancelEffect(character core.Entity) {
	cancelShake(s.cs, character)
}

// Restrict applies the insufficient-release consequence to one carrier
// The carrier is clamped even when the visual effect cannot run
func (s *CarrySystem) Restrict(character, treasure core.Entity) {
	s.CancelEffect(character)

	clamped, err := s.EnforceRadius(character, treasure)
	if err != nil {
		log.Printf("[carry] restrict %d: %v", character, err)
		return
	}
	if err := s.TriggerRestrictedEffect(character); err != nil {
		log.Printf("[carry] restrict %d: %v", character, err)
	}

	s.statRestricted.Add(1)
	s.world.Emit(event.EventCarryRestricted, &event.RestrictPayload{
		Treasure: treasure,
		Carrier:  character,
		Clamped:  clamped,
	})
}

// Drop places the treasure at p
func (s *CarrySystem) Drop(treasure core.Entity, p vmath.Vec3F, carriers int) {
	if h, ok := s.cs.Handle.GetComponent(treasure); ok && h.Transform != nil {
		h.Transform.SetPosition(p)
	}
	s.statDrops.Add(1)

	log.Printf("[carry] treasure %d dropped at %s by %d carriers", treasure, fmtVec(p), carriers)
	s.world.Emit(event.EventTreasureDropped, &event.DropPayload{
		Treasure: treasure,
		Position: p,
		Carriers: carriers,
	})
}

// tether keeps every bound carrier within the treasure's carry radius
func (s *CarrySystem) tether() {
	for _, c := range s.binding.Carriers {
		if s.cs.Shake.HasComponent(c) {
			continue
		}
		if _, err := s.EnforceRadius(c, s.binding.Treasure); err != nil {
			log.Printf("[carry] tether %d: %v", c, err)
		}
	}
}

func fmtVec(p vmath.Vec3F) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", p.X, p.Y, p.Z)
}
