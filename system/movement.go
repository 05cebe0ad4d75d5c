package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/treasure-haul/component"
	"github.com/lixenwraith/treasure-haul/core"
	"github.com/lixenwraith/treasure-haul/engine"
	"github.com/lixenwraith/treasure-haul/event"
	"github.com/lixenwraith/treasure-haul/input"
	"github.com/lixenwraith/treasure-haul/parameter"
	"github.com/lixenwraith/treasure-haul/vmath"
)

// MovementSystem turns ground clicks into move orders for the published roster
// and owns the destination marker
type MovementSystem struct {
	world     *engine.World
	cs        *engine.ComponentStore
	raycaster input.Raycaster
	carry     *CarrySystem

	roster Roster
	marker core.Entity // 0 when no marker exists

	statOrders  *atomic.Int64
	statCleared *atomic.Int64

	enabled bool
}

// NewMovementSystem creates the movement system
func NewMovementSystem(world *engine.World, raycaster input.Raycaster, carry *CarrySystem) *MovementSystem {
	s := &MovementSystem{
		world:     world,
		cs:        &world.Components,
		raycaster: raycaster,
		carry:     carry,

		statOrders:  world.Resources.Status.Ints.Get("movement.orders"),
		statCleared: world.Resources.Status.Ints.Get("movement.arrivals"),
	}
	s.Init()
	return s
}

func (s *MovementSystem) Init() {
	s.destroyMarker()
	s.roster = Roster{}
	s.statOrders.Store(0)
	s.statCleared.Store(0)
	s.enabled = true
}

func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

func (s *MovementSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMoveRequest,
		event.EventGoalDelivered,
	}
}

func (s *MovementSystem) HandleEvent(ev event.GameEvent) {
	if !s.enabled {
		return
	}
	switch ev.Type {
	case event.EventMoveRequest:
		if p, ok := ev.Payload.(*event.PointerPayload); ok {
			s.onMoveRequest(p)
		}
	case event.EventGoalDelivered:
		if p, ok := ev.Payload.(*event.GoalTriggerPayload); ok {
			s.stopAgent(p.Entity)
		}
	}
}

func (s *MovementSystem) onMoveRequest(p *event.PointerPayload) {
	if s.roster.Len() == 0 {
		return
	}
	hit, ok := s.raycaster.Raycast(p.X, p.Y, input.LayerGround)
	if !ok {
		return
	}
	s.IssueMove(hit.Point)
}

// stopAgent ends the path of a delivered entity
func (s *MovementSystem) stopAgent(e core.Entity) {
	if h, ok := s.cs.Handle.GetComponent(e); ok && h.Agent != nil {
		h.Agent.Stop()
	}
}

// Update clears the marker once every roster agent has settled
func (s *MovementSystem) Update() {
	if !s.enabled || s.marker == 0 {
		return
	}
	if s.allStopped() {
		s.destroyMarker()
		s.statCleared.Add(1)
		s.world.Emit(event.EventMarkerCleared, nil)
	}
}

// Publish replaces the roster move orders apply to
func (s *MovementSystem) Publish(r Roster) {
	s.roster = r.Clone()
}

// Roster returns the published roster
func (s *MovementSystem) Roster() Roster {
	return s.roster
}

// Marker returns the live marker entity
func (s *MovementSystem) Marker() (core.Entity, bool) {
	return s.marker, s.marker != 0
}

// IssueMove replaces the marker and sends every roster character with an agent to target
// Returns the number of agents ordered
func (s *MovementSystem) IssueMove(target vmath.Vec3F) int {
	s.destroyMarker()
	s.marker = s.world.CreateEntity()
	s.cs.Marker.SetComponent(s.marker, component.MarkerComponent{
		Position: target,
		Tag:      parameter.MarkerTag,
	})

	agents := 0
	for _, e := range s.roster.Members {
		sel, ok := s.cs.Selectable.GetComponent(e)
		if !ok || sel.Kind != core.KindCharacter {
			continue
		}
		h, ok := s.cs.Handle.GetComponent(e)
		if !ok || h.Agent == nil {
			continue
		}
		// A new order supersedes a running restriction effect
		s.carry.CancelEffect(e)
		h.Agent.SetDestination(target)
		agents++
	}

	s.carry.Follow()
	s.statOrders.Add(1)

	log.Printf("[movement] order to %s for %d agents", fmtVec(target), agents)
	s.world.Emit(event.EventMoveIssued, &event.MovePayload{Target: target, Agents: agents})
	return agents
}

// allStopped is vacuously true for a roster with no navigable characters
// Retired (inactive) characters no longer count
func (s *MovementSystem) allStopped() bool {
	for _, e := range s.roster.Members {
		h, ok := s.cs.Handle.GetComponent(e)
		if !ok || h.Agent == nil || (h.Transform != nil && !h.Transform.Active()) {
			continue
		}
		if !stopped(h.Agent) {
			return false
		}
	}
	return true
}

func stopped(a component.Agent) bool {
	return !a.PathPending() && a.RemainingDistance() <= a.StoppingDistance()
}

func (s *MovementSystem) destroyMarker() {
	if s.marker == 0 {
		return
	}
	s.world.DestroyEntity(s.marker)
	s.marker = 0
}
