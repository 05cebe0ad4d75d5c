package system

import (
	"fmt"
	"log"
	"slices"
	"sync/atomic"

	"github.com/lixenwraith/treasure-haul/core"
	"github.com/lixenwraith/treasure-haul/engine"
	"github.com/lixenwraith/treasure-haul/event"
	"github.com/lixenwraith/treasure-haul/parameter"
)

// GoalSystem tracks delivery of assigned entities into goal regions
type GoalSystem struct {
	world *engine.World
	cs    *engine.ComponentStore

	statDelivered *atomic.Int64
	statComplete  *atomic.Int64

	enabled bool
}

func NewGoalSystem(world *engine.World) *GoalSystem {
	s := &GoalSystem{
		world:         world,
		cs:            &world.Components,
		statDelivered: world.Resources.Status.Ints.Get("goal.delivered"),
		statComplete:  world.Resources.Status.Ints.Get("goal.complete"),
	}
	s.Init()
	return s
}

// Init publishes the initial count of every goal present in the world
func (s *GoalSystem) Init() {
	s.statDelivered.Store(0)
	s.statComplete.Store(0)
	for _, g := range s.cs.Goal.GetAllEntities() {
		s.publish(g)
	}
	s.enabled = true
}

func (s *GoalSystem) Name() string {
	return "goal"
}

func (s *GoalSystem) Priority() int {
	return parameter.PriorityGoal
}

func (s *GoalSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGoalEnter,
		event.EventGoalExit,
	}
}

func (s *GoalSystem) HandleEvent(ev event.GameEvent) {
	if !s.enabled {
		return
	}
	p, ok := ev.Payload.(*event.GoalTriggerPayload)
	if !ok {
		return
	}
	switch ev.Type {
	case event.EventGoalEnter:
		s.OnEnter(p.Goal, p.Entity)
	case event.EventGoalExit:
		s.OnExit(p.Goal, p.Entity)
	}
}

func (s *GoalSystem) Update() {}

// OnEnter admits an assigned entity whose tag matches and retires it from the world
// Reports whether the entity was accepted; repeated entries are idempotent
func (s *GoalSystem) OnEnter(goal, e core.Entity) bool {
	g, ok := s.cs.Goal.GetComponent(goal)
	if !ok || !s.admits(goal, e) {
		return false
	}

	fresh := !g.IsMember(e)
	if fresh {
		g.Members = append(g.Members, e)
	}

	if h, ok := s.cs.Handle.GetComponent(e); ok && h.Transform != nil {
		h.Transform.SetActive(false)
	}

	payload := &event.GoalTriggerPayload{Goal: goal, Entity: e}
	if fresh {
		s.statDelivered.Add(1)
		log.Printf("[goal] %s: entity %d delivered (%d/%d)", g.Name, e, len(g.Members), len(g.Assigned))
		s.world.Emit(event.EventGoalDelivered, payload)
	}

	if g.AllDelivered() && !g.Complete {
		g.Complete = true
		s.statComplete.Add(1)
		log.Printf("[goal] %s: complete", g.Name)
		s.world.Emit(event.EventGoalComplete, payload)
	}

	s.cs.Goal.SetComponent(goal, g)
	s.publish(goal)
	return true
}

// OnExit removes a departing member
func (s *GoalSystem) OnExit(goal, e core.Entity) bool {
	g, ok := s.cs.Goal.GetComponent(goal)
	if !ok || !s.admits(goal, e) {
		return false
	}

	i := slices.Index(g.Members, e)
	if i < 0 {
		return false
	}
	g.Members = slices.Delete(g.Members, i, i+1)
	g.Complete = g.AllDelivered()

	s.cs.Goal.SetComponent(goal, g)
	s.publish(goal)
	return true
}

// AllDelivered reports whether every assigned entity is inside
func (s *GoalSystem) AllDelivered(goal core.Entity) bool {
	g, ok := s.cs.Goal.GetComponent(goal)
	return ok && g.AllDelivered()
}

// admits applies the tag gate and the assignment check
func (s *GoalSystem) admits(goal, e core.Entity) bool {
	g, ok := s.cs.Goal.GetComponent(goal)
	if !ok {
		return false
	}
	sel, ok := s.cs.Selectable.GetComponent(e)
	if !ok || sel.Tag != g.AllowedTag {
		return false
	}
	return g.IsAssigned(e)
}

func (s *GoalSystem) publish(goal core.Entity) {
	g, ok := s.cs.Goal.GetComponent(goal)
	if !ok || g.Display == nil {
		return
	}
	g.Display.SetText(fmt.Sprintf(parameter.CountFormat, len(g.Members), len(g.Assigned)))
}
