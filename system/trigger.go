package system

import (
	"github.com/lixenwraith/treasure-haul/engine"
	"github.com/lixenwraith/treasure-haul/event"
	"github.com/lixenwraith/treasure-haul/parameter"
	"github.com/lixenwraith/treasure-haul/physics"
)

// TriggerSystem detects selectables crossing goal volumes and emits enter/exit events
type TriggerSystem struct {
	world *engine.World
	cs    *engine.ComponentStore

	samples []physics.Sample

	enabled bool
}

func NewTriggerSystem(world *engine.World) *TriggerSystem {
	s := &TriggerSystem{
		world: world,
		cs:    &world.Components,
	}
	s.Init()
	return s
}

func (s *TriggerSystem) Init() {
	s.samples = s.samples[:0]
	s.enabled = true
}

func (s *TriggerSystem) Name() string {
	return "trigger"
}

func (s *TriggerSystem) Priority() int {
	return parameter.PriorityTrigger
}

func (s *TriggerSystem) Update() {
	if !s.enabled {
		return
	}

	s.samples = s.samples[:0]
	for _, e := range s.cs.Selectable.GetAllEntities() {
		h, ok := s.cs.Handle.GetComponent(e)
		if !ok || h.Transform == nil {
			continue
		}
		s.samples = append(s.samples, physics.Sample{
			Entity:   e,
			Position: h.Transform.Position(),
			Active:   h.Transform.Active(),
		})
	}

	for _, g := range s.cs.Volume.GetAllEntities() {
		vol, ok := s.cs.Volume.GetComponent(g)
		if !ok {
			continue
		}
		entered, exited := physics.Sweep(&vol, s.samples)
		s.cs.Volume.SetComponent(g, vol)

		for _, e := range entered {
			s.world.Emit(event.EventGoalEnter, &event.GoalTriggerPayload{Goal: g, Entity: e})
		}
		for _, e := range exited {
			s.world.Emit(event.EventGoalExit, &event.GoalTriggerPayload{Goal: g, Entity: e})
		}
	}
}
