package system

import (
	"sync/atomic"

	"github.com/lixenwraith/treasure-haul/engine"
	"github.com/lixenwraith/treasure-haul/parameter"
)

// stepper is implemented by agents that integrate in-process
// Agents driven externally are skipped
type stepper interface {
	Step(dt float64)
}

// NavigationSystem advances every navigation agent by the tick delta
type NavigationSystem struct {
	world *engine.World
	cs    *engine.ComponentStore

	statMoving *atomic.Int64

	enabled bool
}

func NewNavigationSystem(world *engine.World) *NavigationSystem {
	s := &NavigationSystem{
		world:      world,
		cs:         &world.Components,
		statMoving: world.Resources.Status.Ints.Get("nav.moving"),
	}
	s.Init()
	return s
}

func (s *NavigationSystem) Init() {
	s.enabled = true
}

func (s *NavigationSystem) Name() string {
	return "navigation"
}

func (s *NavigationSystem) Priority() int {
	return parameter.PriorityNavigation
}

func (s *NavigationSystem) Update() {
	if !s.enabled {
		return
	}
	dt := s.world.Resources.Time.DeltaTime.Seconds()

	var moving int64
	for _, e := range s.cs.Handle.GetAllEntities() {
		h, ok := s.cs.Handle.GetComponent(e)
		if !ok || h.Agent == nil {
			continue
		}
		if st, ok := h.Agent.(stepper); ok {
			st.Step(dt)
		}
		if !stopped(h.Agent) {
			moving++
		}
	}
	s.statMoving.Store(moving)
}
