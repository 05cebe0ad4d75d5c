package system

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/treasure-haul/core"
	"github.com/lixenwraith/treasure-haul/engine"
	"github.com/lixenwraith/treasure-haul/event"
	"github.com/lixenwraith/treasure-haul/parameter"
	"github.com/lixenwraith/treasure-haul/status"
)

// HudSystem mirrors selection events into the status bar gauges
type HudSystem struct {
	world *engine.World
	cs    *engine.ComponentStore

	active core.Entity
	counts map[core.Entity]string // Last published "n/m" per treasure

	statSize     *atomic.Int64
	statTreasure *status.AtomicString
	statCarriers *status.AtomicString

	enabled bool
}

func NewHudSystem(world *engine.World) *HudSystem {
	reg := world.Resources.Status
	s := &HudSystem{
		world: world,
		cs:    &world.Components,

		statSize:     reg.Ints.Get("selection.size"),
		statTreasure: reg.Strings.Get("selection.treasure"),
		statCarriers: reg.Strings.Get("selection.carriers"),
	}
	s.Init()
	return s
}

func (s *HudSystem) Init() {
	s.active = 0
	s.counts = make(map[core.Entity]string)
	s.statSize.Store(0)
	s.statTreasure.Store("")
	s.statCarriers.Store("")
	s.enabled = true
}

func (s *HudSystem) Name() string {
	return "hud"
}

func (s *HudSystem) Priority() int {
	return parameter.PriorityHud
}

func (s *HudSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSelectionChanged,
		event.EventCarrierCountChanged,
	}
}

func (s *HudSystem) HandleEvent(ev event.GameEvent) {
	if !s.enabled {
		return
	}

	switch ev.Type {
	case event.EventSelectionChanged:
		p, ok := ev.Payload.(*event.SelectionPayload)
		if !ok {
			return
		}
		s.active = p.Treasure
		s.statSize.Store(int64(len(p.Roster)))

		name := ""
		if sel, ok := s.cs.Selectable.GetComponent(p.Treasure); ok && p.Treasure != 0 {
			name = sel.Name
		}
		s.statTreasure.Store(name)

	case event.EventCarrierCountChanged:
		p, ok := ev.Payload.(*event.CarrierCountPayload)
		if !ok {
			return
		}
		s.counts[p.Treasure] = fmt.Sprintf(parameter.CountFormat, p.Current, p.Weight)
	}

	if s.active == 0 {
		s.statCarriers.Store("")
		return
	}
	s.statCarriers.Store(s.counts[s.active])
}

// Update has no tick logic, gauges follow events
func (s *HudSystem) Update() {}
