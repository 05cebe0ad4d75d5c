package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/treasure-haul/engine"
	"github.com/lixenwraith/treasure-haul/parameter"
	"github.com/lixenwraith/treasure-haul/status"
	"github.com/lixenwraith/treasure-haul/vmath"
)

// DiagSystem samples store sizes and carry/goal consistency into the status registry
type DiagSystem struct {
	world *engine.World
	cs    *engine.ComponentStore

	tickCounter int64

	// Store counts
	statSelectableCount *atomic.Int64
	statTreasureCount   *atomic.Int64
	statShakeCount      *atomic.Int64
	statMarkerCount     *atomic.Int64
	statGoalCount       *atomic.Int64

	// Consistency checks
	statCarryMismatch    *atomic.Int64
	statUnassignedMember *atomic.Int64
	statInactiveCarrier  *atomic.Int64

	// Farthest carrier from its treasure, current and peak
	statCarrySpread     *status.AtomicFloat
	statCarrySpreadPeak *status.AtomicFloat

	// Queue health
	statEventsDropped *atomic.Int64

	enabled bool
}

func NewDiagSystem(world *engine.World) *DiagSystem {
	reg := world.Resources.Status

	s := &DiagSystem{
		world: world,
		cs:    &world.Components,

		statSelectableCount: reg.Ints.Get("diag.selectable"),
		statTreasureCount:   reg.Ints.Get("diag.treasure"),
		statShakeCount:      reg.Ints.Get("diag.shake"),
		statMarkerCount:     reg.Ints.Get("diag.marker"),
		statGoalCount:       reg.Ints.Get("diag.goal"),

		statCarryMismatch:    reg.Ints.Get("consistency.carry_mismatch"),
		statUnassignedMember: reg.Ints.Get("consistency.unassigned_member"),
		statInactiveCarrier:  reg.Ints.Get("consistency.inactive_carrier"),

		statCarrySpread:     reg.Floats.Get("diag.carry_spread"),
		statCarrySpreadPeak: reg.Floats.Get("diag.carry_spread_peak"),

		statEventsDropped: reg.Ints.Get("diag.events_dropped"),
	}

	s.Init()
	return s
}

func (s *DiagSystem) Init() {
	s.tickCounter = 0
	s.enabled = true
}

func (s *DiagSystem) Name() string {
	return "diagnostics"
}

func (s *DiagSystem) Priority() int {
	return parameter.PriorityDiag
}

func (s *DiagSystem) Update() {
	if !s.enabled {
		return
	}

	s.tickCounter++
	if s.tickCounter%parameter.DiagSampleInterval != 0 {
		return
	}
	s.Sample()
}

// Sample collects all metrics immediately
func (s *DiagSystem) Sample() {
	s.statSelectableCount.Store(int64(s.cs.Selectable.CountEntity()))
	s.statTreasureCount.Store(int64(s.cs.Treasure.CountEntity()))
	s.statShakeCount.Store(int64(s.cs.Shake.CountEntity()))
	s.statMarkerCount.Store(int64(s.cs.Marker.CountEntity()))
	s.statGoalCount.Store(int64(s.cs.Goal.CountEntity()))
	s.statEventsDropped.Store(int64(s.world.Resources.Event.Queue.Dropped()))

	s.collectConsistencyChecks()
}

func (s *DiagSystem) collectConsistencyChecks() {
	// Carrying characters must equal the carriers recorded on treasures
	var carrying, recorded, inactive int64
	var carried []vmath.Vec3F
	for _, e := range s.cs.Carrier.GetAllEntities() {
		c, ok := s.cs.Carrier.GetComponent(e)
		if !ok || !c.IsCarrying {
			continue
		}
		carrying++
		h, ok := s.cs.Handle.GetComponent(e)
		if !ok || h.Transform == nil {
			continue
		}
		if !h.Transform.Active() {
			inactive++
		}
		carried = append(carried, h.Transform.Position())
	}

	// At most one treasure has carriers at a time
	spread := 0.0
	for _, e := range s.cs.Treasure.GetAllEntities() {
		t, ok := s.cs.Treasure.GetComponent(e)
		if !ok || t.CurrentCarriers == 0 {
			continue
		}
		recorded += int64(t.CurrentCarriers)
		if h, ok := s.cs.Handle.GetComponent(e); ok && h.Transform != nil {
			for _, p := range carried {
				spread = max(spread, vmath.V3FDistance(p, h.Transform.Position()))
			}
		}
	}
	s.statCarrySpread.Store(spread)
	s.statCarrySpreadPeak.Max(spread)
	mismatch := carrying - recorded
	if mismatch < 0 {
		mismatch = -mismatch
	}

	// Goal membership must stay within the assignment
	var unassigned int64
	for _, e := range s.cs.Goal.GetAllEntities() {
		g, ok := s.cs.Goal.GetComponent(e)
		if !ok {
			continue
		}
		for _, m := range g.Members {
			if !g.IsAssigned(m) {
				unassigned++
			}
		}
	}

	if mismatch != 0 && s.statCarryMismatch.Load() == 0 {
		log.Printf("[diag] carry mismatch: %d carrying, %d recorded", carrying, recorded)
	}
	s.statCarryMismatch.Store(mismatch)
	s.statUnassignedMember.Store(unassigned)
	s.statInactiveCarrier.Store(inactive)
}
