package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/treasure-haul/parameter"
)

// ClockScheduler drives the world on a fixed tick
// Each tick: advance TimeResource, dispatch events, run systems
type ClockScheduler struct {
	world *World
	clock *PausableClock

	tickInterval time.Duration
	lastTick     time.Time
	frame        int64

	tickCount atomic.Uint64

	// AfterTick runs on the loop goroutine once per tick, under the world lock
	AfterTick func()
}

// NewClockScheduler creates a scheduler over the given pausable clock
func NewClockScheduler(world *World, clock *PausableClock, tickInterval time.Duration) *ClockScheduler {
	if tickInterval <= 0 {
		tickInterval = parameter.GameUpdateInterval
	}
	return &ClockScheduler{
		world:        world,
		clock:        clock,
		tickInterval: tickInterval,
		lastTick:     clock.Now(),
	}
}

// Step executes exactly one tick using elapsed game time since the previous step
// While paused the delta is zero and systems still run so selection stays responsive
func (cs *ClockScheduler) Step() {
	now := cs.clock.Now()
	dt := now.Sub(cs.lastTick)
	if dt < 0 {
		dt = 0
	}
	if dt > parameter.MaxTickDelta {
		dt = parameter.MaxTickDelta
	}
	cs.lastTick = now
	cs.frame++

	cs.world.RunSafe(func() {
		cs.world.Resources.Time.Update(now, dt, cs.frame)
		cs.world.UpdateLocked()
		if cs.AfterTick != nil {
			cs.AfterTick()
		}
	})
	cs.tickCount.Add(1)
	cs.world.Resources.Status.Ints.Get("engine.ticks").Store(int64(cs.tickCount.Load()))
}

// Run ticks until ctx is canceled
func (cs *ClockScheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(cs.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			cs.Step()
		}
	}
}

// TickCount returns the number of completed ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}
