package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock provides pausable game time on top of a real time source
type PausableClock struct {
	mu sync.RWMutex

	source        TimeSource
	realStartTime time.Time
	gameStartTime time.Time

	isPaused        atomic.Bool
	pauseStartTime  time.Time
	totalPausedTime time.Duration
}

// NewPausableClock creates a clock whose game time starts at the source's current time
func NewPausableClock(source TimeSource) *PausableClock {
	now := source.Now()
	return &PausableClock{
		source:        source,
		realStartTime: now,
		gameStartTime: now,
	}
}

// Now returns current game time, frozen while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		return pc.gameStartTime.Add(pc.pauseStartTime.Sub(pc.realStartTime) - pc.totalPausedTime)
	}
	return pc.gameStartTime.Add(pc.source.Now().Sub(pc.realStartTime) - pc.totalPausedTime)
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		pc.pauseStartTime = pc.source.Now()
		pc.mu.Unlock()
	}
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStartTime)
		pc.pauseStartTime = time.Time{}
		pc.mu.Unlock()
	}
}

// Toggle flips pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.isPaused.Load() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}
