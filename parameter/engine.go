package parameter

import "time"

// Game Loop & Engine Timing
const (
	// GameUpdateInterval is the default simulation tick
	GameUpdateInterval = 20 * time.Millisecond

	// MaxTickDelta caps the delta fed to systems after a stall (debugger, suspend)
	MaxTickDelta = 250 * time.Millisecond

	// EventLoopIterations bounds dispatch passes per tick so events emitted by handlers settle in the same tick
	EventLoopIterations = 8

	// DiagSampleInterval is ticks between diagnostics samples
	DiagSampleInterval = 50
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
