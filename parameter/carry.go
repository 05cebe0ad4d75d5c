package parameter

import "time"

// Treasure Defaults
const (
	// DefaultTreasureWeight is the number of carriers required when a scene omits weight
	DefaultTreasureWeight = 1

	// DefaultCarryRadius is the tether radius around a treasure in world units
	DefaultCarryRadius = 5.0
)

// Restriction Effect
const (
	// DefaultShakeAmplitude is the max jitter offset per axis in world units
	DefaultShakeAmplitude = 0.2

	// DefaultShakeDuration is how long a restricted character shakes before restore
	DefaultShakeDuration = 500 * time.Millisecond
)

// Navigation Agent Defaults
const (
	// DefaultAgentSpeed is world units per second
	DefaultAgentSpeed = 6.0

	// DefaultStoppingDistance is the arrival tolerance in world units
	DefaultStoppingDistance = 0.25
)

// Rebind policies for selecting a treasure while another is active
const (
	RebindDiscard = "discard"
	RebindRelease = "release"
)
