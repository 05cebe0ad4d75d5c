package engine

import (
	"time"

	"github.com/lixenwraith/treasure-haul/core"
	"github.com/lixenwraith/treasure-haul/event"
	"github.com/lixenwraith/treasure-haul/parameter"
	"github.com/lixenwraith/treasure-haul/status"
)

// Resource holds singleton game resources, accessed via World.Resources
type Resource struct {
	Time   *TimeResource
	Event  *EventQueueResource
	Config *ConfigResource
	Audio  *AudioResource

	// Telemetry
	Status *status.Registry
}

// TimeResource wraps time data for systems
// It is updated by the ClockScheduler at the start of a tick
type TimeResource struct {
	// GameTime is the current time in the game world (affected by pause)
	GameTime time.Time

	// DeltaTime is the duration since the last tick
	DeltaTime time.Duration

	// FrameNumber is the current tick count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place
// Must be called under world lock to prevent races with system reads
func (tr *TimeResource) Update(gameTime time.Time, deltaTime time.Duration, frameNumber int64) {
	tr.GameTime = gameTime
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// EventQueueResource wraps the event queue for system access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// ConfigResource holds gameplay switches fixed at startup
type ConfigResource struct {
	// RebindPolicy is parameter.RebindDiscard or parameter.RebindRelease
	RebindPolicy string

	// Tether clamps carriers to the treasure carry radius while bound
	Tether bool

	// Seed for effect randomness, 0 picks a time-based seed
	Seed uint64
}

// AudioPlayer plays one-shot effects
// Implementations must be safe to call from the game loop without blocking
type AudioPlayer interface {
	Play(sound core.SoundType) bool
	ToggleMute() bool
}

// AudioResource wraps the optional audio player, Player is nil when audio is disabled
type AudioResource struct {
	Player AudioPlayer
}

// NewResource creates the default resource set
func NewResource() *Resource {
	return &Resource{
		Time:   &TimeResource{},
		Event:  &EventQueueResource{Queue: event.NewEventQueue()},
		Config: &ConfigResource{RebindPolicy: parameter.RebindDiscard},
		Audio:  &AudioResource{},
		Status: status.NewRegistry(),
	}
}
