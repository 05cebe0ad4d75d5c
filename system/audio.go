package system

import (
	"sync/atomic"

	"github.com/lixenwraith/treasure-haul/core"
	"github.com/lixenwraith/treasure-haul/engine"
	"github.com/lixenwraith/treasure-haul/event"
	"github.com/lixenwraith/treasure-haul/parameter"
)

// AudioSystem maps game events to one-shot sounds
// Decouples game systems from direct audio engine access
type AudioSystem struct {
	world *engine.World

	// Last frame each sound played, collapses per-carrier bursts into one cue
	lastFrame [core.SoundTypeCount]int64

	statPlayed *atomic.Int64

	enabled bool
}

// NewAudioSystem creates an audio system, the world's player may be nil
func NewAudioSystem(world *engine.World) *AudioSystem {
	s := &AudioSystem{
		world:      world,
		statPlayed: world.Resources.Status.Ints.Get("audio.played"),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *AudioSystem) Init() {
	for i := range s.lastFrame {
		s.lastFrame[i] = -1
	}
	s.enabled = true
}

func (s *AudioSystem) Name() string {
	return "audio"
}

func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSoundRequest,
		event.EventSelectionRejected,
		event.EventCarryRestricted,
		event.EventTreasureDropped,
		event.EventGoalDelivered,
		event.EventGoalComplete,
	}
}

// HandleEvent plays the sound bound to the event
func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if !s.enabled {
		return
	}

	var sound core.SoundType
	switch ev.Type {
	case event.EventSoundRequest:
		p, ok := ev.Payload.(*event.SoundRequestPayload)
		if !ok {
			return
		}
		sound = p.Sound
	case event.EventSelectionRejected:
		sound = core.SoundReject
	case event.EventCarryRestricted:
		sound = core.SoundRestricted
	case event.EventTreasureDropped:
		sound = core.SoundDrop
	case event.EventGoalDelivered:
		sound = core.SoundDelivered
	case event.EventGoalComplete:
		sound = core.SoundComplete
	default:
		return
	}
	s.play(sound, ev.Frame)
}

// Update implements System interface (no tick-based logic)
func (s *AudioSystem) Update() {}

func (s *AudioSystem) play(sound core.SoundType, frame int64) {
	if sound < 0 || sound >= core.SoundTypeCount || s.lastFrame[sound] == frame {
		return
	}
	s.lastFrame[sound] = frame

	player := s.world.Resources.Audio.Player
	if player == nil {
		return
	}
	if player.Play(sound) {
		s.statPlayed.Add(1)
	}
}
