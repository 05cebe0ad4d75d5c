package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// DefaultMasterVolume scales every effect, 0..1
	DefaultMasterVolume = 0.5
)

// Select blip
const (
	SelectSoundDuration = 60 * time.Millisecond
	SelectSoundAttack   = 5 * time.Millisecond
	SelectSoundRelease  = 30 * time.Millisecond
)

// Reject buzz
const (
	RejectSoundDuration = 80 * time.Millisecond
	RejectSoundAttack   = 5 * time.Millisecond
	RejectSoundRelease  = 20 * time.Millisecond
)

// Restricted rattle, spans a shake
const (
	RestrictedSoundDuration = 250 * time.Millisecond
	RestrictedSoundAttack   = 10 * time.Millisecond
	RestrictedSoundRelease  = 120 * time.Millisecond
)

// Drop thud
const (
	DropSoundDuration = 200 * time.Millisecond
	DropSoundAttack   = 2 * time.Millisecond
	DropSoundRelease  = 180 * time.Millisecond
)

// Delivered bell
const (
	BellSoundDuration           = 600 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 550 * time.Millisecond
	BellSoundOvertoneRelease    = 200 * time.Millisecond
)

// Goal complete two-note chime
const (
	ChimeSoundNote1Duration = 80 * time.Millisecond
	ChimeSoundNote2Duration = 280 * time.Millisecond
	ChimeSoundAttack        = 5 * time.Millisecond
	ChimeSoundNote1Release  = 40 * time.Millisecond
	ChimeSoundNote2Release  = 200 * time.Millisecond
)
