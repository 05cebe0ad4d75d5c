package audio

import (
	"github.com/lixenwraith/treasure-haul/core"
	"github.com/lixenwraith/treasure-haul/parameter"
)

// AudioConfig holds effect mixing settings
type AudioConfig struct {
	SampleRate    int
	MasterVolume  float64
	EffectVolumes map[core.SoundType]float64
}

// DefaultAudioConfig returns the built-in mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: parameter.DefaultMasterVolume,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundSelect:     0.4,
			core.SoundReject:     0.8,
			core.SoundRestricted: 0.9,
			core.SoundDrop:       0.7,
			core.SoundDelivered:  1.0,
			core.SoundComplete:   0.6,
		},
	}
}

// volume returns the effective gain of one effect
func (c *AudioConfig) volume(s core.SoundType) float64 {
	return c.EffectVolumes[s] * c.MasterVolume
}
