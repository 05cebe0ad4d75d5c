package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/treasure-haul/core"
	"github.com/lixenwraith/treasure-haul/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, true
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func shaped(freq float64, wave WaveType, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// CreateSelectSound is a short high blip
func CreateSelectSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := shaped(1320, WaveSine, parameter.SelectSoundDuration, parameter.SelectSoundAttack, parameter.SelectSoundRelease, rate)
	return newVolume(s, cfg.volume(core.SoundSelect))
}

// CreateRejectSound is a harsh saw buzz
func CreateRejectSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := shaped(100, WaveSaw, parameter.RejectSoundDuration, parameter.RejectSoundAttack, parameter.RejectSoundRelease, rate)
	return newVolume(s, cfg.volume(core.SoundReject))
}

// CreateRestrictedSound mixes a low square with noise for a rattle
func CreateRestrictedSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.RestrictedSoundDuration
	tone := shaped(70, WaveSquare, d, parameter.RestrictedSoundAttack, parameter.RestrictedSoundRelease, rate)
	noise := shaped(0, WaveNoise, d, parameter.RestrictedSoundAttack, parameter.RestrictedSoundRelease, rate)

	mixed := beep.Mix(newVolume(tone, 0.6), newVolume(noise, 0.4))
	return newVolume(mixed, cfg.volume(core.SoundRestricted))
}

// CreateDropSound is a low sine thud
func CreateDropSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := shaped(55, WaveSine, parameter.DropSoundDuration, parameter.DropSoundAttack, parameter.DropSoundRelease, rate)
	return newVolume(s, cfg.volume(core.SoundDrop))
}

// CreateBellSound rings a fundamental with its octave
func CreateBellSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.BellSoundDuration

	fund := shaped(880.0, WaveSine, d, parameter.BellSoundAttack, parameter.BellSoundFundamentalRelease, rate)
	over := shaped(1760.0, WaveSine, d, parameter.BellSoundAttack, parameter.BellSoundOvertoneRelease, rate)

	mixed := beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
	return newVolume(mixed, cfg.volume(core.SoundDelivered))
}

// CreateChimeSound plays two rising notes
func CreateChimeSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := shaped(987.77, WaveSquare, parameter.ChimeSoundNote1Duration, parameter.ChimeSoundAttack, parameter.ChimeSoundNote1Release, rate)
	n2 := shaped(1318.51, WaveSquare, parameter.ChimeSoundNote2Duration, parameter.ChimeSoundAttack, parameter.ChimeSoundNote2Release, rate)

	return newVolume(beep.Seq(n1, n2), cfg.volume(core.SoundComplete))
}

// GetSoundEffect returns the streamer for the given type, nil when unknown
func GetSoundEffect(soundType core.SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case core.SoundSelect:
		return CreateSelectSound(cfg)
	case core.SoundReject:
		return CreateRejectSound(cfg)
	case core.SoundRestricted:
		return CreateRestrictedSound(cfg)
	case core.SoundDrop:
		return CreateDropSound(cfg)
	case core.SoundDelivered:
		return CreateBellSound(cfg)
	case core.SoundComplete:
		return CreateChimeSound(cfg)
	default:
		return nil
	}
}
