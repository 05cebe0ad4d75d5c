package component

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// CarrierComponent is the character-only carry and restriction state
type CarrierComponent struct {
	IsCarrying bool

	ShakeAmplitude  float64
	ShakeDuration   time.Duration
	RestrictedColor tcell.Color
	OriginalColor   tcell.Color // Material color captured at creation
}
