package component

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/treasure-haul/vmath"
)

// ShakeComponent is the in-flight restriction effect of one character
// Presence means Shaking; removal after restore means Idle
type ShakeComponent struct {
	Elapsed   time.Duration
	Duration  time.Duration
	Amplitude float64

	// Restore targets captured at effect start
	OriginPosition vmath.Vec3F
	OriginColor    tcell.Color
}
