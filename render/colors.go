package render

import (
	"github.com/gdamore/tcell/v2"
)

// Palette
var (
	RgbBackground   = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbGoalFill     = tcell.NewRGBColor(20, 40, 60)    // Goal region floor
	RgbGoalComplete = tcell.NewRGBColor(20, 60, 30)    // Goal region once all delivered
	RgbGoalFloor    = tcell.NewRGBColor(70, 90, 110)   // Goal region dots
	RgbMarker       = tcell.NewRGBColor(255, 165, 0)   // Destination marker
	RgbIndicator    = tcell.NewRGBColor(135, 206, 250) // Selection arrow
	RgbLabel        = tcell.NewRGBColor(180, 180, 180) // Count labels
	RgbStatusBar    = tcell.NewRGBColor(255, 255, 255) // Status text
	RgbStatusBg     = tcell.NewRGBColor(40, 42, 54)    // Status bar background
	RgbPausedBg     = tcell.NewRGBColor(128, 0, 128)   // Status bar while paused
	RgbDefaultFg    = tcell.ColorWhite
)
