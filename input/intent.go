package input

import (
	"github.com/lixenwraith/treasure-haul/event"
)

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Esc, Ctrl+C
	IntentPause  // p
	IntentMute   // m
	IntentResize // Terminal resize event

	// Pointer intents
	IntentPrimary   // Left button press
	IntentSecondary // Right button press
)

// Intent is a parsed user action
// X and Y are screen cells for pointer intents
type Intent struct {
	Type IntentType
	X, Y int
}

// Event converts a pointer intent into its routed game event
// Returns false for intents handled outside the world
func (in Intent) Event() (event.EventType, any, bool) {
	switch in.Type {
	case IntentPrimary:
		return event.EventPointerPrimary, &event.PointerPayload{X: in.X, Y: in.Y}, true
	case IntentSecondary:
		return event.EventPointerSecondary, &event.PointerPayload{X: in.X, Y: in.Y}, true
	default:
		return event.EventTick, nil, false
	}
}
