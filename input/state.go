package input

// ButtonState tracks one pointer button for edge detection
// Terminals report held buttons on every motion event; only the press edge is an intent
type ButtonState uint8

const (
	StateReleased ButtonState = iota
	StatePressed
)
