package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine parses tcell events into semantic Intents
// Owned by the input goroutine
type Machine struct {
	keyTable *KeyTable

	primary   ButtonState
	secondary ButtonState
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{
		keyTable: DefaultKeyTable(),
	}
}

// Process converts one terminal event, returning IntentNone when nothing fires
func (m *Machine) Process(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return Intent{Type: m.keyTable.Lookup(ev)}

	case *tcell.EventMouse:
		x, y := ev.Position()
		buttons := ev.Buttons()

		// Both states update every report so a held button never re-fires
		primary := press(&m.primary, buttons&tcell.Button1 != 0)
		secondary := press(&m.secondary, buttons&tcell.Button2 != 0)

		switch {
		case secondary:
			return Intent{Type: IntentSecondary, X: x, Y: y}
		case primary:
			return Intent{Type: IntentPrimary, X: x, Y: y}
		}

	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

// press updates button state and reports a released-to-pressed edge
func press(s *ButtonState, down bool) bool {
	was := *s == StatePressed
	if down {
		*s = StatePressed
	} else {
		*s = StateReleased
	}
	return down && !was
}
