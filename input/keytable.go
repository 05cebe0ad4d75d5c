package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the built-in bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'p': IntentPause,
			' ': IntentPause,
			'm': IntentMute,
		},
	}
}

// Lookup resolves a key event, IntentNone when unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
