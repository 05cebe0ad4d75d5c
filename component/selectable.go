package component

import "github.com/lixenwraith/treasure-haul/core"

// SelectableComponent is the per-entity selection state shared by characters and treasures
type SelectableComponent struct {
	Name     string
	Kind     core.Kind
	Tag      string // Category compared by goal regions (e.g. "Water", "Fire")
	Selected bool
}
