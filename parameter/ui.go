package parameter

// Terminal presentation
const (
	// DefaultCellSize is world units per terminal cell
	DefaultCellSize = 1.0

	// StatusBarHeight is rows reserved at the bottom for labels and status
	StatusBarHeight = 2

	GlyphCharacter = '@'
	GlyphTreasure  = '$'
	GlyphMarker    = 'x'
	GlyphIndicator = 'v'
	GlyphGoal      = '.'
)
