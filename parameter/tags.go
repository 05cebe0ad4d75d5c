package parameter

// Reserved categories
const (
	// MarkerTag identifies the single destination marker entity
	MarkerTag = "des"

	// IndicatorTag is the child category toggled on selection
	IndicatorTag = "Arrow"
)

// Display formats
const (
	// CountFormat renders "current/total" for carrier and goal displays
	CountFormat = "%d/%d"
)
