package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityGoal RenderPriority = iota
	PriorityMarker
	PriorityEntities
	PriorityUI
)
