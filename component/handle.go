package component

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/treasure-haul/vmath"
)

// Transform is the externally owned placement of an entity
type Transform interface {
	Position() vmath.Vec3F
	SetPosition(p vmath.Vec3F)

	// SetIndicatorVisible toggles every child marker of the given category
	SetIndicatorVisible(category string, visible bool)

	// Active reports whether the entity is presented in the world
	Active() bool
	SetActive(active bool)
}

// Agent is a black-box navigation agent driving one character
type Agent interface {
	SetDestination(p vmath.Vec3F)
	PathPending() bool
	RemainingDistance() float64
	StoppingDistance() float64
	Stop()
}

// Material is the render color handle of an entity
type Material interface {
	Color() tcell.Color
	SetColor(c tcell.Color)
}

// Display receives formatted count text
type Display interface {
	SetText(text string)
}

// HandleComponent holds capability handles resolved once at creation
// Transform is mandatory; Agent, Material and Display may be nil
type HandleComponent struct {
	Transform Transform
	Agent     Agent
	Material  Material
	Display   Display
}
