package component

import "github.com/lixenwraith/treasure-haul/vmath"

// MarkerComponent is a transient destination indicator
type MarkerComponent struct {
	Position vmath.Vec3F
	Tag      string
}
