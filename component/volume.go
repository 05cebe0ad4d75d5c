package component

import (
	"github.com/lixenwraith/treasure-haul/core"
	"github.com/lixenwraith/treasure-haul/vmath"
)

// VolumeComponent is an axis-aligned trigger box bound to a goal entity
// Z is ignored; regions span the ground plane
type VolumeComponent struct {
	Min, Max vmath.Vec3F
	Inside   []core.Entity // Entities observed inside on the last step
}

// Contains reports whether p lies inside the box on the ground plane
func (v *VolumeComponent) Contains(p vmath.Vec3F) bool {
	return p.X >= v.Min.X && p.X <= v.Max.X && p.Y >= v.Min.Y && p.Y <= v.Max.Y
}
