package physics

import (
	"slices"

	"github.com/lixenwraith/treasure-haul/component"
	"github.com/lixenwraith/treasure-haul/core"
	"github.com/lixenwraith/treasure-haul/vmath"
)

// Sample is one candidate observed by a trigger volume this step
type Sample struct {
	Entity   core.Entity
	Position vmath.Vec3F
	Active   bool
}

// Sweep compares samples against a volume's previous occupancy
// Inactive samples keep their previous state and never produce transitions,
// so a deactivated entity stays counted until it is reactivated outside
// Updates vol.Inside in place; entered and exited follow sample order
func Sweep(vol *component.VolumeComponent, samples []Sample) (entered, exited []core.Entity) {
	next := make([]core.Entity, 0, len(vol.Inside))

	for _, s := range samples {
		was := slices.Contains(vol.Inside, s.Entity)
		if !s.Active {
			if was {
				next = append(next, s.Entity)
			}
			continue
		}

		in := vol.Contains(s.Position)
		switch {
		case in && !was:
			entered = append(entered, s.Entity)
		case !in && was:
			exited = append(exited, s.Entity)
		}
		if in {
			next = append(next, s.Entity)
		}
	}

	vol.Inside = next
	return entered, exited
}
