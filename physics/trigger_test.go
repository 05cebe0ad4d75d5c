package physics

import (
	"slices"
	"testing"

	"github.com/lixenwraith/treasure-haul/component"
	"github.com/lixenwraith/treasure-haul/core"
	"github.com/lixenwraith/treasure-haul/vmath"
)

func TestSweep(t *testing.T) {
	vol := &component.VolumeComponent{
		Min: vmath.Vec3F{X: 0, Y: 0},
		Max: vmath.Vec3F{X: 4, Y: 4},
	}
	inside := vmath.Vec3F{X: 2, Y: 2, Z: 9}
	outside := vmath.Vec3F{X: 6, Y: 2}

	entered, exited := Sweep(vol, []Sample{
		{Entity: 1, Position: inside, Active: true},
		{Entity: 2, Position: outside, Active: true},
	})
	if !slices.Equal(entered, []core.Entity{1}) || len(exited) != 0 {
		t.Fatalf("first sweep: entered %v exited %v", entered, exited)
	}

	// Staying inside is not a new entry
	entered, _ = Sweep(vol, []Sample{{Entity: 1, Position: inside, Active: true}})
	if len(entered) != 0 {
		t.Errorf("repeat entry: %v", entered)
	}

	// Deactivation holds occupancy without an exit
	entered, exited = Sweep(vol, []Sample{{Entity: 1, Position: outside, Active: false}})
	if len(entered) != 0 || len(exited) != 0 {
		t.Errorf("inactive transition: entered %v exited %v", entered, exited)
	}
	if !slices.Contains(vol.Inside, 1) {
		t.Error("inactive entity dropped from occupancy")
	}

	_, exited = Sweep(vol, []Sample{{Entity: 1, Position: outside, Active: true}})
	if !slices.Equal(exited, []core.Entity{1}) {
		t.Errorf("exit = %v, want [1]", exited)
	}
}
