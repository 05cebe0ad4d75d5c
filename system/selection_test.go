package system

import (
	"errors"
	"slices"
	"testing"

	"github.com/lixenwraith/treasure-haul/core"
	"github.com/lixenwraith/treasure-haul/event"
	"github.com/lixenwraith/treasure-haul/parameter"
	"github.com/lixenwraith/treasure-haul/vmath"
)

var (
	cellT  = [2]int{10, 10}
	cellA  = [2]int{0, 0}
	cellB  = [2]int{4, 0}
	cellC  = [2]int{6, 0}
	cellT2 = [2]int{12, 12}
	ground = [2]int{30, 30}
)

func TestSelection_WeightTwoCarry(t *testing.T) {
	f := newFixture(t)
	a := f.character(vmath.Vec3F{X: 0, Y: 0}, "Gold", cellA)
	b := f.character(vmath.Vec3F{X: 4, Y: 0}, "Gold", cellB)
	tr, label := f.treasure(vmath.Vec3F{X: 10, Y: 10}, 2, 5, cellT)
	f.rc.ground = vmath.Vec3F{X: 2, Y: 10}

	f.click(cellT)
	if got, ok := f.sel.ActiveTreasure(); !ok || got != tr {
		t.Fatalf("active treasure = %d, %v", got, ok)
	}
	f.assertCount(tr, label, "0/2")

	f.click(cellA)
	f.assertCount(tr, label, "1/2")
	if _, bound := f.carry.Binding(); bound {
		t.Fatal("bound below weight")
	}

	f.click(cellB)
	f.assertCount(tr, label, "2/2")
	binding, bound := f.carry.Binding()
	if !bound || binding.Treasure != tr || !slices.Equal(binding.Carriers, []core.Entity{a, b}) {
		t.Fatalf("binding = %+v, %v", binding, bound)
	}
	if !f.carrying(a) || !f.carrying(b) {
		t.Error("carriers not flagged")
	}
	if got := f.movement.Roster().Members; !slices.Equal(got, []core.Entity{tr, a, b}) {
		t.Errorf("published roster = %v", got)
	}

	f.tick(1)
	if got := f.pos(tr); !approx(got, vmath.Vec3F{X: 2, Y: 0}) {
		t.Errorf("bound treasure at %+v, want centroid (2,0,0)", got)
	}

	// Re-clicking a carrier is a rejected no-op
	err := f.sel.OnPrimaryClick(cellA[0], cellA[1])
	if !errors.Is(err, core.ErrInvalidSelection) {
		t.Errorf("reselect err = %v, want ErrInvalidSelection", err)
	}
	f.assertCount(tr, label, "2/2")

	f.click(ground)
	marker, ok := f.movement.Marker()
	if !ok {
		t.Fatal("no marker after move order")
	}
	m, _ := f.world.Components.Marker.GetComponent(marker)
	if m.Tag != parameter.MarkerTag || !approx(m.Position, f.rc.ground) {
		t.Errorf("marker = %+v", m)
	}

	f.tick(30)
	if _, ok := f.movement.Marker(); ok {
		t.Error("marker survived arrival")
	}
	if f.world.Components.Marker.CountEntity() != 0 {
		t.Error("marker entity leaked")
	}
	if got := f.pos(tr); !approx(got, f.rc.ground) {
		t.Errorf("treasure at %+v, want %+v", got, f.rc.ground)
	}

	f.rightClick()
	if f.sel.Roster().Len() != 0 {
		t.Error("roster not cleared")
	}
	if f.carrying(a) || f.carrying(b) || f.selected(a) || f.selected(tr) {
		t.Error("flags not reset")
	}
	if _, bound := f.carry.Binding(); bound {
		t.Error("binding survived release")
	}
	f.assertCount(tr, label, "0/2")

	f.tick(1)
	if f.rec.count(event.EventTreasureDropped) != 1 {
		t.Errorf("drops = %d, want 1", f.rec.count(event.EventTreasureDropped))
	}
	if f.rec.count(event.EventMarkerCleared) != 1 {
		t.Errorf("marker clears = %d, want 1", f.rec.count(event.EventMarkerCleared))
	}
}

func TestSelection_DropSnapsToMean(t *testing.T) {
	f := newFixture(t)
	a := f.character(vmath.Vec3F{X: 1, Y: 1}, "", cellA)
	b := f.character(vmath.Vec3F{X: 3, Y: 5}, "", cellB)
	tr, _ := f.treasure(vmath.Vec3F{X: 20, Y: 20}, 1, 5, cellT)

	f.click(cellT)
	f.click(cellA)
	f.click(cellB)

	// Move carriers without ticking so the drop sees fresh positions
	f.setPos(a, vmath.Vec3F{X: 0, Y: 0, Z: 1})
	f.setPos(b, vmath.Vec3F{X: 6, Y: 2, Z: 3})

	if err := f.sel.ReleaseAll(); err != nil {
		t.Fatalf("ReleaseAll: %v", err)
	}
	if got := f.pos(tr); !approx(got, vmath.Vec3F{X: 3, Y: 1, Z: 2}) {
		t.Errorf("treasure at %+v, want (3,1,2)", got)
	}
}

func TestSelection_DropMeanOfThreeIsExact(t *testing.T) {
	f := newFixture(t)
	f.character(vmath.Vec3F{X: 1, Y: 5}, "", cellA)
	f.character(vmath.Vec3F{X: 2, Y: 5}, "", cellB)
	f.character(vmath.Vec3F{X: 4, Y: 6}, "", cellC)
	tr, _ := f.treasure(vmath.Vec3F{X: 20, Y: 20}, 3, 5, cellT)

	f.click(cellT)
	f.click(cellA)
	f.click(cellB)
	f.click(cellC)

	if err := f.sel.ReleaseAll(); err != nil {
		t.Fatalf("ReleaseAll: %v", err)
	}
	want := vmath.Vec3F{X: (1.0 + 2 + 4) / 3, Y: (5.0 + 5 + 6) / 3}
	if got := f.pos(tr); got != want {
		t.Errorf("treasure at %+v, want exact %+v", got, want)
	}
}

func TestSelection_InsufficientRelease(t *testing.T) {
	f := newFixture(t)
	a := f.character(vmath.Vec3F{X: 2, Y: 0}, "", cellA)
	b := f.character(vmath.Vec3F{X: 8, Y: 0}, "", cellB)
	tr, label := f.treasure(vmath.Vec3F{X: 10, Y: 0}, 3, 5, cellT)

	f.click(cellT)
	f.click(cellA)
	f.click(cellB)

	err := f.sel.ReleaseAll()
	if !errors.Is(err, core.ErrInsufficientCarriers) {
		t.Fatalf("err = %v, want ErrInsufficientCarriers", err)
	}
	if got := f.pos(tr); !approx(got, vmath.Vec3F{X: 10, Y: 0}) {
		t.Errorf("treasure moved to %+v", got)
	}
	f.assertCount(tr, label, "0/3")

	// A was 8 away and is clamped onto the 5 radius, B at 2 stays
	sa, ok := f.world.Components.Shake.GetComponent(a)
	if !ok || !approx(sa.OriginPosition, vmath.Vec3F{X: 5, Y: 0}) {
		t.Errorf("shake origin A = %+v, %v", sa.OriginPosition, ok)
	}
	sb, ok := f.world.Components.Shake.GetComponent(b)
	if !ok || !approx(sb.OriginPosition, vmath.Vec3F{X: 8, Y: 0}) {
		t.Errorf("shake origin B = %+v, %v", sb.OriginPosition, ok)
	}
	if f.color(a) != restrictedColor || f.color(b) != restrictedColor {
		t.Error("restricted color not applied")
	}
	if f.carrying(a) || f.selected(b) {
		t.Error("flags not reset")
	}

	// Idempotent on the now-empty roster
	if err := f.sel.ReleaseAll(); err != nil {
		t.Errorf("second release: %v", err)
	}

	f.tick(10)
	if f.world.Components.Shake.CountEntity() != 0 {
		t.Fatal("shake not finished")
	}
	if got := f.pos(a); got != (vmath.Vec3F{X: 5, Y: 0}) {
		t.Errorf("A restored to %+v, want exact (5,0,0)", got)
	}
	if got := f.pos(b); got != (vmath.Vec3F{X: 8, Y: 0}) {
		t.Errorf("B restored to %+v, want exact (8,0,0)", got)
	}
	if f.color(a) != originalColor || f.color(b) != originalColor {
		t.Error("color not restored")
	}

	f.tick(1)
	if got := f.rec.count(event.EventCarryRestricted); got != 2 {
		t.Errorf("restricted events = %d, want 2", got)
	}
	if f.rec.count(event.EventTreasureDropped) != 0 {
		t.Error("drop emitted on insufficient release")
	}
}

func TestSelection_ShortCarrierWalksAwayThenRestricted(t *testing.T) {
	f := newFixture(t)
	a := f.character(vmath.Vec3F{X: 8}, "", cellA)
	tr, label := f.treasure(vmath.Vec3F{X: 10}, 2, 5, cellT)
	f.rc.ground = vmath.Vec3F{X: 30}

	f.click(cellT)
	if got := f.movement.Roster().Members; !slices.Equal(got, []core.Entity{tr}) {
		t.Errorf("published roster after treasure = %v", got)
	}
	f.click(cellA)
	if got := f.movement.Roster().Members; !slices.Equal(got, []core.Entity{tr, a}) {
		t.Fatalf("published roster below weight = %v", got)
	}
	f.assertCount(tr, label, "1/2")

	f.click(ground)
	if _, ok := f.movement.Marker(); !ok {
		t.Fatal("no marker for a roster below weight")
	}
	f.tick(12)
	if d := vmath.V3FDistance(f.pos(a), f.pos(tr)); d <= 5 {
		t.Fatalf("carrier only %v from treasure", d)
	}
	if got := f.pos(tr); got != (vmath.Vec3F{X: 10}) {
		t.Errorf("unbound treasure moved to %+v", got)
	}

	f.rightClick()
	sa, ok := f.world.Components.Shake.GetComponent(a)
	if !ok {
		t.Fatal("walked-away carrier not shaking")
	}
	if !approx(sa.OriginPosition, vmath.Vec3F{X: 15}) {
		t.Errorf("shake origin = %+v, want clamp to (15,0,0)", sa.OriginPosition)
	}
	if f.color(a) != restrictedColor {
		t.Error("restricted color not applied")
	}
	f.assertCount(tr, label, "0/2")
}

func TestSelection_RejectReasons(t *testing.T) {
	f := newFixture(t)
	a := f.character(vmath.Vec3F{}, "", cellA)
	f.treasure(vmath.Vec3F{X: 10}, 2, 5, cellT)
	f.treasure(vmath.Vec3F{X: 12}, 2, 5, cellT2)

	f.click(cellT)
	f.click(cellA)
	err := f.sel.OnPrimaryClick(cellA[0], cellA[1])
	var fault *core.Fault
	if !errors.As(err, &fault) || fault.Detail != "already selected" {
		t.Errorf("reselect err = %v, want already selected", err)
	}

	// A carrier flagged elsewhere is rejected for carrying
	f.click(cellT2)
	c, _ := f.world.Components.Carrier.GetComponent(a)
	c.IsCarrying = true
	f.world.Components.Carrier.SetComponent(a, c)
	err = f.sel.OnPrimaryClick(cellA[0], cellA[1])
	if !errors.As(err, &fault) || fault.Detail != "already carrying" {
		t.Errorf("busy carrier err = %v, want already carrying", err)
	}
}

func TestSelection_LoneCarrierRestriction(t *testing.T) {
	f := newFixture(t)
	a := f.character(vmath.Vec3F{X: 1, Y: 1}, "", cellA)
	f.treasure(vmath.Vec3F{X: 2, Y: 1}, 2, 5, cellT)

	f.click(cellT)
	f.click(cellA)
	f.rightClick()

	if f.color(a) != restrictedColor {
		t.Fatalf("color = %v, want restricted", f.color(a))
	}

	f.tick(2)
	if !f.world.Components.Shake.HasComponent(a) {
		t.Fatal("shake ended early")
	}
	if got := f.pos(a); got == (vmath.Vec3F{X: 1, Y: 1}) {
		t.Error("no jitter while shaking")
	} else if vmath.V3FDistance(got, vmath.Vec3F{X: 1, Y: 1}) > 0.2*1.5 {
		t.Errorf("jitter %+v beyond amplitude", got)
	}

	f.tick(8)
	if f.color(a) != originalColor || f.pos(a) != (vmath.Vec3F{X: 1, Y: 1}) {
		t.Errorf("not restored: %v at %+v", f.color(a), f.pos(a))
	}
}

func TestSelection_CharacterWithoutTreasure(t *testing.T) {
	f := newFixture(t)
	a := f.character(vmath.Vec3F{}, "", cellA)
	b := f.character(vmath.Vec3F{X: 4}, "", cellB)

	f.click(cellA)
	f.click(cellB)

	if got := f.sel.Roster().Members; !slices.Equal(got, []core.Entity{b}) {
		t.Errorf("roster = %v, want [b]", got)
	}
	if f.selected(a) || !f.selected(b) {
		t.Error("singleton selection flags wrong")
	}
	if f.carrying(b) {
		t.Error("lone selection must not carry")
	}
	if got := f.movement.Roster().Members; !slices.Equal(got, []core.Entity{b}) {
		t.Errorf("published roster = %v", got)
	}

	h, _ := f.world.Components.Handle.GetComponent(b)
	type indicator interface{ IndicatorVisible(string) bool }
	if !h.Transform.(indicator).IndicatorVisible(parameter.IndicatorTag) {
		t.Error("selection indicator hidden")
	}
}

func TestSelection_RebindPolicy(t *testing.T) {
	tests := []struct {
		name      string
		policy    string
		wantDrops int
	}{
		{"discard skips drop", parameter.RebindDiscard, 0},
		{"release drops first", parameter.RebindRelease, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.world.Resources.Config.RebindPolicy = tt.policy
			f.character(vmath.Vec3F{}, "", cellA)
			tr, label := f.treasure(vmath.Vec3F{X: 9}, 1, 5, cellT)
			tr2, label2 := f.treasure(vmath.Vec3F{X: 20}, 1, 5, cellT2)

			f.click(cellT)
			f.click(cellA)
			f.click(cellT2)
			f.tick(1)

			if got := f.rec.count(event.EventTreasureDropped); got != tt.wantDrops {
				t.Errorf("drops = %d, want %d", got, tt.wantDrops)
			}
			if got := f.sel.Roster().Members; !slices.Equal(got, []core.Entity{tr2}) {
				t.Errorf("roster = %v", got)
			}
			f.assertCount(tr, label, "0/1")
			f.assertCount(tr2, label2, "0/1")
		})
	}
}

func TestSelection_LateJoinerRebinds(t *testing.T) {
	f := newFixture(t)
	a := f.character(vmath.Vec3F{}, "", cellA)
	b := f.character(vmath.Vec3F{X: 4}, "", cellB)
	c := f.character(vmath.Vec3F{X: 8}, "", cellC)
	tr, label := f.treasure(vmath.Vec3F{X: 9}, 2, 5, cellT)

	f.click(cellT)
	f.click(cellA)
	f.click(cellB)
	f.click(cellC)

	binding, _ := f.carry.Binding()
	if !slices.Equal(binding.Carriers, []core.Entity{a, b, c}) {
		t.Errorf("carriers = %v", binding.Carriers)
	}
	f.assertCount(tr, label, "3/2")

	f.tick(1)
	if got := f.rec.count(event.EventCarryBound); got != 1 {
		t.Errorf("bound events = %d, want 1", got)
	}
	if got := f.pos(tr); !approx(got, vmath.Vec3F{X: 4}) {
		t.Errorf("treasure at %+v, want (4,0,0)", got)
	}
}
