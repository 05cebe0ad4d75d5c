package input

import (
	"testing"

	"github.com/lixenwraith/treasure-haul/component"
	"github.com/lixenwraith/treasure-haul/core"
	"github.com/lixenwraith/treasure-haul/engine"
	"github.com/lixenwraith/treasure-haul/scene"
	"github.com/lixenwraith/treasure-haul/vmath"
)

func spawn(w *engine.World, kind core.Kind, p vmath.Vec3F) (core.Entity, *scene.Node) {
	e := w.CreateEntity()
	n := scene.NewNode("n", p)
	w.Components.Selectable.SetComponent(e, component.SelectableComponent{Kind: kind})
	w.Components.Handle.SetComponent(e, component.HandleComponent{Transform: n})
	return e, n
}

func TestGridRaycaster(t *testing.T) {
	w := engine.NewWorld()
	view := scene.NewViewport(1, 20, 12)
	rc := NewGridRaycaster(w, view)

	c, _ := spawn(w, core.KindCharacter, vmath.Vec3F{X: 2.5, Y: 3.5})
	tr, _ := spawn(w, core.KindTreasure, vmath.Vec3F{X: 2.2, Y: 3.9})
	hidden, hn := spawn(w, core.KindCharacter, vmath.Vec3F{X: 8.5, Y: 1.5})
	hn.SetActive(false)

	t.Run("treasure shadows character", func(t *testing.T) {
		hit, ok := rc.Raycast(2, 3, LayerSelectable)
		if !ok || hit.Entity != tr {
			t.Errorf("hit = %+v, want treasure %d (character %d)", hit, tr, c)
		}
	})

	t.Run("inactive entities are not hit", func(t *testing.T) {
		if hit, ok := rc.Raycast(8, 1, LayerSelectable); ok {
			t.Errorf("hit inactive %d: %+v", hidden, hit)
		}
	})

	t.Run("ground fallback", func(t *testing.T) {
		hit, ok := rc.Raycast(8, 1, LayerAll)
		if !ok || hit.Layer != LayerGround || hit.Entity != 0 {
			t.Fatalf("hit = %+v", hit)
		}
		if !vmath.V3FApproxEqual(hit.Point, vmath.Vec3F{X: 8.5, Y: 1.5}, 1e-9) {
			t.Errorf("point = %+v", hit.Point)
		}
	})

	t.Run("status bar rows miss", func(t *testing.T) {
		if _, ok := rc.Raycast(1, 11, LayerGround); ok {
			t.Error("status bar row should not hit ground")
		}
	})
}

func TestGridRaycasterSelectedTreasureYieldsToCarrier(t *testing.T) {
	w := engine.NewWorld()
	rc := NewGridRaycaster(w, scene.NewViewport(1, 20, 12))

	tr, _ := spawn(w, core.KindTreasure, vmath.Vec3F{X: 4.5, Y: 2.5})
	carrier, _ := spawn(w, core.KindCharacter, vmath.Vec3F{X: 4.4, Y: 2.6})
	setSelected := func(e core.Entity) {
		sel, _ := w.Components.Selectable.GetComponent(e)
		sel.Selected = true
		w.Components.Selectable.SetComponent(e, sel)
	}
	setSelected(tr)
	setSelected(carrier)

	hit, ok := rc.Raycast(4, 2, LayerSelectable)
	if !ok || hit.Entity != carrier {
		t.Errorf("hit = %+v, want carrier %d over selected treasure %d", hit, carrier, tr)
	}

	// An unselected passer-by wins over both
	passer, _ := spawn(w, core.KindCharacter, vmath.Vec3F{X: 4.1, Y: 2.1})
	hit, ok = rc.Raycast(4, 2, LayerSelectable)
	if !ok || hit.Entity != passer {
		t.Errorf("hit = %+v, want unselected %d", hit, passer)
	}
}
