package input

import (
	"github.com/lixenwraith/treasure-haul/component"
	"github.com/lixenwraith/treasure-haul/core"
	"github.com/lixenwraith/treasure-haul/engine"
	"github.com/lixenwraith/treasure-haul/scene"
	"github.com/lixenwraith/treasure-haul/vmath"
)

// LayerMask filters raycast targets
type LayerMask uint8

const (
	LayerSelectable LayerMask = 1 << iota
	LayerGround

	LayerAll = LayerSelectable | LayerGround
)

// Hit is a raycast result
// Entity is zero for ground hits
type Hit struct {
	Entity core.Entity
	Point  vmath.Vec3F
	Layer  LayerMask
}

// Raycaster resolves a screen cell against world layers
type Raycaster interface {
	Raycast(col, row int, mask LayerMask) (Hit, bool)
}

// GridRaycaster hits the entity drawn in a cell, or the ground beneath it
// Caller must hold the world update lock
type GridRaycaster struct {
	world *engine.World
	view  *scene.Viewport
}

func NewGridRaycaster(world *engine.World, view *scene.Viewport) *GridRaycaster {
	return &GridRaycaster{world: world, view: view}
}

// Raycast tests selectables before ground
// Within a cell unselected entities come first and treasures shadow characters, see rank
func (r *GridRaycaster) Raycast(col, row int, mask LayerMask) (Hit, bool) {
	if !r.view.InPlay(col, row) {
		return Hit{}, false
	}

	if mask&LayerSelectable != 0 {
		if e, p, ok := r.pick(col, row); ok {
			return Hit{Entity: e, Point: p, Layer: LayerSelectable}, true
		}
	}

	if mask&LayerGround != 0 {
		return Hit{Point: r.view.ToWorld(col, row), Layer: LayerGround}, true
	}
	return Hit{}, false
}

func (r *GridRaycaster) pick(col, row int) (core.Entity, vmath.Vec3F, bool) {
	cs := &r.world.Components

	var (
		best     core.Entity
		bestPos  vmath.Vec3F
		bestRank int
		found    bool
	)
	for _, e := range cs.Selectable.GetAllEntities() {
		sel, _ := cs.Selectable.GetComponent(e)
		h, ok := cs.Handle.GetComponent(e)
		if !ok || h.Transform == nil || !h.Transform.Active() {
			continue
		}
		p := h.Transform.Position()
		c, rw := r.view.ToCell(p)
		if c != col || rw != row {
			continue
		}

		rk := rank(sel)
		if !found || rk < bestRank || (rk == bestRank && e < best) {
			best, bestPos, bestRank, found = e, p, rk, true
		}
	}
	return best, bestPos, found
}

// rank orders entities sharing a cell, lowest wins
// A selected treasure sits under its carriers so a lone carrier stays clickable
func rank(sel component.SelectableComponent) int {
	switch {
	case !sel.Selected && sel.Kind == core.KindTreasure:
		return 0
	case !sel.Selected:
		return 1
	case sel.Kind != core.KindTreasure:
		return 2
	}
	return 3
}
