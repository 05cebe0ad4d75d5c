package renderers

import (
	"github.com/lixenwraith/treasure-haul/parameter"
	"github.com/lixenwraith/treasure-haul/render"
)

// GoalRenderer fills goal volumes and draws their count label
type GoalRenderer struct{}

func NewGoalRenderer() *GoalRenderer {
	return &GoalRenderer{}
}

func (r *GoalRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	cs := &ctx.World.Components

	for _, e := range cs.Volume.GetAllEntities() {
		vol, ok := cs.Volume.GetComponent(e)
		if !ok {
			continue
		}
		x0, y0 := ctx.View.ToCell(vol.Min)
		x1, y1 := ctx.View.ToCell(vol.Max)

		bg := render.RgbGoalFill
		g, hasGoal := cs.Goal.GetComponent(e)
		if hasGoal && g.Complete {
			bg = render.RgbGoalComplete
		}

		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				if !ctx.View.InPlay(x, y) {
					continue
				}
				buf.SetWithBg(x, y, parameter.GlyphGoal, render.RgbGoalFloor, bg)
			}
		}

		if !hasGoal {
			continue
		}
		if l, ok := g.Display.(labeled); ok {
			buf.SetText(x0, y0, g.Name+" "+l.Text(), render.RgbLabel)
		}
	}
}
