package renderers

import (
	"fmt"

	"github.com/lixenwraith/treasure-haul/parameter"
	"github.com/lixenwraith/treasure-haul/render"
)

const helpText = "LMB select/move  RMB release  p pause  m mute  q quit"

// StatusBarRenderer draws counters and key help in the reserved bottom rows
type StatusBarRenderer struct{}

func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{}
}

func (r *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	width, height := buf.Size()
	top := height - parameter.StatusBarHeight
	if top < 0 {
		return
	}

	bg := render.RgbStatusBg
	if ctx.IsPaused {
		bg = render.RgbPausedBg
	}
	for y := top; y < height; y++ {
		for x := 0; x < width; x++ {
			buf.SetWithBg(x, y, ' ', render.RgbStatusBar, bg)
		}
	}

	status := ctx.World.Resources.Status
	line := fmt.Sprintf("frame %d  %s  %s  %s",
		ctx.Frame,
		status.Summary("selection."),
		status.Summary("carry."),
		status.Summary("goal."),
	)
	buf.SetText(0, top, line, render.RgbStatusBar)

	help := helpText
	switch {
	case ctx.IsPaused:
		help = "[PAUSED]  " + help
	case ctx.IsMuted:
		help = "[MUTED]  " + help
	}
	buf.SetText(0, top+1, help, render.RgbStatusBar)
}
