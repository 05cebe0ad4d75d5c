package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/treasure-haul/core"
	"github.com/lixenwraith/treasure-haul/parameter"
	"github.com/lixenwraith/treasure-haul/render"
)

// labeled is implemented by displays that expose their text
type labeled interface {
	Text() string
}

// indicated is implemented by transforms with toggleable indicator children
type indicated interface {
	IndicatorVisible(category string) bool
}

// EntityRenderer draws active characters and treasures, their selection arrows and labels
// Treasures draw after characters so a carried treasure stays visible
type EntityRenderer struct{}

func NewEntityRenderer() *EntityRenderer {
	return &EntityRenderer{}
}

func (r *EntityRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	r.pass(ctx, buf, core.KindCharacter)
	r.pass(ctx, buf, core.KindTreasure)
}

func (r *EntityRenderer) pass(ctx render.RenderContext, buf *render.RenderBuffer, kind core.Kind) {
	cs := &ctx.World.Components

	for _, e := range cs.Selectable.GetAllEntities() {
		sel, ok := cs.Selectable.GetComponent(e)
		if !ok || sel.Kind != kind {
			continue
		}
		h, ok := cs.Handle.GetComponent(e)
		if !ok || h.Transform == nil || !h.Transform.Active() {
			continue
		}
		x, y := ctx.View.ToCell(h.Transform.Position())
		if !ctx.View.InPlay(x, y) {
			continue
		}

		glyph, fg := rune(parameter.GlyphCharacter), render.RgbDefaultFg
		if kind == core.KindTreasure {
			glyph, fg = parameter.GlyphTreasure, tcell.ColorGold
		}
		if h.Material != nil {
			fg = h.Material.Color()
		}
		buf.SetFgOnly(x, y, glyph, fg)

		if ind, ok := h.Transform.(indicated); ok && ind.IndicatorVisible(parameter.IndicatorTag) && ctx.View.InPlay(x, y-1) {
			buf.SetFgOnly(x, y-1, parameter.GlyphIndicator, render.RgbIndicator)
		}
		if l, ok := h.Display.(labeled); ok && l.Text() != "" {
			buf.SetText(x+1, y, l.Text(), render.RgbLabel)
		}
	}
}
