package renderers

import (
	"github.com/lixenwraith/treasure-haul/parameter"
	"github.com/lixenwraith/treasure-haul/render"
)

// MarkerRenderer draws the destination marker
type MarkerRenderer struct{}

func NewMarkerRenderer() *MarkerRenderer {
	return &MarkerRenderer{}
}

func (r *MarkerRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	cs := &ctx.World.Components
	for _, e := range cs.Marker.GetAllEntities() {
		m, ok := cs.Marker.GetComponent(e)
		if !ok {
			continue
		}
		x, y := ctx.View.ToCell(m.Position)
		if ctx.View.InPlay(x, y) {
			buf.SetFgOnly(x, y, parameter.GlyphMarker, render.RgbMarker)
		}
	}
}
