package render

import (
	"github.com/lixenwraith/treasure-haul/engine"
	"github.com/lixenwraith/treasure-haul/scene"
)

// RenderContext provides frame state for renderers, passed by value
// Renderers run on the loop goroutine under the world update lock
type RenderContext struct {
	World *engine.World
	View  *scene.Viewport

	Frame    int64
	IsPaused bool
	IsMuted  bool
}
