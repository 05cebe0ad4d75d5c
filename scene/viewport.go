package scene

import (
	"math"

	"github.com/lixenwraith/treasure-haul/parameter"
	"github.com/lixenwraith/treasure-haul/vmath"
)

// Viewport maps terminal cells onto the world ground plane
// Rows below Height-StatusBarHeight are reserved for the status bar
type Viewport struct {
	CellSize float64
	Width    int
	Height   int
}

// NewViewport creates a viewport with the given cell size, non-positive sizes fall back to default
func NewViewport(cellSize float64, width, height int) *Viewport {
	if cellSize <= 0 {
		cellSize = parameter.DefaultCellSize
	}
	return &Viewport{CellSize: cellSize, Width: width, Height: height}
}

// Resize updates terminal dimensions
func (v *Viewport) Resize(width, height int) {
	v.Width = width
	v.Height = height
}

// PlayHeight returns rows available to the world
func (v *Viewport) PlayHeight() int {
	h := v.Height - parameter.StatusBarHeight
	if h < 0 {
		return 0
	}
	return h
}

// InPlay reports whether a cell lies inside the play area
func (v *Viewport) InPlay(col, row int) bool {
	return col >= 0 && col < v.Width && row >= 0 && row < v.PlayHeight()
}

// ToWorld returns the ground point at the center of a cell
func (v *Viewport) ToWorld(col, row int) vmath.Vec3F {
	return vmath.Vec3F{
		X: (float64(col) + 0.5) * v.CellSize,
		Y: (float64(row) + 0.5) * v.CellSize,
	}
}

// ToCell returns the cell containing the ground projection of p
func (v *Viewport) ToCell(p vmath.Vec3F) (col, row int) {
	return int(math.Floor(p.X / v.CellSize)), int(math.Floor(p.Y / v.CellSize))
}
