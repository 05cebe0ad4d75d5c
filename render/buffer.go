package render

import (
	"github.com/gdamore/tcell/v2"
)

// RenderBuffer is a compositor over a flat cell array
// Renderers write in priority order; later writes win
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	size := max(width*height, 0)
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Size returns buffer dimensions
func (b *RenderBuffer) Size() (width, height int) {
	return b.width, b.height
}

// Get returns the cell at x,y, empty when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// SetFgOnly writes rune and foreground while preserving background
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg tcell.Color) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
}

// SetWithBg writes an opaque cell
func (b *RenderBuffer) SetWithBg(x, y int, r rune, fg, bg tcell.Color) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg, Bg: bg}
}

// SetText writes s left to right from x, clipping at the buffer edge
func (b *RenderBuffer) SetText(x, y int, s string, fg tcell.Color) int {
	n := 0
	for _, r := range s {
		b.SetFgOnly(x+n, y, r, fg)
		n++
	}
	return n
}

// FlushToScreen copies the buffer into the screen and shows it
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			screen.SetContent(x, y, c.Rune, nil, tcell.StyleDefault.Foreground(c.Fg).Background(c.Bg))
		}
	}
	screen.Show()
}
