package render

import "github.com/gdamore/tcell/v2"

// Cell is one composited terminal cell
type Cell struct {
	Rune rune
	Fg   tcell.Color
	Bg   tcell.Color
}

var emptyCell = Cell{Rune: ' ', Fg: RgbDefaultFg, Bg: RgbBackground}
