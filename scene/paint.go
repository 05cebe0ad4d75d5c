package scene

import (
	"github.com/gdamore/tcell/v2"
)

// Paint is the render color of a node
type Paint struct {
	color tcell.Color
}

func NewPaint(c tcell.Color) *Paint {
	return &Paint{color: c}
}

func (p *Paint) Color() tcell.Color {
	return p.color
}

func (p *Paint) SetColor(c tcell.Color) {
	p.color = c
}
