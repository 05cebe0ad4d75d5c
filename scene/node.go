package scene

import (
	"github.com/lixenwraith/treasure-haul/vmath"
)

// Child is a presentational sub-object of a node, toggled by category
type Child struct {
	Category string
	Visible  bool
}

// Node is the in-process transform backing every scene entity
// Accessed only from the game loop goroutine
type Node struct {
	Name     string
	position vmath.Vec3F
	active   bool
	Children []Child
}

// NewNode creates an active node at p
func NewNode(name string, p vmath.Vec3F, children ...Child) *Node {
	return &Node{
		Name:     name,
		position: p,
		active:   true,
		Children: children,
	}
}

func (n *Node) Position() vmath.Vec3F {
	return n.position
}

func (n *Node) SetPosition(p vmath.Vec3F) {
	n.position = p
}

// SetIndicatorVisible toggles every child of the given category
func (n *Node) SetIndicatorVisible(category string, visible bool) {
	for i := range n.Children {
		if n.Children[i].Category == category {
			n.Children[i].Visible = visible
		}
	}
}

// IndicatorVisible reports whether any child of category is visible
func (n *Node) IndicatorVisible(category string) bool {
	for _, c := range n.Children {
		if c.Category == category && c.Visible {
			return true
		}
	}
	return false
}

func (n *Node) Active() bool {
	return n.active
}

func (n *Node) SetActive(active bool) {
	n.active = active
}
