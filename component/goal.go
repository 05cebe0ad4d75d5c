package component

import "github.com/lixenwraith/treasure-haul/core"

// GoalComponent tracks delivery of an assigned roster into a region
type GoalComponent struct {
	Name       string
	AllowedTag string
	Assigned   []core.Entity // Fixed at creation
	Members    []core.Entity // Subset of Assigned currently inside, set semantics
	Complete   bool
	Display    Display
}

// IsAssigned reports whether e belongs to the assignment roster
func (g *GoalComponent) IsAssigned(e core.Entity) bool {
	for _, a := range g.Assigned {
		if a == e {
			return true
		}
	}
	return false
}

// IsMember reports whether e is currently inside
func (g *GoalComponent) IsMember(e core.Entity) bool {
	for _, m := range g.Members {
		if m == e {
			return true
		}
	}
	return false
}

// AllDelivered is true iff every assigned entity is inside
func (g *GoalComponent) AllDelivered() bool {
	return len(g.Members) == len(g.Assigned)
}
