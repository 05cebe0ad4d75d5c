package system

import (
	"slices"

	"github.com/lixenwraith/treasure-haul/core"
)

// Roster is the ordered set of selected entities
// When a treasure is active it is always the first member
type Roster struct {
	Members []core.Entity
}

// Len returns the member count
func (r Roster) Len() int {
	return len(r.Members)
}

// Contains reports membership
func (r Roster) Contains(e core.Entity) bool {
	return slices.Contains(r.Members, e)
}

// Clone returns an independent copy for publishing across systems
func (r Roster) Clone() Roster {
	return Roster{Members: slices.Clone(r.Members)}
}

func (r *Roster) add(e core.Entity) {
	r.Members = append(r.Members, e)
}

func (r *Roster) reset() {
	r.Members = r.Members[:0]
}
