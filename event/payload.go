package event

import (
	"github.com/lixenwraith/treasure-haul/core"
	"github.com/lixenwraith/treasure-haul/vmath"
)

// PointerPayload is a pointer position in screen cells
type PointerPayload struct {
	X int
	Y int
}

// SelectionPayload snapshots the roster after a mutation
type SelectionPayload struct {
	Roster   []core.Entity
	Treasure core.Entity
}

// FaultPayload carries a recoverable fault
type FaultPayload struct {
	Err error
}

// CarrierCountPayload mirrors a treasure display update
type CarrierCountPayload struct {
	Treasure core.Entity
	Current  int
	Weight   int
}

// CarryPayload describes a binding
type CarryPayload struct {
	Treasure core.Entity
	Carriers []core.Entity
}

// DropPayload describes a completed drop
type DropPayload struct {
	Treasure core.Entity
	Position vmath.Vec3F
	Carriers int
}

// RestrictPayload describes one restricted carrier
type RestrictPayload struct {
	Treasure core.Entity
	Carrier  core.Entity
	Clamped  bool
}

// MovePayload describes an issued move order
type MovePayload struct {
	Target vmath.Vec3F
	Agents int
}

// GoalTriggerPayload pairs a goal entity with the entity crossing it
type GoalTriggerPayload struct {
	Goal   core.Entity
	Entity core.Entity
}

// SoundRequestPayload requests a one-shot sound
type SoundRequestPayload struct {
	Sound core.SoundType
}
