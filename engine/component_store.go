package engine

import (
	"github.com/lixenwraith/treasure-haul/component"
)

// ComponentStore provides typed component stores
// Pointers are stable for the world's lifetime; systems cache the struct at construction
type ComponentStore struct {
	// Selection
	Selectable *Store[component.SelectableComponent]
	Treasure   *Store[component.TreasureComponent]
	Carrier    *Store[component.CarrierComponent]
	Handle     *Store[component.HandleComponent]

	// Effect
	Shake *Store[component.ShakeComponent]

	// Movement
	Marker *Store[component.MarkerComponent]

	// Goal
	Goal   *Store[component.GoalComponent]
	Volume *Store[component.VolumeComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Selectable: NewStore[component.SelectableComponent](),
		Treasure:   NewStore[component.TreasureComponent](),
		Carrier:    NewStore[component.CarrierComponent](),
		Handle:     NewStore[component.HandleComponent](),
		Shake:      NewStore[component.ShakeComponent](),
		Marker:     NewStore[component.MarkerComponent](),
		Goal:       NewStore[component.GoalComponent](),
		Volume:     NewStore[component.VolumeComponent](),
	}
}

// all lists every store for uniform lifecycle operations
func (cs *ComponentStore) all() []AnyStore {
	return []AnyStore{
		cs.Selectable,
		cs.Treasure,
		cs.Carrier,
		cs.Handle,
		cs.Shake,
		cs.Marker,
		cs.Goal,
		cs.Volume,
	}
}
