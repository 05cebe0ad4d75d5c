package engine

import (
	"sync"

	"github.com/lixenwraith/treasure-haul/core"
	"github.com/lixenwraith/treasure-haul/event"
)

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Resources  *Resource
	Components ComponentStore

	router      *EventRouter
	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a new world with default resources
func NewWorld() *World {
	res := NewResource()
	return &World{
		nextEntityID: 1,
		Resources:    res,
		Components:   newComponentStore(),
		router:       NewEventRouter(res.Event.Queue),
		systems:      make([]System, 0, 8),
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.Components.all() {
		s.RemoveComponent(e)
	}
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	for _, s := range w.Components.all() {
		s.ClearAllComponent()
	}
}

// AddSystem adds a system, sorts by priority and registers its event handlers
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Insertion sort keeps registration order among equal priorities
	for i := len(w.systems) - 1; i > 0 && w.systems[i-1].Priority() > w.systems[i].Priority(); i-- {
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}

	if h, ok := system.(EventHandler); ok {
		w.router.Register(h)
	}
}

// Systems returns a copy of all registered systems in update order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update dispatches pending events then runs all systems sequentially
func (w *World) Update() {
	w.RunSafe(w.UpdateLocked)
}

// UpdateLocked runs a tick assuming the caller already holds updateMutex
func (w *World) UpdateLocked() {
	w.router.DispatchAll()

	for _, system := range w.Systems() {
		system.Update()
	}
}

// DispatchEvents routes pending events without running systems
// Used by tests and by input that must settle before the next tick
func (w *World) DispatchEvents() {
	w.router.DispatchAll()
}

// Emit pushes an event stamped with the current frame
func (w *World) Emit(t event.EventType, payload any) {
	w.Resources.Event.Queue.Emit(t, payload, w.Resources.Time.FrameNumber)
}

// FrameNumber returns the current tick index
func (w *World) FrameNumber() int64 {
	return w.Resources.Time.FrameNumber
}
