package engine

import (
	"github.com/lixenwraith/treasure-haul/event"
)

// System is a frame-driven unit of game logic
type System interface {
	// Init resets session state
	Init()

	// Name returns the registry name used in logs and status keys
	Name() string

	// Priority orders Update calls, lower values run first
	Priority() int

	// Update runs once per tick after event dispatch
	Update()
}

// EventHandler processes routed events
// Systems implementing it are registered with the router by the world
type EventHandler interface {
	// EventTypes returns the event types this handler processes
	EventTypes() []event.EventType

	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase, before World.Update()
	HandleEvent(ev event.GameEvent)
}
