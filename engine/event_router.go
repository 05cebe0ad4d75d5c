package engine

import (
	"github.com/lixenwraith/treasure-haul/event"
	"github.com/lixenwraith/treasure-haul/parameter"
)

// EventRouter dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch (no concurrency issues with World mutation)
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - Events emitted by handlers settle in the same dispatch, up to EventLoopIterations passes
type EventRouter struct {
	handlers map[event.EventType][]EventHandler
	queue    *event.EventQueue
}

// NewEventRouter creates a router attached to the given queue
func NewEventRouter(queue *event.EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[event.EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes pending events and routes them in FIFO order
// Returns the number of events dispatched
func (r *EventRouter) DispatchAll() int {
	total := 0
	for pass := 0; pass < parameter.EventLoopIterations; pass++ {
		events := r.queue.Consume()
		if len(events) == 0 {
			break
		}
		for _, ev := range events {
			for _, h := range r.handlers[ev.Type] {
				h.HandleEvent(ev)
			}
		}
		total += len(events)
	}
	return total
}

// HasHandlers reports whether any handler is registered for t
func (r *EventRouter) HasHandlers(t event.EventType) bool {
	return len(r.handlers[t]) > 0
}
