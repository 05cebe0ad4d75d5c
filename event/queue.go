package event

import (
	"sync/atomic"

	"github.com/lixenwraith/treasure-haul/parameter"
)

// EventQueue is a lock-free MPSC ring buffer for game events
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK (terminal input goroutine, systems)
//   - Consume: Single consumer (game loop)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest events overwritten when full
type EventQueue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool
	head      atomic.Uint64 // Read index
	tail      atomic.Uint64 // Write index
	dropped   atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push adds event using lock-free CAS with published flags pattern
func (eq *EventQueue) Push(ev GameEvent) {
	for {
		currentTail := eq.tail.Load()
		nextTail := currentTail + 1

		if !eq.tail.CompareAndSwap(currentTail, nextTail) {
			continue
		}

		idx := currentTail & parameter.EventBufferMask
		eq.events[idx] = ev
		eq.published[idx].Store(true) // MUST be after write

		currentHead := eq.head.Load()
		if nextTail-currentHead > parameter.EventQueueSize {
			if eq.head.CompareAndSwap(currentHead, nextTail-parameter.EventQueueSize) {
				eq.dropped.Add(1)
			}
		}
		return
	}
}

// Emit is shorthand for Push with a payload and frame stamp
func (eq *EventQueue) Emit(t EventType, payload any, frame int64) {
	eq.Push(GameEvent{Type: t, Payload: payload, Frame: frame})
}

// Consume returns all pending events in FIFO order and advances head
func (eq *EventQueue) Consume() []GameEvent {
	for {
		currentHead := eq.head.Load()
		currentTail := eq.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		available := currentTail - currentHead
		if available > parameter.EventQueueSize {
			available = parameter.EventQueueSize
			currentHead = currentTail - parameter.EventQueueSize
		}

		result := make([]GameEvent, 0, available)
		for i := uint64(0); i < available; i++ {
			idx := (currentHead + i) & parameter.EventBufferMask
			if !eq.published[idx].Load() {
				break // Writer incomplete
			}
			result = append(result, eq.events[idx])
			eq.published[idx].Store(false)
		}

		if eq.head.CompareAndSwap(currentHead, currentHead+uint64(len(result))) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}

// Len returns approximate pending event count
func (eq *EventQueue) Len() int {
	head := eq.head.Load()
	tail := eq.tail.Load()
	if tail <= head {
		return 0
	}
	diff := int(tail - head)
	if diff > parameter.EventQueueSize {
		return parameter.EventQueueSize
	}
	return diff
}

// Dropped returns how many events were overwritten before consumption
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped.Load()
}
