package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/treasure-haul/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	q.Emit(EventPointerPrimary, &PointerPayload{X: 1}, 1)
	q.Emit(EventPointerSecondary, nil, 1)

	if q.Len() != 2 {
		t.Fatalf("Expected 2 pending events, got %d", q.Len())
	}

	evs := q.Consume()
	if len(evs) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(evs))
	}
	if evs[0].Type != EventPointerPrimary || evs[1].Type != EventPointerSecondary {
		t.Errorf("Unexpected order: %v, %v", evs[0].Type, evs[1].Type)
	}
	if q.Consume() != nil {
		t.Error("Expected empty queue after consume")
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < parameter.EventQueueSize+10; i++ {
		q.Emit(EventSoundRequest, nil, int64(i))
	}

	evs := q.Consume()
	if len(evs) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(evs))
	}
	if evs[0].Frame != 10 {
		t.Errorf("Expected oldest surviving frame 10, got %d", evs[0].Frame)
	}
	if q.Dropped() != 10 {
		t.Errorf("Expected 10 dropped, got %d", q.Dropped())
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 16; i++ {
				q.Emit(EventPointerPrimary, nil, 0)
			}
		}()
	}
	wg.Wait()

	if n := len(q.Consume()); n != 64 {
		t.Errorf("Expected 64 events, got %d", n)
	}
}

func TestEventNames(t *testing.T) {
	if EventGoalComplete.String() != "GoalComplete" {
		t.Errorf("Unexpected name %q", EventGoalComplete.String())
	}
	for et := EventType(0); et < eventTypeCount; et++ {
		if typeNames[et] == "" {
			t.Errorf("event type %d has no name", et)
		}
	}
	if EventType(999).String() != "Unknown" {
		t.Error("Expected Unknown for out-of-range type")
	}
}
