package store

import (
	"sync"

	"github.com/cristianoliveira/inbox/internal/domain"
)

// EventKind identifies the mutation that produced an Event.
type EventKind string

const (
	// EventReplaced is sent after ReplaceAll.
	EventReplaced EventKind = "replaced"
	// EventUpdated is sent after an UpsertOne that matched a record.
	EventUpdated EventKind = "updated"
)

// Event describes a change to the collection.
type Event struct {
	Kind EventKind
	// ID is set for EventUpdated.
	ID string
	// Notifications is the collection as of this change. Treat as read-only;
	// every subscriber receives the same slice.
	Notifications []domain.Notification
}

const subscriberBuffer = 16

// hub fans events out to subscribers. Slow subscribers are skipped rather
// than blocking the writer.
type hub struct {
	mu          sync.Mutex
	subscribers map[chan Event]struct{}
}

func newHub() *hub {
	return &hub{subscribers: make(map[chan Event]struct{})}
}

func (h *hub) subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subscribers, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, unsubscribe
}

func (h *hub) publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subscribers {
		select {
		case ch <- ev:
		default:
			// subscriber is behind; it will catch up on the next event
		}
	}
}
