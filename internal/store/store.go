// Package store holds the process-wide notification collection.
//
// The Store is the only owner of notification state. Writers replace the whole
// collection or update a single record by id; readers take snapshots. Every
// successful mutation is published to subscribers so presentation layers can
// re-derive their view.
package store

import (
	"fmt"
	"sync"

	"github.com/cristianoliveira/inbox/internal/domain"
	"github.com/cristianoliveira/inbox/internal/logging"
)

// Persister receives the collection after each successful mutation.
type Persister interface {
	SaveAll(records []domain.Notification) error
	SaveOne(record domain.Notification) error
}

// Option configures a Store.
type Option func(*Store)

// WithPersister writes every mutation through to p.
func WithPersister(p Persister) Option {
	return func(s *Store) {
		s.persister = p
	}
}

// WithLogger sets the logger used for mutation tracing.
func WithLogger(l logging.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// Store is the canonical ordered notification collection.
type Store struct {
	mu            sync.RWMutex
	notifications []domain.Notification
	persister     Persister
	logger        logging.Logger
	hub           *hub
}

// New creates a store seeded with initial. The slice is copied.
// Records are not validated here; use ReplaceAll for producer input.
func New(initial []domain.Notification, opts ...Option) *Store {
	s := &Store{
		notifications: clone(initial),
		logger:        logging.GetGlobal(),
		hub:           newHub(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a copy of the current collection.
func (s *Store) Snapshot() []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.notifications)
}

// Len returns the number of records, deleted ones included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notifications)
}

// Get returns the first record with the given id.
func (s *Store) Get(id string) (domain.Notification, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := domain.FindByID(s.notifications, id)
	if idx < 0 {
		return domain.Notification{}, false
	}
	return s.notifications[idx], true
}

// ReplaceAll swaps the whole collection for records.
// Readers observe either the old or the new collection, never a mix.
// Duplicate ids are not checked.
func (s *Store) ReplaceAll(records []domain.Notification) error {
	for i, r := range records {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("replace all: record %d: %w", i, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = clone(records)
	s.logger.Debug("store replaced", "count", len(records))
	s.hub.publish(Event{Kind: EventReplaced, Notifications: clone(records)})

	if s.persister != nil {
		if err := s.persister.SaveAll(clone(records)); err != nil {
			return fmt.Errorf("replace all: persist: %w", err)
		}
	}
	return nil
}

// UpsertOne replaces every field of the record sharing record.ID.
// A record whose id is not present leaves the collection unchanged; it is
// never inserted.
func (s *Store) UpsertOne(record domain.Notification) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("upsert: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	idx := domain.FindByID(s.notifications, record.ID)
	if idx < 0 {
		s.logger.Debug("store upsert ignored, id not found", "id", record.ID)
		return nil
	}
	next := clone(s.notifications)
	next[idx] = record
	s.notifications = next
	s.logger.Debug("store updated", "id", record.ID, "seen", record.Seen, "deleted", record.Deleted)
	s.hub.publish(Event{Kind: EventUpdated, ID: record.ID, Notifications: clone(next)})

	if s.persister != nil {
		if err := s.persister.SaveOne(record); err != nil {
			return fmt.Errorf("upsert: persist: %w", err)
		}
	}
	return nil
}

// Subscribe registers for change events. The returned function unsubscribes
// and closes the channel.
func (s *Store) Subscribe() (<-chan Event, func()) {
	return s.hub.subscribe()
}

func clone(in []domain.Notification) []domain.Notification {
	out := make([]domain.Notification, len(in))
	copy(out, in)
	return out
}
