// Package presenter derives the notification list view from the store and
// turns user actions into store mutations.
package presenter

import (
	"fmt"

	"github.com/cristianoliveira/inbox/internal/domain"
	"github.com/cristianoliveira/inbox/internal/logging"
)

// Router performs navigation to a notification's target.
type Router interface {
	NavigateTo(url string)
}

// Translator resolves display strings. It must never fail; unknown keys are
// expected to come back in a displayable form.
type Translator interface {
	Translate(key string) string
}

// Store is the subset of the notification store the presenter needs.
type Store interface {
	Snapshot() []domain.Notification
	Get(id string) (domain.Notification, bool)
	ReplaceAll(records []domain.Notification) error
	UpsertOne(record domain.Notification) error
}

// Presenter mediates between the store and a list UI.
type Presenter struct {
	store      Store
	router     Router
	translator Translator
	logger     logging.Logger
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithLogger sets the logger used for action tracing.
func WithLogger(l logging.Logger) Option {
	return func(p *Presenter) {
		p.logger = l
	}
}

// New creates a presenter. translator may be nil, in which case keys are
// shown as their text part.
func New(store Store, router Router, translator Translator, opts ...Option) *Presenter {
	if store == nil {
		panic("presenter.New: store dependency cannot be nil")
	}
	if router == nil {
		panic("presenter.New: router dependency cannot be nil")
	}
	if translator == nil {
		translator = passthroughTranslator{}
	}
	p := &Presenter{
		store:      store,
		router:     router,
		translator: translator,
		logger:     logging.GetGlobal(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ToggleSeen marks the notification as seen. Missing or already seen
// notifications are left alone.
func (p *Presenter) ToggleSeen(id string) error {
	n, ok := p.store.Get(id)
	if !ok {
		p.logger.Debug("toggle seen ignored, id not found", "id", id)
		return nil
	}
	if n.Seen {
		return nil
	}
	if err := p.store.UpsertOne(domain.WithSeen(n, true)); err != nil {
		return fmt.Errorf("toggle seen: %w", err)
	}
	p.logger.Debug("notification marked seen", "id", id)
	return nil
}

// Activate handles a row click: navigate when the notification has a URL and
// mark it seen in every case.
func (p *Presenter) Activate(id string) error {
	n, ok := p.store.Get(id)
	if !ok {
		p.logger.Debug("activate ignored, id not found", "id", id)
		return nil
	}
	if n.HasURL() {
		p.logger.Debug("navigating", "id", id, "url", n.URL)
		p.router.NavigateTo(n.URL)
	}
	if err := p.store.UpsertOne(domain.WithSeen(n, true)); err != nil {
		return fmt.Errorf("activate: %w", err)
	}
	return nil
}

// MarkAllRead marks every notification seen, deleted ones included.
// It does nothing when no visible notification is unseen.
func (p *Presenter) MarkAllRead() error {
	current := p.store.Snapshot()
	if !domain.HasUnseen(current) {
		return nil
	}
	updated := make([]domain.Notification, len(current))
	for i, n := range current {
		updated[i] = domain.WithSeen(n, true)
	}
	if err := p.store.ReplaceAll(updated); err != nil {
		return fmt.Errorf("mark all read: %w", err)
	}
	p.logger.Info("marked all notifications read", "count", len(updated))
	return nil
}

// ClearAll soft-deletes every notification without touching seen state.
// It does nothing when everything is already deleted.
func (p *Presenter) ClearAll() error {
	current := p.store.Snapshot()
	if domain.AllDeleted(current) {
		return nil
	}
	updated := make([]domain.Notification, len(current))
	for i, n := range current {
		updated[i] = domain.WithDeleted(n, true)
	}
	if err := p.store.ReplaceAll(updated); err != nil {
		return fmt.Errorf("clear all: %w", err)
	}
	p.logger.Info("cleared all notifications", "count", len(updated))
	return nil
}

// Restore brings a soft-deleted notification back into the visible list.
func (p *Presenter) Restore(id string) error {
	n, ok := p.store.Get(id)
	if !ok || !n.Deleted {
		return nil
	}
	if err := p.store.UpsertOne(domain.WithDeleted(n, false)); err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	p.logger.Debug("notification restored", "id", id)
	return nil
}
