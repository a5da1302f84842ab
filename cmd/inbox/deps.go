package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/cristianoliveira/inbox/internal/colors"
	"github.com/cristianoliveira/inbox/internal/config"
	"github.com/cristianoliveira/inbox/internal/domain"
	"github.com/cristianoliveira/inbox/internal/i18n"
	"github.com/cristianoliveira/inbox/internal/logging"
	"github.com/cristianoliveira/inbox/internal/presenter"
	"github.com/cristianoliveira/inbox/internal/producer"
	"github.com/cristianoliveira/inbox/internal/router"
	"github.com/cristianoliveira/inbox/internal/storage"
	"github.com/cristianoliveira/inbox/internal/store"
)

// inboxClient opens storage and builds the store and presenter on first use,
// after the root command has loaded configuration.
type inboxClient struct {
	once sync.Once
	err  error

	repo      storage.Repository
	store     *store.Store
	presenter *presenter.Presenter
}

var client = &inboxClient{}

var openRepository = storage.NewFromConfig

func (c *inboxClient) open() error {
	c.once.Do(func() {
		repo, err := openRepository()
		if err != nil {
			c.err = fmt.Errorf("open storage: %w", err)
			return
		}
		records, err := repo.Load()
		if err != nil {
			_ = repo.Close()
			c.err = fmt.Errorf("load notifications: %w", err)
			return
		}
		c.repo = repo
		c.store = store.New(records,
			store.WithPersister(repo),
			store.WithLogger(logging.GetGlobal().With("component", "store")),
		)

		nav := router.New(config.Get("router", router.KindPrint), os.Stdout, config.Get("base_url", ""))
		catalog, err := i18n.Load(config.Get("locale_dir", ""), config.Get("locale", "en"))
		if err != nil {
			colors.Warning(fmt.Sprintf("translations unavailable: %v", err))
		}
		c.presenter = presenter.New(c.store, nav, catalog,
			presenter.WithLogger(logging.GetGlobal().With("component", "presenter")),
		)
	})
	return c.err
}

// Close releases the storage handle if it was opened.
func (c *inboxClient) Close() error {
	if c.repo == nil {
		return nil
	}
	return c.repo.Close()
}

// Snapshot returns every record, deleted ones included.
func (c *inboxClient) Snapshot() ([]domain.Notification, error) {
	if err := c.open(); err != nil {
		return nil, err
	}
	return c.store.Snapshot(), nil
}

// View returns the presenter view with filter applied to the rows.
func (c *inboxClient) View(filter domain.Filter) (presenter.View, error) {
	if err := c.open(); err != nil {
		return presenter.View{}, err
	}
	return c.presenter.FilteredViewOf(c.store.Snapshot(), filter), nil
}

// Lookup finds a record by id.
func (c *inboxClient) Lookup(id string) (domain.Notification, bool, error) {
	if err := c.open(); err != nil {
		return domain.Notification{}, false, err
	}
	n, ok := c.store.Get(id)
	return n, ok, nil
}

// Add appends a new notification and returns it.
func (c *inboxClient) Add(message, cluster, url string, date time.Time) (domain.Notification, error) {
	if err := c.open(); err != nil {
		return domain.Notification{}, err
	}
	n := producer.New(message, cluster, url, date)
	if err := c.store.ReplaceAll(producer.Append(c.store.Snapshot(), n)); err != nil {
		return domain.Notification{}, err
	}
	return n, nil
}

// Import replaces the collection with records.
func (c *inboxClient) Import(records []domain.Notification) error {
	if err := c.open(); err != nil {
		return err
	}
	return c.store.ReplaceAll(records)
}

// ToggleSeen marks a notification seen.
func (c *inboxClient) ToggleSeen(id string) error {
	if err := c.open(); err != nil {
		return err
	}
	return c.presenter.ToggleSeen(id)
}

// Activate navigates to a notification and marks it seen.
func (c *inboxClient) Activate(id string) error {
	if err := c.open(); err != nil {
		return err
	}
	return c.presenter.Activate(id)
}

// MarkAllRead marks every notification seen.
func (c *inboxClient) MarkAllRead() error {
	if err := c.open(); err != nil {
		return err
	}
	return c.presenter.MarkAllRead()
}

// ClearAll soft-deletes every notification.
func (c *inboxClient) ClearAll() error {
	if err := c.open(); err != nil {
		return err
	}
	return c.presenter.ClearAll()
}

// Restore undeletes a notification.
func (c *inboxClient) Restore(id string) error {
	if err := c.open(); err != nil {
		return err
	}
	return c.presenter.Restore(id)
}

// Session exposes the presenter and store for the interactive list.
func (c *inboxClient) Session() (*presenter.Presenter, *store.Store, error) {
	if err := c.open(); err != nil {
		return nil, nil, err
	}
	return c.presenter, c.store, nil
}
