// Package storage selects and provides notification persistence backends.
package storage

import (
	"github.com/cristianoliveira/inbox/internal/domain"
)

// Repository loads the collection at startup and receives writes from the
// store afterwards.
type Repository interface {
	Load() ([]domain.Notification, error)
	SaveAll(records []domain.Notification) error
	SaveOne(record domain.Notification) error
	Close() error
}
