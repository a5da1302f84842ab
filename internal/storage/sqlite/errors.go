package sqlite

import "errors"

var (
	// ErrEmptyPath indicates that no database path was configured.
	ErrEmptyPath = errors.New("sqlite storage: db path cannot be empty")
	// ErrNotificationNotFound indicates that no stored row carries the id.
	ErrNotificationNotFound = errors.New("notification not found")
)
