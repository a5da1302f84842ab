// Package domain provides the domain layer for notifications.
// It contains the notification entity, its value constructors and the
// derived list view computed from a collection.
package domain

import (
	"strings"
	"time"
)

// Notification represents a single notification record surfaced to the user.
type Notification struct {
	// ID is the producer-assigned identity. It is the only key used to locate
	// a record for a targeted update.
	ID      string    `json:"id"`
	Message string    `json:"message,omitempty"`
	Cluster string    `json:"cluster,omitempty"`
	Date    time.Time `json:"date"`
	URL     string    `json:"url,omitempty"`
	// Seen is not one-way: a producer may reset it on re-delivery.
	Seen bool `json:"seen"`
	// Deleted is a soft delete. Deleted records stay in the collection.
	Deleted bool `json:"deleted"`
}

// FieldID is the field name reported when a record has no identity.
const FieldID = "id"

// WithSeen returns a copy of n with Seen set to seen.
func WithSeen(n Notification, seen bool) Notification {
	n.Seen = seen
	return n
}

// WithDeleted returns a copy of n with Deleted set to deleted.
func WithDeleted(n Notification, deleted bool) Notification {
	n.Deleted = deleted
	return n
}

// IsVisible reports whether the notification belongs in the visible list.
func (n Notification) IsVisible() bool {
	return !n.Deleted
}

// IsUnseen reports whether the notification is visible and not yet acknowledged.
func (n Notification) IsUnseen() bool {
	return !n.Deleted && !n.Seen
}

// HasURL reports whether activating the notification navigates somewhere.
func (n Notification) HasURL() bool {
	return n.URL != ""
}

// Validate validates the notification and returns a *ValidationError if invalid.
func (n Notification) Validate() error {
	if strings.TrimSpace(n.ID) == "" {
		return &ValidationError{Field: FieldID, Reason: "is required"}
	}
	return nil
}
