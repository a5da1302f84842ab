package domain

import (
	"fmt"
	"strings"
)

// Read filter constants.
const (
	ReadFilterRead   = "read"
	ReadFilterUnread = "unread"
)

// Filter holds filter criteria applied on top of the visible rows.
type Filter struct {
	Cluster    string
	ReadFilter string // "read", "unread", or "" (no filter)
	Query      string // case-insensitive substring of the message
}

// FilterOptions holds filter parameters as given on the command line.
type FilterOptions struct {
	Cluster    string
	ReadFilter string
	Query      string
}

// ToFilter converts FilterOptions to a Filter struct.
func (fo FilterOptions) ToFilter() (Filter, error) {
	if fo.ReadFilter != "" && fo.ReadFilter != ReadFilterRead && fo.ReadFilter != ReadFilterUnread {
		return Filter{}, fmt.Errorf("invalid read filter: %s", fo.ReadFilter)
	}
	return Filter{
		Cluster:    strings.TrimSpace(fo.Cluster),
		ReadFilter: fo.ReadFilter,
		Query:      strings.ToLower(strings.TrimSpace(fo.Query)),
	}, nil
}

// IsEmpty returns true if the filter has no criteria set.
func (f Filter) IsEmpty() bool {
	return f.Cluster == "" && f.ReadFilter == "" && f.Query == ""
}

// Matches checks if the notification matches the filter criteria.
func (f Filter) Matches(n Notification) bool {
	if f.Cluster != "" && n.Cluster != f.Cluster {
		return false
	}
	switch f.ReadFilter {
	case ReadFilterRead:
		if !n.Seen {
			return false
		}
	case ReadFilterUnread:
		if n.Seen {
			return false
		}
	}
	if f.Query != "" && !strings.Contains(strings.ToLower(n.Message), f.Query) {
		return false
	}
	return true
}

// FilterNotifications returns the notifications matching filter, keeping their order.
func FilterNotifications(notifs []Notification, filter Filter) []Notification {
	if filter.IsEmpty() {
		return notifs
	}
	result := make([]Notification, 0, len(notifs))
	for _, n := range notifs {
		if filter.Matches(n) {
			result = append(result, n)
		}
	}
	return result
}
