// Package producer builds notification records on behalf of producers: the
// CLI add and import commands.
package producer

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/cristianoliveira/inbox/internal/domain"
	"github.com/google/uuid"
)

var (
	newID = func() string { return uuid.NewString() }
	now   = func() time.Time { return time.Now().UTC() }
)

// New returns an unseen, undeleted notification with a fresh id. A zero date
// is replaced by the current time.
func New(message, cluster, url string, date time.Time) domain.Notification {
	if date.IsZero() {
		date = now()
	}
	return domain.Notification{
		ID:      newID(),
		Message: message,
		Cluster: cluster,
		Date:    date,
		URL:     url,
	}
}

// Append returns a copy of records with n added at the end.
func Append(records []domain.Notification, n domain.Notification) []domain.Notification {
	out := make([]domain.Notification, 0, len(records)+1)
	out = append(out, records...)
	return append(out, n)
}

// ImportJSON decodes a JSON array of notifications. Every record must carry
// an id; the first one that does not fails the import.
func ImportJSON(r io.Reader) ([]domain.Notification, error) {
	var records []domain.Notification
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("import: decode: %w", err)
	}
	for i, n := range records {
		if err := n.Validate(); err != nil {
			return nil, fmt.Errorf("import: record %d: %w", i, err)
		}
	}
	return records, nil
}

// ExportJSON writes records as an indented JSON array that ImportJSON reads back.
func ExportJSON(w io.Writer, records []domain.Notification) error {
	if records == nil {
		records = []domain.Notification{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("export: encode: %w", err)
	}
	return nil
}
