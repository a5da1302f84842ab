// Package format renders the notification list view for CLI commands.
package format

import (
	"io"

	"github.com/cristianoliveira/inbox/internal/presenter"
)

// DefaultDateFormat is used when no date format is configured.
const DefaultDateFormat = "2006-01-02 15:04"

// Formatter writes a list view.
type Formatter interface {
	FormatView(view presenter.View, writer io.Writer) error
}

// FormatterType represents the type of formatter to use.
type FormatterType string

const (
	// FormatterTypeTable displays rows in a table with headers.
	FormatterTypeTable FormatterType = "table"

	// FormatterTypeSimple displays one "id  date - message" line per row.
	FormatterTypeSimple FormatterType = "simple"

	// FormatterTypeCompact displays only messages, one per line.
	FormatterTypeCompact FormatterType = "compact"

	// FormatterTypeJSON displays the rows and flags as JSON.
	FormatterTypeJSON FormatterType = "json"
)

// Options carries display settings shared by formatters.
type Options struct {
	DateFormat string
}

func (o Options) dateFormat() string {
	if o.DateFormat == "" {
		return DefaultDateFormat
	}
	return o.DateFormat
}

// NewFormatter creates a formatter of the given type. Unknown types get the table.
func NewFormatter(formatterType FormatterType, opts Options) Formatter {
	switch formatterType {
	case FormatterTypeSimple:
		return &SimpleFormatter{opts: opts}
	case FormatterTypeCompact:
		return &CompactFormatter{}
	case FormatterTypeJSON:
		return &JSONFormatter{opts: opts}
	default:
		return NewTableFormatter(opts)
	}
}

// IsValidType reports whether name is a known formatter type.
func IsValidType(name string) bool {
	switch FormatterType(name) {
	case FormatterTypeTable, FormatterTypeSimple, FormatterTypeCompact, FormatterTypeJSON:
		return true
	}
	return false
}
