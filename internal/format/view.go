package format

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/cristianoliveira/inbox/internal/domain"
	"github.com/cristianoliveira/inbox/internal/presenter"
)

// SimpleFormatter writes "id  date - message" lines.
type SimpleFormatter struct {
	opts Options
}

// FormatView writes one line per visible row.
func (f *SimpleFormatter) FormatView(view presenter.View, writer io.Writer) error {
	for _, r := range view.Rows {
		marker := " "
		if r.Bold {
			marker = unseenMarker
		}
		_, err := fmt.Fprintf(writer, "%s %-36s  %-16s - %s\n", marker, r.ID, FormatDate(r.Date, f.opts.dateFormat()), truncate(r.Text, 50))
		if err != nil {
			return err
		}
	}
	return nil
}

// CompactFormatter writes only the row text, one per line.
type CompactFormatter struct{}

// FormatView writes the visible messages.
func (f *CompactFormatter) FormatView(view presenter.View, writer io.Writer) error {
	for _, r := range view.Rows {
		if _, err := fmt.Fprintln(writer, r.Text); err != nil {
			return err
		}
	}
	return nil
}

// JSONFormatter writes the view as JSON.
type JSONFormatter struct {
	opts Options
}

type jsonRow struct {
	ID        string     `json:"id"`
	Message   string     `json:"message"`
	Cluster   string     `json:"cluster,omitempty"`
	Date      *time.Time `json:"date,omitempty"`
	Unseen    bool       `json:"unseen"`
	Clickable bool       `json:"clickable"`
}

type jsonView struct {
	AllDeleted        bool      `json:"all_deleted"`
	HasUnseen         bool      `json:"has_unseen"`
	ShowClusterColumn bool      `json:"show_cluster_column"`
	Rows              []jsonRow `json:"rows"`
}

// FormatView writes the aggregate flags and visible rows.
func (f *JSONFormatter) FormatView(view presenter.View, writer io.Writer) error {
	out := jsonView{
		AllDeleted:        view.AllDeleted,
		HasUnseen:         view.HasUnseen,
		ShowClusterColumn: view.ShowClusterColumn,
		Rows:              make([]jsonRow, 0, len(view.Rows)),
	}
	for _, r := range view.Rows {
		row := jsonRow{ID: r.ID, Message: r.Text, Cluster: r.Cluster, Unseen: r.Bold, Clickable: r.Clickable}
		if !r.Date.IsZero() {
			d := r.Date
			row.Date = &d
		}
		out.Rows = append(out.Rows, row)
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal view to JSON: %w", err)
	}
	if _, err := writer.Write(data); err != nil {
		return err
	}
	_, err = fmt.Fprintln(writer)
	return err
}

// FormatRecords writes every record, deleted ones included, with its state.
func FormatRecords(writer io.Writer, records []domain.Notification, dateFormat string) error {
	if dateFormat == "" {
		dateFormat = DefaultDateFormat
	}
	for _, n := range records {
		state := "unseen"
		if n.Seen {
			state = "seen"
		}
		if n.Deleted {
			state += ",deleted"
		}
		_, err := fmt.Fprintf(writer, "%-36s  %-14s  %-16s  %-14s  %s\n",
			n.ID, state, FormatDate(n.Date, dateFormat), truncate(n.Cluster, 14), n.Message)
		if err != nil {
			return err
		}
	}
	return nil
}
