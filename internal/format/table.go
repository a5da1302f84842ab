package format

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/inbox/internal/presenter"
)

const (
	idColumnWidth      = 8
	messageColumnWidth = 48
	clusterColumnWidth = 14
	columnGap          = "  "
	unseenMarker       = "●"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	unseenStyle = lipgloss.NewStyle().Bold(true)
	seenStyle   = lipgloss.NewStyle().Faint(true)
	emptyStyle  = lipgloss.NewStyle().Italic(true)
)

// TableColumn represents a column in the table.
type TableColumn struct {
	// Name is the column name displayed in the header.
	Name string

	// Width is the column width in characters.
	Width int

	// Extractor extracts the cell value from a row.
	Extractor func(presenter.Row) string
}

// TableFormatter renders the visible rows with headers. The cluster column is
// included only when the view asks for it.
type TableFormatter struct {
	opts Options
}

// NewTableFormatter creates a TableFormatter.
func NewTableFormatter(opts Options) *TableFormatter {
	return &TableFormatter{opts: opts}
}

// Columns returns the columns used for view.
func (f *TableFormatter) Columns(view presenter.View) []TableColumn {
	dateFormat := f.opts.dateFormat()
	columns := []TableColumn{
		{Name: "", Width: 1, Extractor: func(r presenter.Row) string {
			if r.ShowMarkRead {
				return unseenMarker
			}
			return ""
		}},
		{Name: "ID", Width: idColumnWidth, Extractor: func(r presenter.Row) string { return r.ID }},
		{Name: view.Labels.Message, Width: messageColumnWidth, Extractor: func(r presenter.Row) string { return r.Text }},
	}
	if view.ShowClusterColumn {
		columns = append(columns, TableColumn{
			Name: view.Labels.Cluster, Width: clusterColumnWidth,
			Extractor: func(r presenter.Row) string { return r.Cluster },
		})
	}
	columns = append(columns, TableColumn{
		Name: view.Labels.Date, Width: len(dateFormat),
		Extractor: func(r presenter.Row) string { return FormatDate(r.Date, dateFormat) },
	})
	return columns
}

// FormatView writes the table, or the empty-state text when every
// notification is deleted.
func (f *TableFormatter) FormatView(view presenter.View, writer io.Writer) error {
	if view.AllDeleted {
		_, err := fmt.Fprintln(writer, emptyStyle.Render(view.Labels.Empty))
		return err
	}
	if len(view.Rows) == 0 {
		return nil
	}

	columns := f.Columns(view)
	header := make([]string, len(columns))
	separator := make([]string, len(columns))
	for i, col := range columns {
		header[i] = pad(col.Name, col.Width)
		separator[i] = strings.Repeat("-", col.Width)
	}
	if _, err := fmt.Fprintln(writer, headerStyle.Render(strings.Join(header, columnGap))); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(writer, headerStyle.Render(strings.Join(separator, columnGap))); err != nil {
		return err
	}

	for _, row := range view.Rows {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = pad(truncate(col.Extractor(row), col.Width), col.Width)
		}
		style := seenStyle
		if row.Bold {
			style = unseenStyle
		}
		line := strings.TrimRight(strings.Join(cells, columnGap), " ")
		if _, err := fmt.Fprintln(writer, style.Render(line)); err != nil {
			return err
		}
	}
	return nil
}

// FormatDate renders t with layout; the zero time renders empty.
func FormatDate(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(layout)
}

// pad left-aligns s in width cells.
func pad(s string, width int) string {
	n := lipgloss.Width(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// truncate shortens s to width cells, adding "..." if truncated.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width < 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
