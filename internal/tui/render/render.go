// Package render draws the pieces of the notification list screen.
package render

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/inbox/internal/presenter"
)

const (
	markerWidth          = 1
	clusterWidth         = 14
	dateWidth            = 16
	defaultMessageWidth  = 50
	minMessageWidth      = 10
	spacesBetweenColumns = 2
	unseenMarker         = "●"
	dateLayout           = "2006-01-02 15:04"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	titleStyle    = lipgloss.NewStyle().Bold(true)
	unseenStyle   = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("4")).Foreground(lipgloss.Color("0"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Columns describes which optional columns are drawn.
type Columns struct {
	Cluster bool
	Width   int
	// DateLayout defaults to "2006-01-02 15:04".
	DateLayout string
}

func (c Columns) messageWidth() int {
	if c.Width == 0 {
		return defaultMessageWidth
	}
	fixed := markerWidth + dateWidth + 2*spacesBetweenColumns
	if c.Cluster {
		fixed += clusterWidth + spacesBetweenColumns
	}
	w := c.Width - fixed
	if w < minMessageWidth {
		return minMessageWidth
	}
	return w
}

func (c Columns) dateLayout() string {
	if c.DateLayout == "" {
		return dateLayout
	}
	return c.DateLayout
}

// Title renders the list title with the visible row count.
func Title(labels presenter.Labels, visible int) string {
	return titleStyle.Render(fmt.Sprintf("%s (%d)", labels.Title, visible))
}

// Header renders the column header.
func Header(labels presenter.Labels, cols Columns) string {
	cells := []string{
		pad("", markerWidth),
		pad(labels.Message, cols.messageWidth()),
	}
	if cols.Cluster {
		cells = append(cells, pad(labels.Cluster, clusterWidth))
	}
	cells = append(cells, pad(labels.Date, dateWidth))
	return headerStyle.Render(joinCells(cells))
}

// RowState defines the inputs needed to render a notification row.
type RowState struct {
	Row      presenter.Row
	Columns  Columns
	Selected bool
}

// Row renders a single notification row. Unseen rows are bold and marked.
func Row(state RowState) string {
	marker := ""
	if state.Row.ShowMarkRead {
		marker = unseenMarker
	}
	date := ""
	if !state.Row.Date.IsZero() {
		date = state.Row.Date.In(time.Local).Format(state.Columns.dateLayout())
	}
	width := state.Columns.messageWidth()
	cells := []string{
		pad(marker, markerWidth),
		pad(truncate(state.Row.Text, width), width),
	}
	if state.Columns.Cluster {
		cells = append(cells, pad(truncate(state.Row.Cluster, clusterWidth), clusterWidth))
	}
	cells = append(cells, pad(truncate(date, dateWidth), dateWidth))

	style := lipgloss.NewStyle()
	if state.Row.Bold {
		style = unseenStyle
	}
	if state.Selected {
		style = selectedStyle.Bold(state.Row.Bold)
	}
	return style.Render(joinCells(cells))
}

// Empty renders the placeholder shown when there are no rows.
func Empty(text string) string {
	return mutedStyle.Render(text)
}

// FooterState defines the inputs needed to render the footer.
type FooterState struct {
	Help          []string
	SearchMode    bool
	SearchQuery   string
	ConfirmPrompt string
	Status        string
}

// Footer renders the help line, or the active prompt.
func Footer(state FooterState) string {
	var line string
	switch {
	case state.ConfirmPrompt != "":
		line = statusStyle.Render(state.ConfirmPrompt + " [y/n]")
	case state.SearchMode:
		line = mutedStyle.Render(fmt.Sprintf("Search: %s  |  esc: exit search", state.SearchQuery))
	default:
		line = mutedStyle.Render(strings.Join(state.Help, "  |  "))
	}
	if state.Status != "" {
		line = statusStyle.Render(state.Status) + "  " + line
	}
	return line
}

func joinCells(cells []string) string {
	return strings.TrimRight(strings.Join(cells, strings.Repeat(" ", spacesBetweenColumns)), " ")
}

func pad(s string, width int) string {
	n := lipgloss.Width(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	if width < 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
