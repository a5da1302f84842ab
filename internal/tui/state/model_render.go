package state

import (
	"strings"

	"github.com/cristianoliveira/inbox/internal/tui/render"
)

// View renders the TUI.
func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(render.Title(m.view.Labels, len(m.view.Rows)))
	s.WriteString("\n")
	s.WriteString(render.Header(m.view.Labels, m.columns()))
	s.WriteString("\n")
	s.WriteString(m.ui.Viewport().View())
	s.WriteString("\n")

	footer := render.FooterState{
		SearchMode:  m.ui.IsSearchMode(),
		SearchQuery: m.ui.SearchQuery(),
		Status:      m.status,
	}
	if m.ui.IsConfirmingClear() {
		footer.ConfirmPrompt = m.view.Labels.ClearAll + "?"
	}
	for _, b := range m.keys.listHelp() {
		h := b.Help()
		footer.Help = append(footer.Help, h.Key+": "+h.Desc)
	}
	s.WriteString(render.Footer(footer))

	return s.String()
}

func (m *Model) columns() render.Columns {
	return render.Columns{
		Cluster:    m.view.ShowClusterColumn,
		Width:      m.ui.Width(),
		DateLayout: m.opts.DateLayout,
	}
}

// updateViewportContent renders the rows into the viewport and scrolls the
// cursor into view.
func (m *Model) updateViewportContent() {
	var content strings.Builder
	switch {
	case m.view.AllDeleted:
		content.WriteString(render.Empty(m.view.Labels.Empty))
	case len(m.view.Rows) == 0:
		content.WriteString(render.Empty(noMatchesText))
	default:
		cols := m.columns()
		cursor := m.ui.Cursor()
		for i, row := range m.view.Rows {
			if i > 0 {
				content.WriteString("\n")
			}
			content.WriteString(render.Row(render.RowState{Row: row, Columns: cols, Selected: i == cursor}))
		}
	}
	m.ui.Viewport().SetContent(content.String())
	m.ui.EnsureCursorVisible()
}
