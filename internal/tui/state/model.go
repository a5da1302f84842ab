// Package state holds the bubbletea model of the notification list.
package state

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/inbox/internal/domain"
	"github.com/cristianoliveira/inbox/internal/logging"
	"github.com/cristianoliveira/inbox/internal/presenter"
	"github.com/cristianoliveira/inbox/internal/store"
)

const (
	headerFooterLines     = 4
	defaultViewportWidth  = 80
	defaultViewportHeight = 22
	statusClearDuration   = 5 * time.Second

	noMatchesText = "No notifications match the current filter"
)

// Source is what the model reads notifications from.
type Source interface {
	Snapshot() []domain.Notification
	Subscribe() (<-chan store.Event, func())
}

// Options configures a Model.
type Options struct {
	DateLayout string
	Keys       *KeyMap
}

// Model is the notification list screen.
type Model struct {
	presenter *presenter.Presenter
	source    Source
	keys      KeyMap
	ui        *UIState
	opts      Options
	logger    logging.Logger

	notifications []domain.Notification
	view          presenter.View

	events      <-chan store.Event
	unsubscribe func()

	status    string
	statusSeq int
}

// NewModel creates the list model and subscribes to store changes.
func NewModel(p *presenter.Presenter, source Source, opts Options) *Model {
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	m := &Model{
		presenter: p,
		source:    source,
		keys:      keys,
		ui:        NewUIState(),
		opts:      opts,
		logger:    logging.GetGlobal(),
	}
	m.events, m.unsubscribe = source.Subscribe()
	m.reload(source.Snapshot())
	return m
}

// Init starts listening for store events.
func (m *Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

// Close stops the store subscription.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.ui.SetSize(msg.Width, msg.Height)
		m.updateViewportContent()
		return m, nil
	case storeChangedMsg:
		m.logger.Debug("tui received store event", "kind", string(msg.event.Kind), "id", msg.event.ID)
		m.reload(msg.event.Notifications)
		return m, waitForEvent(m.events)
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ui.IsConfirmingClear() {
		return m.handleConfirmation(msg)
	}
	if m.ui.IsSearchMode() {
		return m.handleSearchInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.ui.MoveCursorDown(len(m.view.Rows))
		m.updateViewportContent()
	case key.Matches(msg, m.keys.Up):
		m.ui.MoveCursorUp()
		m.updateViewportContent()
	case key.Matches(msg, m.keys.Activate):
		if row, ok := m.selected(); ok {
			return m, m.apply(m.presenter.Activate(row.ID))
		}
	case key.Matches(msg, m.keys.MarkRead):
		if row, ok := m.selected(); ok {
			return m, m.apply(m.presenter.ToggleSeen(row.ID))
		}
	case key.Matches(msg, m.keys.MarkAllRead):
		if !m.view.CanMarkAllRead() {
			return m, m.setStatus("Nothing to mark as read")
		}
		return m, m.apply(m.presenter.MarkAllRead())
	case key.Matches(msg, m.keys.ClearAll):
		if !m.view.CanClearAll() {
			return m, m.setStatus("Nothing to clear")
		}
		m.ui.SetConfirmingClear(true)
	case key.Matches(msg, m.keys.UnreadOnly):
		m.ui.ToggleUnreadOnly()
		m.refilter()
	case key.Matches(msg, m.keys.Search):
		m.ui.SetSearchMode(true)
	}
	return m, nil
}

func (m *Model) handleConfirmation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.ui.SetConfirmingClear(false)
		return m, m.apply(m.presenter.ClearAll())
	case key.Matches(msg, m.keys.Cancel):
		m.ui.SetConfirmingClear(false)
	case msg.Type == tea.KeyCtrlC:
		m.Close()
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.Close()
		return m, tea.Quit
	case tea.KeyEsc:
		m.ui.SetSearchMode(false)
	case tea.KeyEnter:
		m.ui.FinishSearch()
	case tea.KeyBackspace:
		m.ui.BackspaceSearchQuery()
	case tea.KeySpace:
		m.ui.AppendToSearchQuery([]rune{' '})
	case tea.KeyRunes:
		m.ui.AppendToSearchQuery(msg.Runes)
	default:
		return m, nil
	}
	m.refilter()
	return m, nil
}

// apply refreshes the view after a presenter action and reports its error.
func (m *Model) apply(err error) tea.Cmd {
	m.reload(m.source.Snapshot())
	if err != nil {
		m.logger.Error("tui action failed", "error", err)
		return m.setStatus(fmt.Sprintf("Error: %v", err))
	}
	return nil
}

func (m *Model) setStatus(text string) tea.Cmd {
	m.status = text
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusClearDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *Model) reload(notifications []domain.Notification) {
	m.notifications = notifications
	m.refilter()
}

func (m *Model) filter() domain.Filter {
	f := domain.Filter{Query: strings.ToLower(strings.TrimSpace(m.ui.SearchQuery()))}
	if m.ui.UnreadOnly() {
		f.ReadFilter = domain.ReadFilterUnread
	}
	return f
}

func (m *Model) refilter() {
	m.view = m.presenter.FilteredViewOf(m.notifications, m.filter())
	m.ui.AdjustCursorBounds(len(m.view.Rows))
	m.updateViewportContent()
}

func (m *Model) selected() (presenter.Row, bool) {
	cursor := m.ui.Cursor()
	if cursor < 0 || cursor >= len(m.view.Rows) {
		return presenter.Row{}, false
	}
	return m.view.Rows[cursor], true
}

// CurrentView returns the view the screen is showing.
func (m *Model) CurrentView() presenter.View {
	return m.view
}
