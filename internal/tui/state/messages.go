package state

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/inbox/internal/store"
)

// storeChangedMsg is sent when the store publishes a mutation.
type storeChangedMsg struct {
	event store.Event
}

// clearStatusMsg clears the status line after a delay.
type clearStatusMsg struct {
	seq int
}

// waitForEvent blocks on the subscription until the next store event.
func waitForEvent(events <-chan store.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return storeChangedMsg{event: ev}
	}
}
