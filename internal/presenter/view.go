package presenter

import (
	"strings"
	"time"

	"github.com/cristianoliveira/inbox/internal/domain"
)

// Translation keys used by the list.
const (
	KeyTitle         = "translation|Notifications"
	KeyMessage       = "translation|Message"
	KeyCluster       = "glossary|Cluster"
	KeyDate          = "translation|Date"
	KeyVisible       = "translation|Visible"
	KeyNoMessage     = "translation|No message"
	KeyMarkAsRead    = "translation|Mark as read"
	KeyMarkAllAsRead = "translation|Mark all as read"
	KeyClearAll      = "translation|Clear all"
	KeyEmpty         = "translation|You don't have any notifications right now"
)

// Row is a single visible notification prepared for display.
type Row struct {
	ID      string
	Text    string
	Cluster string
	Date    time.Time
	// Bold marks unseen rows.
	Bold bool
	// Clickable is true when activating the row navigates.
	Clickable bool
	// ShowMarkRead offers the per-row mark-as-read affordance.
	ShowMarkRead bool
}

// Labels holds translated display strings.
type Labels struct {
	Title         string
	Message       string
	Cluster       string
	Date          string
	Visible       string
	MarkAsRead    string
	MarkAllAsRead string
	ClearAll      string
	Empty         string
}

// View is everything a list UI needs for one render.
type View struct {
	AllDeleted        bool
	HasUnseen         bool
	ShowClusterColumn bool
	Rows              []Row
	Labels            Labels
}

// CanMarkAllRead reports whether the mark-all-read action is offered.
func (v View) CanMarkAllRead() bool {
	return v.HasUnseen
}

// CanClearAll reports whether the clear-all action is offered.
func (v View) CanClearAll() bool {
	return !v.AllDeleted
}

// View derives the list view from the current store snapshot.
func (p *Presenter) View() View {
	return p.ViewOf(p.store.Snapshot())
}

// ViewOf derives the list view from the given collection.
func (p *Presenter) ViewOf(notifications []domain.Notification) View {
	return p.FilteredViewOf(notifications, domain.Filter{})
}

// FilteredViewOf is ViewOf with filter applied to the visible rows. The
// aggregate flags always describe the whole collection.
func (p *Presenter) FilteredViewOf(notifications []domain.Notification, filter domain.Filter) View {
	derived := domain.BuildView(notifications)
	noMessage := p.translator.Translate(KeyNoMessage)

	visible := domain.FilterNotifications(derived.Rows, filter)
	rows := make([]Row, 0, len(visible))
	for _, n := range visible {
		text := n.Message
		if text == "" {
			text = noMessage
		}
		rows = append(rows, Row{
			ID:           n.ID,
			Text:         text,
			Cluster:      n.Cluster,
			Date:         n.Date,
			Bold:         !n.Seen,
			Clickable:    n.HasURL(),
			ShowMarkRead: !n.Seen,
		})
	}

	return View{
		AllDeleted:        derived.AllDeleted,
		HasUnseen:         derived.HasUnseen,
		ShowClusterColumn: derived.ShowClusterColumn,
		Rows:              rows,
		Labels:            p.labels(),
	}
}

func (p *Presenter) labels() Labels {
	t := p.translator.Translate
	return Labels{
		Title:         t(KeyTitle),
		Message:       t(KeyMessage),
		Cluster:       t(KeyCluster),
		Date:          t(KeyDate),
		Visible:       t(KeyVisible),
		MarkAsRead:    t(KeyMarkAsRead),
		MarkAllAsRead: t(KeyMarkAllAsRead),
		ClearAll:      t(KeyClearAll),
		Empty:         t(KeyEmpty),
	}
}

// passthroughTranslator shows the text part of a namespaced key.
type passthroughTranslator struct{}

func (passthroughTranslator) Translate(key string) string {
	if _, text, ok := strings.Cut(key, "|"); ok {
		return text
	}
	return key
}
