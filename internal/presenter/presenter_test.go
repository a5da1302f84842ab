package presenter

import (
	"testing"
	"time"

	"github.com/cristianoliveira/inbox/internal/domain"
	"github.com/cristianoliveira/inbox/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRouter struct {
	mock.Mock
}

func (m *mockRouter) NavigateTo(url string) {
	m.Called(url)
}

type mapTranslator map[string]string

func (t mapTranslator) Translate(key string) string {
	if v, ok := t[key]; ok {
		return v
	}
	return key
}

func newTestPresenter(t *testing.T, initial []domain.Notification) (*Presenter, *store.Store, *mockRouter) {
	t.Helper()
	s := store.New(initial)
	r := new(mockRouter)
	return New(s, r, nil), s, r
}

func TestToggleSeenMarksOnlyTarget(t *testing.T) {
	p, s, _ := newTestPresenter(t, []domain.Notification{
		{ID: "1", Message: "a"},
		{ID: "2", Message: "b", Cluster: "x", URL: "/b"},
		{ID: "3", Message: "c"},
	})

	require.NoError(t, p.ToggleSeen("2"))

	assert.Equal(t, []domain.Notification{
		{ID: "1", Message: "a"},
		{ID: "2", Message: "b", Cluster: "x", URL: "/b", Seen: true},
		{ID: "3", Message: "c"},
	}, s.Snapshot())
}

func TestToggleSeenAlreadySeenIsNoop(t *testing.T) {
	initial := []domain.Notification{{ID: "1", Seen: true, Deleted: true}}
	p, s, _ := newTestPresenter(t, initial)
	events, unsubscribe := s.Subscribe()
	defer unsubscribe()

	require.NoError(t, p.ToggleSeen("1"))

	assert.Equal(t, initial, s.Snapshot())
	assert.Empty(t, events)
}

func TestToggleSeenMissingIDIsNoop(t *testing.T) {
	initial := []domain.Notification{{ID: "1"}}
	p, s, _ := newTestPresenter(t, initial)

	require.NoError(t, p.ToggleSeen("99"))

	assert.Equal(t, initial, s.Snapshot())
}

func TestActivateWithURLNavigatesAndMarksSeen(t *testing.T) {
	p, s, r := newTestPresenter(t, []domain.Notification{
		{ID: "1", Message: "pod crashed", URL: "/c/prod/pods/web"},
	})
	r.On("NavigateTo", "/c/prod/pods/web").Return().Once()

	require.NoError(t, p.Activate("1"))

	r.AssertExpectations(t)
	got, _ := s.Get("1")
	assert.Equal(t, domain.Notification{ID: "1", Message: "pod crashed", URL: "/c/prod/pods/web", Seen: true}, got)
}

func TestActivateWithoutURLOnlyMarksSeen(t *testing.T) {
	p, s, r := newTestPresenter(t, []domain.Notification{{ID: "1"}})

	require.NoError(t, p.Activate("1"))

	r.AssertNotCalled(t, "NavigateTo", mock.Anything)
	got, _ := s.Get("1")
	assert.True(t, got.Seen)
}

func TestActivateAlreadySeenStillNavigates(t *testing.T) {
	p, s, r := newTestPresenter(t, []domain.Notification{{ID: "1", Seen: true, URL: "/x"}})
	r.On("NavigateTo", "/x").Return()

	require.NoError(t, p.Activate("1"))

	r.AssertNumberOfCalls(t, "NavigateTo", 1)
	got, _ := s.Get("1")
	assert.True(t, got.Seen)
}

func TestActivateMissingIDIsNoop(t *testing.T) {
	p, s, r := newTestPresenter(t, []domain.Notification{{ID: "1", URL: "/x"}})

	require.NoError(t, p.Activate("2"))

	r.AssertNotCalled(t, "NavigateTo", mock.Anything)
	got, _ := s.Get("1")
	assert.False(t, got.Seen)
}

func TestMarkAllReadIncludesDeleted(t *testing.T) {
	p, s, _ := newTestPresenter(t, []domain.Notification{
		{ID: "1"},
		{ID: "2", Deleted: true},
		{ID: "3", Seen: true},
	})

	require.NoError(t, p.MarkAllRead())

	assert.Equal(t, []domain.Notification{
		{ID: "1", Seen: true},
		{ID: "2", Seen: true, Deleted: true},
		{ID: "3", Seen: true},
	}, s.Snapshot())
}

func TestMarkAllReadIsIdempotent(t *testing.T) {
	p, s, _ := newTestPresenter(t, []domain.Notification{{ID: "1"}, {ID: "2", Deleted: true}})

	require.NoError(t, p.MarkAllRead())
	once := s.Snapshot()
	require.NoError(t, p.MarkAllRead())

	assert.Equal(t, once, s.Snapshot())
}

func TestMarkAllReadDisabledWithoutUnseen(t *testing.T) {
	// only the deleted record is unseen, so the action is not offered
	initial := []domain.Notification{{ID: "1", Seen: true}, {ID: "2", Deleted: true}}
	p, s, _ := newTestPresenter(t, initial)

	require.NoError(t, p.MarkAllRead())

	assert.Equal(t, initial, s.Snapshot())
}

func TestClearAllKeepsSeen(t *testing.T) {
	p, s, _ := newTestPresenter(t, []domain.Notification{
		{ID: "1"},
		{ID: "2", Seen: true},
	})

	require.NoError(t, p.ClearAll())

	assert.Equal(t, []domain.Notification{
		{ID: "1", Deleted: true},
		{ID: "2", Seen: true, Deleted: true},
	}, s.Snapshot())
}

func TestClearAllIsIdempotent(t *testing.T) {
	p, s, _ := newTestPresenter(t, []domain.Notification{{ID: "1"}, {ID: "2", Seen: true}})

	require.NoError(t, p.ClearAll())
	once := s.Snapshot()
	require.NoError(t, p.ClearAll())

	assert.Equal(t, once, s.Snapshot())
}

func TestClearAllOnEmptyCollection(t *testing.T) {
	p, s, _ := newTestPresenter(t, nil)

	require.NoError(t, p.ClearAll())
	require.NoError(t, p.MarkAllRead())

	assert.Empty(t, s.Snapshot())
}

func TestRestoreUndeletes(t *testing.T) {
	p, s, _ := newTestPresenter(t, []domain.Notification{{ID: "1", Seen: true, Deleted: true}})

	require.NoError(t, p.Restore("1"))
	require.NoError(t, p.Restore("404"))

	got, _ := s.Get("1")
	assert.Equal(t, domain.Notification{ID: "1", Seen: true}, got)
}

func TestScenarioMarkAllRead(t *testing.T) {
	p, s, _ := newTestPresenter(t, []domain.Notification{{ID: "1"}})
	before := p.View()
	require.True(t, before.HasUnseen)
	require.False(t, before.AllDeleted)

	require.NoError(t, p.MarkAllRead())

	assert.Equal(t, []domain.Notification{{ID: "1", Seen: true}}, s.Snapshot())
	assert.False(t, p.View().HasUnseen)
}

func TestScenarioClearAll(t *testing.T) {
	p, s, _ := newTestPresenter(t, []domain.Notification{{ID: "1"}})

	require.NoError(t, p.ClearAll())

	assert.Equal(t, []domain.Notification{{ID: "1", Deleted: true}}, s.Snapshot())
	v := p.View()
	assert.Empty(t, v.Rows)
	assert.True(t, v.AllDeleted)
}

func TestScenarioClusterColumn(t *testing.T) {
	p, s, _ := newTestPresenter(t, []domain.Notification{{ID: "1", Cluster: "a"}, {ID: "2", Cluster: "a"}})
	assert.False(t, p.View().ShowClusterColumn)

	require.NoError(t, s.ReplaceAll([]domain.Notification{{ID: "1", Cluster: "a"}, {ID: "2", Cluster: "b"}}))
	assert.True(t, p.View().ShowClusterColumn)
}

func TestViewRows(t *testing.T) {
	date := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s := store.New([]domain.Notification{
		{ID: "1", Message: "Deployment scaled", Cluster: "prod", Date: date},
		{ID: "2", Deleted: true},
		{ID: "3", Cluster: "dev", URL: "/c/dev", Seen: true},
	})
	tr := mapTranslator{KeyNoMessage: "Keine Nachricht", KeyClearAll: "Alle löschen"}
	p := New(s, new(mockRouter), tr)

	v := p.View()

	require.Len(t, v.Rows, 2)
	assert.Equal(t, Row{ID: "1", Text: "Deployment scaled", Cluster: "prod", Date: date, Bold: true, ShowMarkRead: true}, v.Rows[0])
	assert.Equal(t, Row{ID: "3", Text: "Keine Nachricht", Cluster: "dev", Clickable: true}, v.Rows[1])
	assert.True(t, v.ShowClusterColumn)
	assert.True(t, v.CanMarkAllRead())
	assert.True(t, v.CanClearAll())
	assert.Equal(t, "Alle löschen", v.Labels.ClearAll)
	assert.Equal(t, KeyDate, v.Labels.Date, "missing translations fall through")
}

func TestViewDefaultTranslatorUsesKeyText(t *testing.T) {
	p, _, _ := newTestPresenter(t, nil)

	v := p.View()

	assert.Equal(t, "You don't have any notifications right now", v.Labels.Empty)
	assert.Equal(t, "Cluster", v.Labels.Cluster)
	assert.False(t, v.CanClearAll())
	assert.False(t, v.CanMarkAllRead())
}

func TestFilteredViewKeepsAggregateFlags(t *testing.T) {
	p, s, _ := newTestPresenter(t, []domain.Notification{
		{ID: "1", Cluster: "a"},
		{ID: "2", Cluster: "b", Seen: true},
	})

	v := p.FilteredViewOf(s.Snapshot(), domain.Filter{ReadFilter: domain.ReadFilterRead})

	require.Len(t, v.Rows, 1)
	assert.Equal(t, "2", v.Rows[0].ID)
	assert.True(t, v.HasUnseen)
	assert.True(t, v.ShowClusterColumn)
}

func TestNewPanicsWithoutDependencies(t *testing.T) {
	assert.Panics(t, func() { New(nil, new(mockRouter), nil) })
	assert.Panics(t, func() { New(store.New(nil), nil, nil) })
}
