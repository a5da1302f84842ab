package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cristianoliveira/inbox/internal/colors"
	"github.com/cristianoliveira/inbox/internal/config"
	"github.com/cristianoliveira/inbox/internal/domain"
	"github.com/cristianoliveira/inbox/internal/presenter"
	"github.com/cristianoliveira/inbox/internal/store"
	"github.com/cristianoliveira/inbox/internal/tui/state"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) Snapshot() ([]domain.Notification, error) {
	args := m.Called()
	records, _ := args.Get(0).([]domain.Notification)
	return records, args.Error(1)
}

func (m *mockClient) View(filter domain.Filter) (presenter.View, error) {
	args := m.Called(filter)
	return args.Get(0).(presenter.View), args.Error(1)
}

func (m *mockClient) Lookup(id string) (domain.Notification, bool, error) {
	args := m.Called(id)
	return args.Get(0).(domain.Notification), args.Bool(1), args.Error(2)
}

func (m *mockClient) Add(message, cluster, url string, date time.Time) (domain.Notification, error) {
	args := m.Called(message, cluster, url, date)
	return args.Get(0).(domain.Notification), args.Error(1)
}

func (m *mockClient) Import(records []domain.Notification) error {
	return m.Called(records).Error(0)
}

func (m *mockClient) ToggleSeen(id string) error {
	return m.Called(id).Error(0)
}

func (m *mockClient) Activate(id string) error {
	return m.Called(id).Error(0)
}

func (m *mockClient) MarkAllRead() error {
	return m.Called().Error(0)
}

func (m *mockClient) ClearAll() error {
	return m.Called().Error(0)
}

func (m *mockClient) Restore(id string) error {
	return m.Called(id).Error(0)
}

func (m *mockClient) Session() (*presenter.Presenter, *store.Store, error) {
	args := m.Called()
	p, _ := args.Get(0).(*presenter.Presenter)
	s, _ := args.Get(1).(*store.Store)
	return p, s, args.Error(2)
}

// execute runs c with args and returns command output and console output.
func execute(t *testing.T, c *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	var out, console bytes.Buffer
	restore := colors.SetOutput(&console, &console)
	t.Cleanup(restore)
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), console.String(), err
}

func sampleView() presenter.View {
	return presenter.View{
		HasUnseen: true,
		Rows: []presenter.Row{
			{ID: "n1", Text: "Pod web-1 restarted", Cluster: "prod", Bold: true, ShowMarkRead: true},
			{ID: "n2", Text: "Deployment scaled", Cluster: "dev"},
		},
		ShowClusterColumn: true,
		Labels:            presenter.Labels{Message: "Message", Cluster: "Cluster", Date: "Date", ClearAll: "Clear all", Empty: "You don't have any notifications right now"},
	}
}

func TestCommandsPanicWithoutClient(t *testing.T) {
	assert.Panics(t, func() { NewListCmd(nil) })
	assert.Panics(t, func() { NewAddCmd(nil) })
	assert.Panics(t, func() { NewImportCmd(nil) })
	assert.Panics(t, func() { NewMarkReadCmd(nil) })
	assert.Panics(t, func() { NewClearCmd(new(mockClient), nil) })
	assert.Panics(t, func() { NewTUICmd(new(mockClient), nil) })
}

func TestListTable(t *testing.T) {
	m := new(mockClient)
	m.On("View", domain.Filter{}).Return(sampleView(), nil)

	out, _, err := execute(t, NewListCmd(m))

	require.NoError(t, err)
	assert.Contains(t, out, "Pod web-1 restarted")
	assert.Contains(t, out, "Cluster")
	m.AssertExpectations(t)
}

func TestListPassesFilters(t *testing.T) {
	m := new(mockClient)
	want := domain.Filter{Cluster: "prod", ReadFilter: domain.ReadFilterUnread, Query: "pod"}
	m.On("View", want).Return(sampleView(), nil)

	out, _, err := execute(t, NewListCmd(m), "--cluster", "prod", "--filter", "unread", "--search", "Pod", "--format", "compact")

	require.NoError(t, err)
	assert.Equal(t, "Pod web-1 restarted\nDeployment scaled\n", out)
	m.AssertExpectations(t)
}

func TestListRejectsBadOptions(t *testing.T) {
	m := new(mockClient)

	_, _, err := execute(t, NewListCmd(m), "--format", "xml")
	assert.ErrorContains(t, err, `unknown format "xml"`)

	_, _, err = execute(t, NewListCmd(m), "--filter", "maybe")
	assert.ErrorContains(t, err, "invalid read filter")

	m.AssertNotCalled(t, "View", mock.Anything)
}

func TestListAllShowsDeleted(t *testing.T) {
	m := new(mockClient)
	m.On("Snapshot").Return([]domain.Notification{{ID: "n1", Message: "gone", Deleted: true}}, nil)

	out, _, err := execute(t, NewListCmd(m), "--all")

	require.NoError(t, err)
	assert.Contains(t, out, "unseen,deleted")
	assert.Contains(t, out, "gone")
}

func TestListError(t *testing.T) {
	m := new(mockClient)
	m.On("View", domain.Filter{}).Return(presenter.View{}, errors.New("boom"))

	_, _, err := execute(t, NewListCmd(m))

	assert.EqualError(t, err, "list: boom")
}

func TestStatus(t *testing.T) {
	m := new(mockClient)
	m.On("Snapshot").Return([]domain.Notification{{ID: "1", Cluster: "prod"}, {ID: "2", Seen: true}}, nil)

	out, _, err := execute(t, NewStatusCmd(m))
	require.NoError(t, err)
	assert.Contains(t, out, "Notifications: 2 (1 unseen)")

	out, _, err = execute(t, NewStatusCmd(m), "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"unseen"`)
}

func TestAdd(t *testing.T) {
	m := new(mockClient)
	date := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	m.On("Add", "pod crashed again", "prod", "/c/prod", date).Return(domain.Notification{ID: "abc"}, nil)

	_, console, err := execute(t, NewAddCmd(m), "--cluster", "prod", "--url", "/c/prod", "--date", "2025-03-01T10:00:00Z", "pod", "crashed", "again")

	require.NoError(t, err)
	assert.Contains(t, console, "added notification abc")
	m.AssertExpectations(t)
}

func TestAddWithoutDateUsesZero(t *testing.T) {
	m := new(mockClient)
	m.On("Add", "hello", "", "", time.Time{}).Return(domain.Notification{ID: "x"}, nil)

	_, _, err := execute(t, NewAddCmd(m), "hello")

	require.NoError(t, err)
	m.AssertExpectations(t)
}

func TestAddInvalidDate(t *testing.T) {
	m := new(mockClient)

	_, _, err := execute(t, NewAddCmd(m), "--date", "yesterday", "hello")

	assert.ErrorContains(t, err, "add: invalid --date")
	m.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestImportFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "n.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"1","message":"a"},{"id":"2","seen":true}]`), 0600))
	m := new(mockClient)
	m.On("Import", []domain.Notification{{ID: "1", Message: "a"}, {ID: "2", Seen: true}}).Return(nil)

	_, console, err := execute(t, NewImportCmd(m), path)

	require.NoError(t, err)
	assert.Contains(t, console, "imported 2 notifications")
	m.AssertExpectations(t)
}

func TestImportFromStdinRejectsMissingID(t *testing.T) {
	m := new(mockClient)
	c := NewImportCmd(m)
	c.SetIn(bytes.NewBufferString(`[{"message":"no id"}]`))

	_, _, err := execute(t, c, "-")

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	m.AssertNotCalled(t, "Import", mock.Anything)
}

func TestExport(t *testing.T) {
	m := new(mockClient)
	m.On("Snapshot").Return([]domain.Notification{{ID: "1", Deleted: true}}, nil)

	out, _, err := execute(t, NewExportCmd(m))

	require.NoError(t, err)
	assert.Contains(t, out, `"id": "1"`)
	assert.Contains(t, out, `"deleted": true`)
}

func TestMarkRead(t *testing.T) {
	m := new(mockClient)
	m.On("Lookup", "42").Return(domain.Notification{ID: "42"}, true, nil)
	m.On("ToggleSeen", "42").Return(nil)

	_, console, err := execute(t, NewMarkReadCmd(m), "42")

	require.NoError(t, err)
	assert.Contains(t, console, "notification 42 marked as read")
	m.AssertExpectations(t)
}

func TestMarkReadAlreadySeen(t *testing.T) {
	m := new(mockClient)
	m.On("Lookup", "42").Return(domain.Notification{ID: "42", Seen: true}, true, nil)

	_, console, err := execute(t, NewMarkReadCmd(m), "42")

	require.NoError(t, err)
	assert.Contains(t, console, "already read")
	m.AssertNotCalled(t, "ToggleSeen", mock.Anything)
}

func TestMarkReadNotFound(t *testing.T) {
	m := new(mockClient)
	m.On("Lookup", "99").Return(domain.Notification{}, false, nil)

	_, _, err := execute(t, NewMarkReadCmd(m), "99")

	assert.EqualError(t, err, "mark-read: notification 99 not found")
}

func TestMarkReadRequiresID(t *testing.T) {
	_, _, err := execute(t, NewMarkReadCmd(new(mockClient)))

	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	m := new(mockClient)
	m.On("Lookup", "1").Return(domain.Notification{ID: "1", URL: "/x", Seen: true}, true, nil)
	m.On("Activate", "1").Return(nil)

	_, console, err := execute(t, NewOpenCmd(m), "1")

	require.NoError(t, err)
	assert.Empty(t, console)
	m.AssertExpectations(t)
}

func TestOpenWithoutURL(t *testing.T) {
	m := new(mockClient)
	m.On("Lookup", "1").Return(domain.Notification{ID: "1"}, true, nil)
	m.On("Activate", "1").Return(nil)

	_, console, err := execute(t, NewOpenCmd(m), "1")

	require.NoError(t, err)
	assert.Contains(t, console, "has no URL")
}

func TestMarkAllRead(t *testing.T) {
	m := new(mockClient)
	m.On("View", domain.Filter{}).Return(sampleView(), nil)
	m.On("MarkAllRead").Return(nil)

	_, console, err := execute(t, NewMarkAllReadCmd(m))

	require.NoError(t, err)
	assert.Contains(t, console, "all notifications marked as read")
	m.AssertExpectations(t)
}

func TestMarkAllReadNothingToMark(t *testing.T) {
	m := new(mockClient)
	m.On("View", domain.Filter{}).Return(presenter.View{}, nil)

	_, console, err := execute(t, NewMarkAllReadCmd(m))

	require.NoError(t, err)
	assert.Contains(t, console, "nothing to mark as read")
	m.AssertNotCalled(t, "MarkAllRead")
}

func TestClearConfirmed(t *testing.T) {
	config.Set("confirm_clear", "true")
	m := new(mockClient)
	m.On("View", domain.Filter{}).Return(sampleView(), nil)
	m.On("ClearAll").Return(nil)
	var asked string
	confirm := func(title, description string) (bool, error) {
		asked = title
		return true, nil
	}

	_, console, err := execute(t, NewClearCmd(m, confirm))

	require.NoError(t, err)
	assert.Equal(t, "Clear all?", asked)
	assert.Contains(t, console, "all notifications cleared")
	m.AssertExpectations(t)
}

func TestClearCancelled(t *testing.T) {
	config.Set("confirm_clear", "true")
	m := new(mockClient)
	m.On("View", domain.Filter{}).Return(sampleView(), nil)
	confirm := func(string, string) (bool, error) { return false, nil }

	_, console, err := execute(t, NewClearCmd(m, confirm))

	require.NoError(t, err)
	assert.Contains(t, console, "operation cancelled")
	m.AssertNotCalled(t, "ClearAll")
}

func TestClearYesSkipsPrompt(t *testing.T) {
	config.Set("confirm_clear", "true")
	m := new(mockClient)
	m.On("View", domain.Filter{}).Return(sampleView(), nil)
	m.On("ClearAll").Return(nil)
	confirm := func(string, string) (bool, error) {
		t.Fatal("prompt should be skipped")
		return false, nil
	}

	_, _, err := execute(t, NewClearCmd(m, confirm), "--yes")

	require.NoError(t, err)
	m.AssertExpectations(t)
}

func TestClearConfigDisablesPrompt(t *testing.T) {
	config.Set("confirm_clear", "false")
	t.Cleanup(func() { config.Set("confirm_clear", "true") })
	m := new(mockClient)
	m.On("View", domain.Filter{}).Return(sampleView(), nil)
	m.On("ClearAll").Return(nil)
	confirm := func(string, string) (bool, error) {
		t.Fatal("prompt should be skipped")
		return false, nil
	}

	_, _, err := execute(t, NewClearCmd(m, confirm))

	require.NoError(t, err)
	m.AssertExpectations(t)
}

func TestClearNothingToClear(t *testing.T) {
	m := new(mockClient)
	m.On("View", domain.Filter{}).Return(presenter.View{AllDeleted: true}, nil)

	_, console, err := execute(t, NewClearCmd(m, func(string, string) (bool, error) { return true, nil }))

	require.NoError(t, err)
	assert.Contains(t, console, "nothing to clear")
	m.AssertNotCalled(t, "ClearAll")
}

func TestRestore(t *testing.T) {
	m := new(mockClient)
	m.On("Lookup", "1").Return(domain.Notification{ID: "1", Deleted: true}, true, nil)
	m.On("Restore", "1").Return(nil)

	_, console, err := execute(t, NewRestoreCmd(m), "1")

	require.NoError(t, err)
	assert.Contains(t, console, "notification 1 restored")
	m.AssertExpectations(t)
}

func TestRestoreNotCleared(t *testing.T) {
	m := new(mockClient)
	m.On("Lookup", "1").Return(domain.Notification{ID: "1"}, true, nil)

	_, console, err := execute(t, NewRestoreCmd(m), "1")

	require.NoError(t, err)
	assert.Contains(t, console, "is not cleared")
	m.AssertNotCalled(t, "Restore", mock.Anything)
}

type fakeTUIClient struct {
	created *state.Model
	runErr  error
	ran     bool
}

func (f *fakeTUIClient) CreateModel(p *presenter.Presenter, source state.Source, opts state.Options) *state.Model {
	f.created = state.NewModel(p, source, opts)
	return f.created
}

func (f *fakeTUIClient) RunProgram(model *state.Model) error {
	f.ran = true
	model.Close()
	return f.runErr
}

type nopRouter struct{}

func (nopRouter) NavigateTo(string) {}

func TestTUIRunsModel(t *testing.T) {
	s := store.New([]domain.Notification{{ID: "1"}})
	p := presenter.New(s, nopRouter{}, nil)
	m := new(mockClient)
	m.On("Session").Return(p, s, nil)
	tuiClient := &fakeTUIClient{}

	_, _, err := execute(t, NewTUICmd(m, tuiClient))

	require.NoError(t, err)
	assert.True(t, tuiClient.ran)
	require.NotNil(t, tuiClient.created)
}

func TestTUISessionError(t *testing.T) {
	m := new(mockClient)
	m.On("Session").Return(nil, nil, errors.New("locked"))
	tuiClient := &fakeTUIClient{}

	_, _, err := execute(t, NewTUICmd(m, tuiClient))

	assert.EqualError(t, err, "tui: locked")
	assert.False(t, tuiClient.ran)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, NewVersionCmd())

	require.NoError(t, err)
	assert.Contains(t, out, "inbox version")
}
