package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/cristianoliveira/inbox/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (*SQLiteStorage, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "notifications.db")
	s, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func sample() []domain.Notification {
	return []domain.Notification{
		{ID: "b", Message: "second by id, first by order", Cluster: "prod", Date: time.Date(2025, 1, 2, 3, 4, 5, 600, time.UTC), URL: "/c/prod"},
		{ID: "a", Seen: true},
		{ID: "c", Deleted: true, Seen: true},
	}
}

func TestNewSQLiteStorageRejectsEmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("  ")

	assert.ErrorIs(t, err, ErrEmptyPath)
}

func TestLoadEmpty(t *testing.T) {
	s, _ := newTestStorage(t)

	got, err := s.Load()

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSaveAllRoundTripKeepsOrder(t *testing.T) {
	s, _ := newTestStorage(t)

	require.NoError(t, s.SaveAll(sample()))
	got, err := s.Load()

	require.NoError(t, err)
	assert.Equal(t, sample(), got)
}

func TestSaveAllReplacesPreviousRows(t *testing.T) {
	s, _ := newTestStorage(t)
	require.NoError(t, s.SaveAll(sample()))

	require.NoError(t, s.SaveAll([]domain.Notification{{ID: "z"}}))
	got, err := s.Load()

	require.NoError(t, err)
	assert.Equal(t, []domain.Notification{{ID: "z"}}, got)
}

func TestSaveAllKeepsDuplicateIDs(t *testing.T) {
	s, _ := newTestStorage(t)
	dupes := []domain.Notification{{ID: "x", Message: "one"}, {ID: "x", Message: "two"}}

	require.NoError(t, s.SaveAll(dupes))
	got, err := s.Load()

	require.NoError(t, err)
	assert.Equal(t, dupes, got)
}

func TestSaveOneUpdatesFirstMatch(t *testing.T) {
	s, _ := newTestStorage(t)
	require.NoError(t, s.SaveAll([]domain.Notification{
		{ID: "x", Message: "one"},
		{ID: "y"},
		{ID: "x", Message: "two"},
	}))

	require.NoError(t, s.SaveOne(domain.Notification{ID: "x", Message: "one", Seen: true}))
	got, err := s.Load()

	require.NoError(t, err)
	assert.Equal(t, []domain.Notification{
		{ID: "x", Message: "one", Seen: true},
		{ID: "y"},
		{ID: "x", Message: "two"},
	}, got)
}

func TestSaveOneMissingID(t *testing.T) {
	s, _ := newTestStorage(t)

	err := s.SaveOne(domain.Notification{ID: "nope"})

	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestReopenKeepsDataAndSchema(t *testing.T) {
	s, path := newTestStorage(t)
	require.NoError(t, s.SaveAll(sample()))
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	defer reopened.Close()

	version, err := reopened.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, len(migrations), version)
	got, err := reopened.Load()
	require.NoError(t, err)
	assert.Equal(t, sample(), got)
}

func TestDateEncoding(t *testing.T) {
	assert.Equal(t, "", formatDate(time.Time{}))
	d := time.Date(2024, 5, 6, 7, 8, 9, 10, time.UTC)
	parsed, err := parseDate(formatDate(d))
	require.NoError(t, err)
	assert.True(t, d.Equal(parsed))

	_, err = parseDate("yesterday")
	assert.Error(t, err)
}

func TestCloseNil(t *testing.T) {
	var s *SQLiteStorage

	assert.NoError(t, s.Close())
}
