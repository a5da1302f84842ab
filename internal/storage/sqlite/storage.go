// Package sqlite persists the notification collection in a local SQLite
// database. Rows keep the collection order in a position column; ids are not
// unique at this layer.
package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cristianoliveira/inbox/internal/domain"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const busyTimeoutMillis = 5000

// notificationRow is the stored shape of a notification.
type notificationRow struct {
	Position int    `db:"position"`
	ID       string `db:"id"`
	Message  string `db:"message"`
	Cluster  string `db:"cluster"`
	Date     string `db:"date"`
	URL      string `db:"url"`
	Seen     bool   `db:"seen"`
	Deleted  bool   `db:"deleted"`
}

func toRow(position int, n domain.Notification) notificationRow {
	return notificationRow{
		Position: position,
		ID:       n.ID,
		Message:  n.Message,
		Cluster:  n.Cluster,
		Date:     formatDate(n.Date),
		URL:      n.URL,
		Seen:     n.Seen,
		Deleted:  n.Deleted,
	}
}

func (r notificationRow) toDomain() (domain.Notification, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return domain.Notification{}, fmt.Errorf("row %d: %w", r.Position, err)
	}
	return domain.Notification{
		ID:      r.ID,
		Message: r.Message,
		Cluster: r.Cluster,
		Date:    date,
		URL:     r.URL,
		Seen:    r.Seen,
		Deleted: r.Deleted,
	}, nil
}

// formatDate stores the zero time as an empty string.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// SQLiteStorage stores notifications in SQLite.
type SQLiteStorage struct {
	db *sqlx.DB
}

// NewSQLiteStorage opens (or creates) the database at dbPath, enables WAL
// mode, and runs any pending schema migrations.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, ErrEmptyPath
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite storage: create db directory: %w", err)
	}

	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: open db: %w", err)
	}
	// a single connection keeps pragmas and transactions on one handle
	db.SetMaxOpenConns(1)

	s := &SQLiteStorage{db: db}
	if err := s.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying SQLite connection.
func (s *SQLiteStorage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStorage) init() error {
	if _, err := s.db.Exec(fmt.Sprintf("PRAGMA busy_timeout = %d", busyTimeoutMillis)); err != nil {
		return fmt.Errorf("sqlite storage: set busy timeout: %w", err)
	}
	if _, err := s.db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("sqlite storage: enable WAL mode: %w", err)
	}
	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("sqlite storage: running migrations: %w", err)
	}
	return nil
}

// SchemaVersion returns the highest applied migration.
func (s *SQLiteStorage) SchemaVersion() (int, error) {
	var version int
	if err := s.db.Get(&version, "SELECT COALESCE(MAX(version), 0) FROM schema_version"); err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return version, nil
}

func (s *SQLiteStorage) runMigrations() error {
	currentVersion := 0

	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}
	if tableCount > 0 {
		if currentVersion, err = s.SchemaVersion(); err != nil {
			return err
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}
	return nil
}

// Load returns the stored collection in order.
func (s *SQLiteStorage) Load() ([]domain.Notification, error) {
	var rows []notificationRow
	err := s.db.Select(&rows, `
		SELECT position, id, message, cluster, date, url, seen, deleted
		FROM notifications ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: load notifications: %w", err)
	}

	out := make([]domain.Notification, 0, len(rows))
	for _, r := range rows {
		n, err := r.toDomain()
		if err != nil {
			return nil, fmt.Errorf("sqlite storage: load notifications: %w", err)
		}
		out = append(out, n)
	}
	return out, nil
}

// SaveAll rewrites the stored collection in one transaction.
func (s *SQLiteStorage) SaveAll(records []domain.Notification) error {
	ctx := context.Background()
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite storage: begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM notifications"); err != nil {
		return fmt.Errorf("sqlite storage: clear notifications: %w", err)
	}

	stmt, err := tx.PrepareNamedContext(ctx, `
		INSERT INTO notifications (position, id, message, cluster, date, url, seen, deleted)
		VALUES (:position, :id, :message, :cluster, :date, :url, :seen, :deleted)`)
	if err != nil {
		return fmt.Errorf("sqlite storage: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, n := range records {
		if _, err := stmt.ExecContext(ctx, toRow(i, n)); err != nil {
			return fmt.Errorf("sqlite storage: insert notification %s: %w", n.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite storage: commit: %w", err)
	}
	return nil
}

// SaveOne overwrites the first stored row with the record's id.
func (s *SQLiteStorage) SaveOne(record domain.Notification) error {
	row := toRow(0, record)
	res, err := s.db.NamedExec(`
		UPDATE notifications
		SET message = :message, cluster = :cluster, date = :date, url = :url,
			seen = :seen, deleted = :deleted
		WHERE position = (SELECT MIN(position) FROM notifications WHERE id = :id)`, row)
	if err != nil {
		return fmt.Errorf("sqlite storage: update notification %s: %w", record.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite storage: update notification %s: %w", record.ID, err)
	}
	if affected == 0 {
		return fmt.Errorf("sqlite storage: update notification: %w: id %s", ErrNotificationNotFound, record.ID)
	}
	return nil
}
