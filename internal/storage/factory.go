package storage

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/inbox/internal/colors"
	"github.com/cristianoliveira/inbox/internal/config"
	"github.com/cristianoliveira/inbox/internal/storage/sqlite"
)

const (
	// BackendSQLite selects SQLite-backed storage.
	BackendSQLite = "sqlite"
	// BackendMemory selects process-local storage.
	BackendMemory = "memory"
)

var (
	_ Repository = (*sqlite.SQLiteStorage)(nil)
	_ Repository = (*MemoryStorage)(nil)
)

var openSQLite = func(path string) (Repository, error) {
	return sqlite.NewSQLiteStorage(path)
}

// NewFromConfig creates the backend named by storage_backend, storing
// SQLite data at db_path.
func NewFromConfig() (Repository, error) {
	backend := config.Get("storage_backend", BackendSQLite)
	return NewForBackend(backend, config.Get("db_path", ""))
}

// NewForBackend creates a storage backend for the provided backend name.
// SQLite failures and unknown names fall back to memory storage with a
// warning so the inbox stays usable.
func NewForBackend(backend, dbPath string) (Repository, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendMemory:
		return NewMemoryStorage(nil), nil
	case "", BackendSQLite:
		repo, err := openSQLite(dbPath)
		if err != nil {
			colors.Warning(fmt.Sprintf("failed to initialize sqlite backend, falling back to memory: %v", err))
			return NewMemoryStorage(nil), nil
		}
		colors.Debug(fmt.Sprintf("using sqlite storage at %s", dbPath))
		return repo, nil
	default:
		colors.Warning(fmt.Sprintf("unknown storage backend '%s', falling back to memory", backend))
		return NewMemoryStorage(nil), nil
	}
}
