package storage

import (
	"fmt"
	"sync"

	"github.com/cristianoliveira/inbox/internal/domain"
)

// MemoryStorage keeps the collection for the life of the process only.
type MemoryStorage struct {
	mu      sync.Mutex
	records []domain.Notification
}

// NewMemoryStorage creates a MemoryStorage seeded with a copy of initial.
func NewMemoryStorage(initial []domain.Notification) *MemoryStorage {
	return &MemoryStorage{records: append([]domain.Notification(nil), initial...)}
}

// Load returns a copy of the held records.
func (m *MemoryStorage) Load() ([]domain.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Notification(nil), m.records...), nil
}

// SaveAll replaces the held records.
func (m *MemoryStorage) SaveAll(records []domain.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append([]domain.Notification(nil), records...)
	return nil
}

// SaveOne overwrites the first record with the same id.
func (m *MemoryStorage) SaveOne(record domain.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := domain.FindByID(m.records, record.ID)
	if i < 0 {
		return fmt.Errorf("memory storage: notification %s not found", record.ID)
	}
	m.records[i] = record
	return nil
}

// Close is a no-op.
func (m *MemoryStorage) Close() error {
	return nil
}
