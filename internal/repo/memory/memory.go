package memory

import (
	"context"
	"sync"

	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/domain"
	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/repo"
)

var _ repo.RecordStore = (*Store)(nil)

// Store keeps records in memory. Used by tests and by the API when no
// database is configured.
type Store struct {
	mu      sync.RWMutex
	records []domain.Record
}

func New() *Store {
	return &Store{records: make([]domain.Record, 0, 64)}
}

func (m *Store) Append(ctx context.Context, r *domain.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, *r)
	return nil
}

func (m *Store) List(ctx context.Context) ([]domain.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Record, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *Store) Purge(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := int64(len(m.records))
	m.records = m.records[:0]
	return n, nil
}
