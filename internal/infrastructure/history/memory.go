package history

import (
	"context"
	"sync"

	"github.com/pricelens/backend/internal/domain"
)

// MemoryStore keeps the most recent searches in a bounded in-memory buffer
type MemoryStore struct {
	mu       sync.RWMutex
	records  []domain.SearchRecord
	capacity int
}

// NewMemoryStore creates a store holding at most capacity records (50 when zero)
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = 50
	}
	return &MemoryStore{
		records:  make([]domain.SearchRecord, 0, capacity),
		capacity: capacity,
	}
}

// Save appends a record, evicting the oldest one when full
func (s *MemoryStore) Save(ctx context.Context, record *domain.SearchRecord) error {
	if record == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.records) == s.capacity {
		copy(s.records, s.records[1:])
		s.records = s.records[:len(s.records)-1]
	}
	s.records = append(s.records, *record)
	return nil
}

// Recent returns up to limit records, newest first
func (s *MemoryStore) Recent(ctx context.Context, limit int) ([]domain.SearchRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.records) {
		limit = len(s.records)
	}

	out := make([]domain.SearchRecord, 0, limit)
	for i := len(s.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.records[i])
	}
	return out, nil
}
