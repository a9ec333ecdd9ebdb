// Package storage provides plan persistence for the current session.
package storage

import (
	"context"
	"sync"

	"github.com/hammamikhairi/nutribudget/internal/domain"
	"github.com/hammamikhairi/nutribudget/internal/logger"
)

// Compile-time interface check.
var _ domain.PlanStore = (*MemoryStore)(nil)

// DefaultCapacity bounds how many plans a session keeps.
const DefaultCapacity = 20

// MemoryStore is an in-memory plan history. Safe for concurrent access.
// Records are kept in arrival order; once full, the oldest is dropped.
type MemoryStore struct {
	mu       sync.RWMutex
	records  []*domain.PlanRecord
	capacity int
	log      *logger.Logger
}

// NewMemoryStore creates an empty in-memory plan store. A capacity below
// one uses DefaultCapacity.
func NewMemoryStore(log *logger.Logger, capacity int) *MemoryStore {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &MemoryStore{
		capacity: capacity,
		log:      log,
	}
}

// Save appends a record.
func (s *MemoryStore) Save(ctx context.Context, record *domain.PlanRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Debug("saving plan %s (%s)", record.RequestID, record.Request)
	s.records = append(s.records, record)
	if over := len(s.records) - s.capacity; over > 0 {
		s.records = append([]*domain.PlanRecord(nil), s.records[over:]...)
	}
	return nil
}

// Latest returns the most recent record.
func (s *MemoryStore) Latest(ctx context.Context) (*domain.PlanRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.records) == 0 {
		return nil, domain.ErrNotFound
	}
	return s.records[len(s.records)-1], nil
}

// List returns all records, newest first.
func (s *MemoryStore) List(ctx context.Context) ([]*domain.PlanRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.PlanRecord, 0, len(s.records))
	for i := len(s.records) - 1; i >= 0; i-- {
		out = append(out, s.records[i])
	}
	s.log.Debug("listing plans, count=%d", len(out))
	return out, nil
}

// Clear drops every record.
func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Debug("clearing %d plans", len(s.records))
	s.records = nil
	return nil
}
