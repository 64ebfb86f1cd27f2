package store

import (
	"context"
	"sync"
	"time"

	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/entity"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/usecase"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkgerror"
)

var _ usecase.Store = (*InMemoryStore)(nil)

// InMemoryStore keeps dataset sessions in process memory. Expired sessions are
// invisible to Get and are dropped by Sweep.
type InMemoryStore struct {
	mu   sync.RWMutex
	sets map[string]entity.Dataset
	now  func() time.Time
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		sets: make(map[string]entity.Dataset),
		now:  time.Now,
	}
}

// WithClock replaces the time source, for tests.
func (s *InMemoryStore) WithClock(now func() time.Time) *InMemoryStore {
	s.now = now
	return s
}

func (s *InMemoryStore) Save(ctx context.Context, ds entity.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sets[ds.ID]; exists {
		return pkgerror.NewBusiness("dataset already exists", pkgerror.CodeConflict)
	}

	s.sets[ds.ID] = ds

	return nil
}

func (s *InMemoryStore) Get(ctx context.Context, id string) (entity.Dataset, error) {
	s.mu.RLock()
	ds, ok := s.sets[id]
	s.mu.RUnlock()

	if !ok || ds.Expired(s.now().Unix()) {
		return entity.Dataset{}, pkgerror.ErrNotFound
	}

	return ds, nil
}

func (s *InMemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sets[id]; !ok {
		return pkgerror.ErrNotFound
	}
	delete(s.sets, id)

	return nil
}

// Sweep removes every session expired at now and returns how many went.
func (s *InMemoryStore) Sweep(ctx context.Context) int {
	now := s.now().Unix()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, ds := range s.sets {
		if ds.Expired(now) {
			delete(s.sets, id)
			removed++
		}
	}

	return removed
}

// Len counts stored sessions, expired ones included until swept.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sets)
}
