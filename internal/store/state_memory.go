package store

import (
	"context"
	"sync"
	"time"
)

// memoryStateStore keeps OAuth states in process memory. Expired entries
// are rejected on consume and removed by PurgeExpired.
type memoryStateStore struct {
	mu     sync.Mutex
	states map[string]time.Time
	now    func() time.Time
}

// NewMemoryStateStore returns a [StateStore] for single-instance deployments.
func NewMemoryStateStore() StateStore {
	return newMemoryStateStore(time.Now)
}

func newMemoryStateStore(now func() time.Time) *memoryStateStore {
	return &memoryStateStore{
		states: make(map[string]time.Time),
		now:    now,
	}
}

func (s *memoryStateStore) SaveState(ctx context.Context, state string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if expiresAt, ok := s.states[state]; ok && now.Before(expiresAt) {
		return ErrStateAlreadyExists
	}

	s.states[state] = now.Add(ttl)
	return nil
}

func (s *memoryStateStore) ConsumeState(ctx context.Context, state string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.states[state]
	if !ok {
		return ErrStateNotFound
	}
	delete(s.states, state)

	if !s.now().Before(expiresAt) {
		return ErrStateNotFound
	}
	return nil
}

func (s *memoryStateStore) PurgeExpired(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	purged := 0
	for state, expiresAt := range s.states {
		if !now.Before(expiresAt) {
			delete(s.states, state)
			purged++
		}
	}

	return purged, nil
}
