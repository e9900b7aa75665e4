package repository

import (
	"context"
	"sync"
	"time"

	"airease-backend/internal/domain/verification"
)

// MemoryVerificationStore serializes every Update under one lock, so concurrent
// verifies for the same email cannot both consume a code.
type MemoryVerificationStore struct {
	mu      sync.Mutex
	entries map[string]verification.Entry
}

func NewMemoryVerificationStore() *MemoryVerificationStore {
	return &MemoryVerificationStore{entries: make(map[string]verification.Entry)}
}

func (s *MemoryVerificationStore) Update(_ context.Context, key string, fn func(*verification.Entry) (*verification.Entry, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var current *verification.Entry
	if e, ok := s.entries[key]; ok {
		current = &e
	}

	next, err := fn(current)
	if next == nil {
		delete(s.entries, key)
	} else {
		s.entries[key] = *next
	}
	return err
}

// PurgeExpired drops entries that expired before the given instant and reports how many went.
func (s *MemoryVerificationStore) PurgeExpired(before time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for k, e := range s.entries {
		if e.ExpiresAt.Before(before) {
			delete(s.entries, k)
			n++
		}
	}
	return n
}

func (s *MemoryVerificationStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
