package revocation

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a mutex-guarded in-process Store. Expired entries are
// reported dead immediately and pruned lazily when touched.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]Entry
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory revocation store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]Entry),
		now:     time.Now,
	}
}

// Register inserts or overwrites the entry for tokenID.
func (s *MemoryStore) Register(_ context.Context, tokenID string, userID uint, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[tokenID] = Entry{TokenID: tokenID, UserID: userID, ExpiresAt: expiresAt}
	return nil
}

// IsLive reports whether the entry exists and has not expired. An expired
// entry is treated as absent even before it is pruned.
func (s *MemoryStore) IsLive(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[tokenID]
	if !ok {
		return false, nil
	}
	if !s.now().Before(e.ExpiresAt) {
		delete(s.entries, tokenID)
		return false, nil
	}
	return true, nil
}

// Revoke removes the entry. Unknown ids are a no-op.
func (s *MemoryStore) Revoke(_ context.Context, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, tokenID)
	return nil
}

// Prune removes all expired entries and returns how many were dropped.
// Optional housekeeping; liveness checks do not depend on it.
func (s *MemoryStore) Prune() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	dropped := 0
	for id, e := range s.entries {
		if !now.Before(e.ExpiresAt) {
			delete(s.entries, id)
			dropped++
		}
	}
	return dropped
}

// Len returns the number of entries currently held, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

var _ Store = (*MemoryStore)(nil)
