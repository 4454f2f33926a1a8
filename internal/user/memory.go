package user

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process Store for tests and development.
type MemoryStore struct {
	mu     sync.Mutex
	byName map[string]*User
	nextID uint
}

// NewMemoryStore creates an empty in-memory user store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byName: make(map[string]*User), nextID: 1}
}

// FindByUsername returns a copy of the stored user, or (nil, nil).
func (s *MemoryStore) FindByUsername(_ context.Context, username string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byName[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// FindByID returns a copy of the stored user, or (nil, nil).
func (s *MemoryStore) FindByID(_ context.Context, id uint) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.byName {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// Create persists a new user record with the next free id.
func (s *MemoryStore) Create(_ context.Context, username, passwordHash, role string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &User{
		ID:           s.nextID,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	s.nextID++
	s.byName[username] = u
	cp := *u
	return &cp, nil
}

var _ Store = (*MemoryStore)(nil)
