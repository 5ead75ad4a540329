// Package memory is the in-process user store of the development user service.
package memory

import (
	"context"
	"fmt"
	"sync"

	"myuserapp/domain"
)

// UserStore implements interfaces.UserStore in memory, keeping users in creation order. Safe for concurrent use.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]domain.User
	order []string
}

// NewUserStore creates an empty store.
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]domain.User)}
}

// Save stores u. Saving an existing id replaces the value and keeps its position.
func (s *UserStore) Save(_ context.Context, u domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; !ok {
		s.order = append(s.order, u.ID)
	}
	s.users[u.ID] = u
	return nil
}

// Get returns the user stored under id, or domain.ErrUserNotFound.
func (s *UserStore) Get(_ context.Context, id string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return domain.User{}, fmt.Errorf("user %s: %w", id, domain.ErrUserNotFound)
	}
	return u, nil
}

// First returns the earliest saved user. ok is false when the store is empty.
func (s *UserStore) First(_ context.Context) (domain.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.order) == 0 {
		return domain.User{}, false, nil
	}
	return s.users[s.order[0]], true, nil
}
