package user

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu    sync.RWMutex
	index map[string]int
	users []User
}

// NewMemoryRepository builds an in-memory user store for testing and dev mode.
// It keeps registration order for List, matching the Postgres backend.
func NewMemoryRepository() Repository {
	return &memoryRepository{index: make(map[string]int)}
}

func (r *memoryRepository) Save(_ context.Context, user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, exists := r.index[user.ID]; exists {
		r.users[i] = user
		return nil
	}
	r.index[user.ID] = len(r.users)
	r.users = append(r.users, user)
	return nil
}

func (r *memoryRepository) List(_ context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i, ok := r.index[id]; ok {
		return r.users[i], nil
	}
	return User{}, ErrNotFound
}

func (r *memoryRepository) FindByEmail(_ context.Context, email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}
