package redeem

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu       sync.RWMutex
	requests []Request
}

// NewMemoryRepository builds an in-memory redemption store for testing and dev mode.
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(_ context.Context, req Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
	return nil
}

func (r *memoryRepository) List(_ context.Context) ([]Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Request, len(r.requests))
	copy(out, r.requests)
	return out, nil
}

func (r *memoryRepository) MarkPaid(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.requests {
		if r.requests[i].ID == id {
			r.requests[i].Status = StatusPaid
			return nil
		}
	}
	return nil
}
