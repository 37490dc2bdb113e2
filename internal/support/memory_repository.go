package support

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu       sync.RWMutex
	messages []Message
}

// NewMemoryRepository builds an in-memory support store for testing and dev mode.
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(_ context.Context, msg Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
	return nil
}

func (r *memoryRepository) List(_ context.Context) ([]Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out, nil
}

func (r *memoryRepository) MarkResolved(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.messages {
		if r.messages[i].ID == id {
			r.messages[i].Status = StatusResolved
			return nil
		}
	}
	return nil
}
