package ads

import (
	"context"
	"sync"
	"time"
)

type memoryStore struct {
	mu    sync.RWMutex
	views map[string]memoryEntry
}

type memoryEntry struct {
	view    View
	expires time.Time
}

// NewMemoryStore builds an in-memory ad view store for testing and dev mode.
func NewMemoryStore() Store {
	return &memoryStore{views: make(map[string]memoryEntry)}
}

func (s *memoryStore) Put(_ context.Context, v View, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[v.ID] = memoryEntry{view: v, expires: time.Now().Add(ttl)}
	return nil
}

func (s *memoryStore) Get(_ context.Context, id string) (View, error) {
	s.mu.RLock()
	entry, ok := s.views[id]
	s.mu.RUnlock()
	if !ok {
		return View{}, ErrViewNotFound
	}
	if time.Now().After(entry.expires) {
		s.mu.Lock()
		delete(s.views, id)
		s.mu.Unlock()
		return View{}, ErrViewNotFound
	}
	return entry.view, nil
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.views, id)
	return nil
}
