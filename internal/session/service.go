package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service issues and resolves bearer sessions.
type Service struct {
	store Store
	ttl   time.Duration
}

// NewService builds a session service with the configured lifetime.
func NewService(store Store, ttl time.Duration) *Service {
	return &Service{store: store, ttl: ttl}
}

// Create opens a session for the user and returns it with a fresh token.
func (s *Service) Create(ctx context.Context, userID string) (Session, error) {
	return s.create(ctx, Session{Token: uuid.NewString(), UserID: userID, CreatedAt: time.Now().UTC()})
}

// CreateAdmin opens an admin session not tied to any user.
func (s *Service) CreateAdmin(ctx context.Context) (Session, error) {
	return s.create(ctx, Session{Token: uuid.NewString(), Admin: true, CreatedAt: time.Now().UTC()})
}

func (s *Service) create(ctx context.Context, sess Session) (Session, error) {
	if err := s.store.Put(ctx, sess, s.ttl); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// Get resolves a bearer token.
func (s *Service) Get(ctx context.Context, token string) (Session, error) {
	return s.store.Get(ctx, token)
}

// Clear ends the session for the token.
func (s *Service) Clear(ctx context.Context, token string) error {
	return s.store.Delete(ctx, token)
}
