package support

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rewixcash/portal/internal/user"
)

// Service handles support ticket submission and admin resolution.
type Service struct {
	repo  Repository
	users *user.Service
}

// NewService builds a support service.
func NewService(repo Repository, users *user.Service) *Service {
	return &Service{repo: repo, users: users}
}

// SubmitInput captures a support ticket submission.
type SubmitInput struct {
	UserID  string
	Subject string
	Body    string
}

// Submit records an open support message snapshotting the sender's name and email.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (Message, error) {
	u, err := s.users.Get(ctx, input.UserID)
	if err != nil {
		return Message{}, err
	}

	msg := Message{
		ID:        uuid.New().String(),
		UserID:    u.ID,
		UserName:  u.FullName,
		UserEmail: u.Email,
		Subject:   input.Subject,
		Body:      input.Body,
		Status:    StatusOpen,
		SentAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return Message{}, err
	}

	return msg, nil
}

// List returns all support messages in submission order.
func (s *Service) List(ctx context.Context) ([]Message, error) {
	return s.repo.List(ctx)
}

// MarkResolved closes the message. Idempotent; unknown ids are a no-op.
func (s *Service) MarkResolved(ctx context.Context, id string) error {
	return s.repo.MarkResolved(ctx, id)
}
