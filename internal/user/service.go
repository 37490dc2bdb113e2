package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrEmailTaken indicates a registration attempt with an already registered email.
var ErrEmailTaken = errors.New("email already registered")

// Service manages the user lifecycle and point balances.
type Service struct {
	repo Repository
}

// NewService creates a new user service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Registration captures the data required to create a user.
type Registration struct {
	FullName    string
	Email       string
	PhoneNumber string
}

// Register creates a new user with a zero point balance. Emails are unique
// across all users.
func (s *Service) Register(ctx context.Context, reg Registration) (User, error) {
	if _, err := s.repo.FindByEmail(ctx, reg.Email); err == nil {
		return User{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	u := User{
		ID:           uuid.New().String(),
		FullName:     reg.FullName,
		Email:        reg.Email,
		PhoneNumber:  reg.PhoneNumber,
		Points:       0,
		RegisteredAt: time.Now().UTC(),
	}

	if err := s.repo.Save(ctx, u); err != nil {
		return User{}, err
	}

	return u, nil
}

// Get fetches a user by id.
func (s *Service) Get(ctx context.Context, id string) (User, error) {
	return s.repo.FindByID(ctx, id)
}

// GetByEmail fetches a user by exact email match.
func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	return s.repo.FindByEmail(ctx, email)
}

// List returns all users in registration order.
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// CreditPoints adds points to the user's balance and persists the result.
func (s *Service) CreditPoints(ctx context.Context, id string, points int64) (User, error) {
	if points <= 0 {
		return User{}, fmt.Errorf("points must be positive")
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	u.Points += points
	if err := s.repo.Save(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}
