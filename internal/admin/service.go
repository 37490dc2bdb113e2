package admin

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/rewixcash/portal/internal/session"
)

// ErrAccessDenied indicates a wrong admin access code.
var ErrAccessDenied = errors.New("invalid admin access code")

// Service gates the admin panel behind the shared access code. The code is
// hashed at startup so the plaintext never sits in memory past construction,
// and a successful login yields a server-side admin session rather than a
// client-held flag.
type Service struct {
	codeHash []byte
	sessions *session.Service
}

// NewService hashes the configured access code and prepares the gate.
func NewService(accessCode string, sessions *session.Service) (*Service, error) {
	if accessCode == "" {
		return nil, fmt.Errorf("admin access code is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(accessCode), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Service{codeHash: hash, sessions: sessions}, nil
}

// Login verifies the access code and opens an admin session.
func (s *Service) Login(ctx context.Context, accessCode string) (session.Session, error) {
	if err := bcrypt.CompareHashAndPassword(s.codeHash, []byte(accessCode)); err != nil {
		return session.Session{}, ErrAccessDenied
	}
	return s.sessions.CreateAdmin(ctx)
}

// Logout ends the admin session.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Clear(ctx, token)
}
