package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"
)

var (
	// ErrInvalidCode indicates no live record matches the email and code. A
	// wrong code and a never-issued code are deliberately indistinguishable.
	ErrInvalidCode = errors.New("invalid otp code")

	// ErrExpiredCode indicates the matching record is older than the expiry
	// window. The stale record stays in place; the caller must request a
	// fresh code.
	ErrExpiredCode = errors.New("otp code expired")

	// ErrPersistence indicates the remote OTP store rejected a read or write.
	ErrPersistence = errors.New("otp persistence failed")

	// ErrDelivery indicates the email API did not accept the message.
	ErrDelivery = errors.New("otp delivery failed")
)

const emailSubject = "Your OTP Code for RewixCash"

// Service issues and verifies one-time codes. Per address the lifecycle is
// none -> issued -> (verified | expired | superseded), with at most one
// issued code at a time.
type Service struct {
	repo   Repository
	mailer Mailer
	from   string
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time
}

// NewService builds an OTP service. ttl bounds how long an issued code stays
// verifiable.
func NewService(repo Repository, mailer Mailer, from string, ttl time.Duration, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		mailer: mailer,
		from:   from,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

// Send issues a fresh 6-digit code to the address, superseding any previous
// one, and delivers it by email. There is no retry: both persistence and
// delivery failures surface directly to the caller.
func (s *Service) Send(ctx context.Context, email, name string) error {
	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}

	// Two separate remote operations. A crash in between leaves the address
	// with no live code, which only forces a re-send.
	if err := s.repo.DeleteByEmail(ctx, email); err != nil {
		return fmt.Errorf("%w: delete previous code: %v", ErrPersistence, err)
	}
	if err := s.repo.Insert(ctx, Record{Email: email, Code: code, CreatedAt: s.now().UTC()}); err != nil {
		return fmt.Errorf("%w: insert code: %v", ErrPersistence, err)
	}

	msg := Email{
		From:    s.from,
		To:      email,
		Subject: emailSubject,
		HTML: fmt.Sprintf("<p>Hi %s,</p><p>Your OTP code is <strong>%s</strong></p>"+
			"<p>Please use this OTP to complete your registration.</p><p>Thanks, <br>RewixCash Team</p>", name, code),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	s.logger.Info("otp issued", "email", email)
	return nil
}

// Verify checks a submitted code. A code within the expiry window is consumed
// on success and cannot be used again.
func (s *Service) Verify(ctx context.Context, email, code string) error {
	rec, err := s.repo.Find(ctx, email, code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrInvalidCode
		}
		return fmt.Errorf("%w: lookup code: %v", ErrPersistence, err)
	}

	if s.now().Sub(rec.CreatedAt) > s.ttl {
		return ErrExpiredCode
	}

	if err := s.repo.DeleteByEmail(ctx, email); err != nil {
		return fmt.Errorf("%w: consume code: %v", ErrPersistence, err)
	}

	s.logger.Info("otp verified", "email", email)
	return nil
}

// generateCode draws a uniform 6-digit code from 100000-999999, matching the
// verification emails the portal has always sent.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}
