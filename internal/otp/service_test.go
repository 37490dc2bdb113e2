package otp

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/rewixcash/portal/internal/logging"
)

type recordingMailer struct {
	sent []Email
	err  error
}

func (m *recordingMailer) Send(_ context.Context, email Email) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, email)
	return nil
}

var codePattern = regexp.MustCompile(`<strong>(\d{6})</strong>`)

func (m *recordingMailer) lastCode(t *testing.T) string {
	t.Helper()
	if len(m.sent) == 0 {
		t.Fatalf("no email sent")
	}
	match := codePattern.FindStringSubmatch(m.sent[len(m.sent)-1].HTML)
	if match == nil {
		t.Fatalf("no code in email body: %s", m.sent[len(m.sent)-1].HTML)
	}
	return match[1]
}

func newTestService(mailer Mailer) *Service {
	return NewService(NewMemoryRepository(), mailer, "RewixCash <noreply@rewixcash.com>", 10*time.Minute, logging.Discard())
}

func TestSendAndVerifyRoundTrip(t *testing.T) {
	mailer := &recordingMailer{}
	svc := newTestService(mailer)
	ctx := context.Background()

	if err := svc.Send(ctx, "ana@x.com", "Ana"); err != nil {
		t.Fatalf("send: %v", err)
	}
	code := mailer.lastCode(t)

	if err := svc.Verify(ctx, "ana@x.com", code); err != nil {
		t.Fatalf("verify: %v", err)
	}

	// Codes are single-use: the same code must not verify twice.
	if err := svc.Verify(ctx, "ana@x.com", code); !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode on replay, got %v", err)
	}
}

func TestVerifyWrongCode(t *testing.T) {
	mailer := &recordingMailer{}
	svc := newTestService(mailer)
	ctx := context.Background()

	if err := svc.Send(ctx, "ana@x.com", "Ana"); err != nil {
		t.Fatalf("send: %v", err)
	}

	if err := svc.Verify(ctx, "ana@x.com", "000000"); !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode, got %v", err)
	}

	// A wrong attempt must not consume the real code.
	if err := svc.Verify(ctx, "ana@x.com", mailer.lastCode(t)); err != nil {
		t.Fatalf("verify after wrong attempt: %v", err)
	}
}

func TestVerifyNeverIssued(t *testing.T) {
	svc := newTestService(&recordingMailer{})

	if err := svc.Verify(context.Background(), "nobody@x.com", "123456"); !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode, got %v", err)
	}
}

func TestVerifyExpired(t *testing.T) {
	mailer := &recordingMailer{}
	svc := newTestService(mailer)
	ctx := context.Background()

	if err := svc.Send(ctx, "ana@x.com", "Ana"); err != nil {
		t.Fatalf("send: %v", err)
	}
	code := mailer.lastCode(t)

	issued := time.Now()
	svc.now = func() time.Time { return issued.Add(11 * time.Minute) }

	if err := svc.Verify(ctx, "ana@x.com", code); !errors.Is(err, ErrExpiredCode) {
		t.Fatalf("expected ErrExpiredCode, got %v", err)
	}

	// The stale record stays in place; a later attempt still reports expiry
	// rather than invalid, until a fresh send supersedes it.
	if err := svc.Verify(ctx, "ana@x.com", code); !errors.Is(err, ErrExpiredCode) {
		t.Fatalf("expected ErrExpiredCode again, got %v", err)
	}
}

func TestSecondSendSupersedesFirst(t *testing.T) {
	mailer := &recordingMailer{}
	svc := newTestService(mailer)
	ctx := context.Background()

	if err := svc.Send(ctx, "ana@x.com", "Ana"); err != nil {
		t.Fatalf("first send: %v", err)
	}
	first := mailer.lastCode(t)

	if err := svc.Send(ctx, "ana@x.com", "Ana"); err != nil {
		t.Fatalf("second send: %v", err)
	}
	second := mailer.lastCode(t)

	if first != second {
		if err := svc.Verify(ctx, "ana@x.com", first); !errors.Is(err, ErrInvalidCode) {
			t.Fatalf("expected superseded code to be invalid, got %v", err)
		}
	}

	if err := svc.Verify(ctx, "ana@x.com", second); err != nil {
		t.Fatalf("verify second code: %v", err)
	}
}

func TestSendDeliveryFailure(t *testing.T) {
	mailer := &recordingMailer{err: errors.New("smtp down")}
	svc := newTestService(mailer)

	err := svc.Send(context.Background(), "ana@x.com", "Ana")
	if !errors.Is(err, ErrDelivery) {
		t.Fatalf("expected ErrDelivery, got %v", err)
	}
}

func TestGenerateCodeRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code, err := generateCode()
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if len(code) != 6 || code[0] == '0' {
			t.Fatalf("expected 6 digits without leading zero, got %q", code)
		}
	}
}
