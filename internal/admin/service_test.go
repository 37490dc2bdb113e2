package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rewixcash/portal/internal/session"
)

func TestLogin(t *testing.T) {
	sessions := session.NewService(session.NewMemoryStore(), time.Hour)
	svc, err := NewService("s3cret", sessions)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	ctx := context.Background()

	if _, err := svc.Login(ctx, "wrong"); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}

	sess, err := svc.Login(ctx, "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !sess.Admin {
		t.Fatal("expected an admin session")
	}

	resolved, err := sessions.Get(ctx, sess.Token)
	if err != nil {
		t.Fatalf("resolve token: %v", err)
	}
	if !resolved.Admin {
		t.Fatal("resolved session lost the admin flag")
	}
}

func TestLogoutEndsSession(t *testing.T) {
	sessions := session.NewService(session.NewMemoryStore(), time.Hour)
	svc, err := NewService("s3cret", sessions)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	ctx := context.Background()

	sess, err := svc.Login(ctx, "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := svc.Logout(ctx, sess.Token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := sessions.Get(ctx, sess.Token); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after logout, got %v", err)
	}
}

func TestEmptyAccessCodeRejected(t *testing.T) {
	sessions := session.NewService(session.NewMemoryStore(), time.Hour)
	if _, err := NewService("", sessions); err == nil {
		t.Fatal("expected an error for an empty access code")
	}
}
