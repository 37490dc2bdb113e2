package redeem

import (
	"context"
	"errors"
	"testing"

	"github.com/rewixcash/portal/internal/user"
)

func registerWithPoints(t *testing.T, users *user.Service, points int64) user.User {
	t.Helper()
	ctx := context.Background()
	u, err := users.Register(ctx, user.Registration{FullName: "Ana", Email: "ana@x.com", PhoneNumber: "9876543210"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if points > 0 {
		if u, err = users.CreditPoints(ctx, u.ID, points); err != nil {
			t.Fatalf("credit: %v", err)
		}
	}
	return u
}

func TestSubmitBelowMinimum(t *testing.T) {
	users := user.NewService(user.NewMemoryRepository())
	svc := NewService(NewMemoryRepository(), users, 100)
	u := registerWithPoints(t, users, 99)

	_, err := svc.Submit(context.Background(), SubmitInput{UserID: u.ID, UPIID: "ana@upi"})
	if !errors.Is(err, ErrInsufficientPoints) {
		t.Fatalf("expected ErrInsufficientPoints, got %v", err)
	}
}

func TestSubmitSnapshotsBalance(t *testing.T) {
	users := user.NewService(user.NewMemoryRepository())
	svc := NewService(NewMemoryRepository(), users, 100)
	u := registerWithPoints(t, users, 150)
	ctx := context.Background()

	req, err := svc.Submit(ctx, SubmitInput{UserID: u.ID, UPIID: "ana@upi", Note: "first payout"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if req.Status != StatusPending {
		t.Fatalf("expected pending, got %s", req.Status)
	}
	if req.Points != 150 {
		t.Fatalf("expected snapshot of full balance 150, got %d", req.Points)
	}
	if req.UserName != "Ana" || req.UserEmail != "ana@x.com" {
		t.Fatalf("expected user snapshot, got %s / %s", req.UserName, req.UserEmail)
	}
}

func TestSubmitPayoutTargetExclusive(t *testing.T) {
	users := user.NewService(user.NewMemoryRepository())
	svc := NewService(NewMemoryRepository(), users, 100)
	u := registerWithPoints(t, users, 150)
	ctx := context.Background()

	if _, err := svc.Submit(ctx, SubmitInput{UserID: u.ID}); !errors.Is(err, ErrPayoutTarget) {
		t.Fatalf("expected ErrPayoutTarget for neither, got %v", err)
	}
	if _, err := svc.Submit(ctx, SubmitInput{UserID: u.ID, UPIID: "ana@upi", GiftCard: "amazon"}); !errors.Is(err, ErrPayoutTarget) {
		t.Fatalf("expected ErrPayoutTarget for both, got %v", err)
	}
	if _, err := svc.Submit(ctx, SubmitInput{UserID: u.ID, GiftCard: "blockbuster"}); !errors.Is(err, ErrUnknownGiftCard) {
		t.Fatalf("expected ErrUnknownGiftCard, got %v", err)
	}
	if _, err := svc.Submit(ctx, SubmitInput{UserID: u.ID, GiftCard: "netflix"}); err != nil {
		t.Fatalf("expected gift card submit to succeed, got %v", err)
	}
}

func TestMarkPaidIdempotent(t *testing.T) {
	users := user.NewService(user.NewMemoryRepository())
	svc := NewService(NewMemoryRepository(), users, 100)
	u := registerWithPoints(t, users, 150)
	ctx := context.Background()

	req, err := svc.Submit(ctx, SubmitInput{UserID: u.ID, UPIID: "ana@upi"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := svc.MarkPaid(ctx, req.ID); err != nil {
		t.Fatalf("first mark paid: %v", err)
	}
	if err := svc.MarkPaid(ctx, req.ID); err != nil {
		t.Fatalf("second mark paid: %v", err)
	}

	requests, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(requests) != 1 {
		t.Fatalf("expected 1 request after double mark, got %d", len(requests))
	}
	if requests[0].Status != StatusPaid {
		t.Fatalf("expected paid, got %s", requests[0].Status)
	}

	// Unknown ids are a silent no-op.
	if err := svc.MarkPaid(ctx, "does-not-exist"); err != nil {
		t.Fatalf("mark paid unknown id: %v", err)
	}
}
