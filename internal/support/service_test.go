package support

import (
	"context"
	"testing"

	"github.com/rewixcash/portal/internal/user"
)

func TestSubmitAndResolve(t *testing.T) {
	users := user.NewService(user.NewMemoryRepository())
	svc := NewService(NewMemoryRepository(), users)
	ctx := context.Background()

	u, err := users.Register(ctx, user.Registration{FullName: "Ana", Email: "ana@x.com", PhoneNumber: "9876543210"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	msg, err := svc.Submit(ctx, SubmitInput{UserID: u.ID, Subject: "missing payout", Body: "where are my points?"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if msg.Status != StatusOpen {
		t.Fatalf("expected open, got %s", msg.Status)
	}
	if msg.UserName != "Ana" || msg.UserEmail != "ana@x.com" {
		t.Fatalf("expected user snapshot, got %s / %s", msg.UserName, msg.UserEmail)
	}

	if err := svc.MarkResolved(ctx, msg.ID); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if err := svc.MarkResolved(ctx, msg.ID); err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if err := svc.MarkResolved(ctx, "does-not-exist"); err != nil {
		t.Fatalf("resolve unknown id: %v", err)
	}

	messages, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(messages) != 1 || messages[0].Status != StatusResolved {
		t.Fatalf("expected single resolved message, got %+v", messages)
	}
}

func TestSnapshotDoesNotFollowProfileChanges(t *testing.T) {
	users := user.NewService(user.NewMemoryRepository())
	svc := NewService(NewMemoryRepository(), users)
	ctx := context.Background()

	u, err := users.Register(ctx, user.Registration{FullName: "Ana", Email: "ana@x.com", PhoneNumber: "9876543210"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	msg, err := svc.Submit(ctx, SubmitInput{UserID: u.ID, Subject: "hi", Body: "hello"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	// A later balance change must not rewrite the stored snapshot.
	if _, err := users.CreditPoints(ctx, u.ID, 10); err != nil {
		t.Fatalf("credit: %v", err)
	}

	messages, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if messages[0].UserName != msg.UserName || messages[0].UserEmail != msg.UserEmail {
		t.Fatalf("snapshot changed: %+v", messages[0])
	}
}
