package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates the token does not map to a live session.
var ErrNotFound = errors.New("session not found")

// Session binds an opaque bearer token to a user. Admin sessions carry no
// user id. The user record itself is resolved per request, never snapshotted
// into the session, so a balance update can never leave a stale copy behind.
type Session struct {
	Token     string
	UserID    string
	Admin     bool
	CreatedAt time.Time
}

// Store persists sessions with a bounded lifetime.
type Store interface {
	Put(ctx context.Context, s Session, ttl time.Duration) error
	Get(ctx context.Context, token string) (Session, error)
	Delete(ctx context.Context, token string) error
}
