package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:v1:"

// RedisStore keeps sessions in Redis so they survive restarts and expire
// server-side via TTL.
type RedisStore struct {
	cache *redis.Client
}

// NewRedisStore builds a Redis-backed session store.
func NewRedisStore(cache *redis.Client) *RedisStore {
	return &RedisStore{cache: cache}
}

type storedSession struct {
	UserID    string    `json:"user_id,omitempty"`
	Admin     bool      `json:"admin,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Put stores the session under its token with the provided TTL.
func (s *RedisStore) Put(ctx context.Context, sess Session, ttl time.Duration) error {
	payload, err := json.Marshal(storedSession{UserID: sess.UserID, Admin: sess.Admin, CreatedAt: sess.CreatedAt})
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, keyPrefix+sess.Token, payload, ttl).Err()
}

// Get resolves a token to its session, or ErrNotFound when absent or expired.
func (s *RedisStore) Get(ctx context.Context, token string) (Session, error) {
	payload, err := s.cache.Get(ctx, keyPrefix+token).Result()
	if err == redis.Nil {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, err
	}
	var stored storedSession
	if err := json.Unmarshal([]byte(payload), &stored); err != nil {
		return Session{}, err
	}
	return Session{Token: token, UserID: stored.UserID, Admin: stored.Admin, CreatedAt: stored.CreatedAt}, nil
}

// Delete removes the session. Deleting an unknown token is not an error.
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.cache.Del(ctx, keyPrefix+token).Err()
}
