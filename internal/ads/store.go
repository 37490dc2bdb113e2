package ads

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrViewNotFound indicates the ad view does not exist, expired unclaimed, or
// belongs to another user.
var ErrViewNotFound = errors.New("ad view not found")

// View is an in-flight ad watch. It is created when the user starts the ad
// and consumed exactly once when the countdown completes.
type View struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	StartedAt time.Time `json:"started_at"`
}

// Store persists in-flight ad views with a bounded lifetime.
type Store interface {
	Put(ctx context.Context, v View, ttl time.Duration) error
	Get(ctx context.Context, id string) (View, error)
	Delete(ctx context.Context, id string) error
}

const keyPrefix = "adview:v1:"

// RedisStore keeps ad views in Redis; unclaimed views expire via TTL.
type RedisStore struct {
	cache *redis.Client
}

// NewRedisStore builds a Redis-backed ad view store.
func NewRedisStore(cache *redis.Client) *RedisStore {
	return &RedisStore{cache: cache}
}

// Put stores the view under its id with the provided TTL.
func (s *RedisStore) Put(ctx context.Context, v View, ttl time.Duration) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, keyPrefix+v.ID, payload, ttl).Err()
}

// Get resolves a view id, or ErrViewNotFound when absent or expired.
func (s *RedisStore) Get(ctx context.Context, id string) (View, error) {
	payload, err := s.cache.Get(ctx, keyPrefix+id).Result()
	if err == redis.Nil {
		return View{}, ErrViewNotFound
	}
	if err != nil {
		return View{}, err
	}
	var v View
	if err := json.Unmarshal([]byte(payload), &v); err != nil {
		return View{}, err
	}
	return v, nil
}

// Delete removes the view.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.cache.Del(ctx, keyPrefix+id).Err()
}
