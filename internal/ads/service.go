package ads

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rewixcash/portal/internal/user"
)

// ErrNotFinished indicates a completion attempt before the ad duration elapsed.
var ErrNotFinished = errors.New("ad still playing")

// Service runs the watch-an-ad point flow: Start opens a timed view, Complete
// consumes it and credits the reward once the full ad duration has passed.
type Service struct {
	store       Store
	users       *user.Service
	adDuration  time.Duration
	viewTTL     time.Duration
	pointsPerAd int64
	now         func() time.Time
}

// NewService builds an ads service. viewTTL bounds how long a started view
// stays claimable.
func NewService(store Store, users *user.Service, adDuration, viewTTL time.Duration, pointsPerAd int64) *Service {
	return &Service{
		store:       store,
		users:       users,
		adDuration:  adDuration,
		viewTTL:     viewTTL,
		pointsPerAd: pointsPerAd,
		now:         time.Now,
	}
}

// Duration reports how long an ad must play before it can be completed.
func (s *Service) Duration() time.Duration {
	return s.adDuration
}

// Start opens an ad view for the user.
func (s *Service) Start(ctx context.Context, userID string) (View, error) {
	if _, err := s.users.Get(ctx, userID); err != nil {
		return View{}, err
	}

	v := View{ID: uuid.NewString(), UserID: userID, StartedAt: s.now().UTC()}
	if err := s.store.Put(ctx, v, s.viewTTL); err != nil {
		return View{}, err
	}
	return v, nil
}

// Complete consumes the view and credits the reward. The view must belong to
// the caller and the full ad duration must have elapsed since Start. A view
// is consumable exactly once.
func (s *Service) Complete(ctx context.Context, userID, viewID string) (user.User, error) {
	v, err := s.store.Get(ctx, viewID)
	if err != nil {
		return user.User{}, err
	}
	if v.UserID != userID {
		return user.User{}, ErrViewNotFound
	}
	if s.now().Sub(v.StartedAt) < s.adDuration {
		return user.User{}, ErrNotFinished
	}

	if err := s.store.Delete(ctx, viewID); err != nil {
		return user.User{}, err
	}

	return s.users.CreditPoints(ctx, userID, s.pointsPerAd)
}
