package redeem

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rewixcash/portal/internal/user"
)

var (
	// ErrInsufficientPoints indicates the balance is below the redemption minimum.
	ErrInsufficientPoints = errors.New("insufficient points")

	// ErrPayoutTarget indicates the request does not name exactly one of a UPI
	// id and a gift card.
	ErrPayoutTarget = errors.New("exactly one of upi_id and gift_card must be set")

	// ErrUnknownGiftCard indicates a gift card outside the catalogue.
	ErrUnknownGiftCard = errors.New("unknown gift card")
)

// Service handles redemption submissions and admin payouts.
type Service struct {
	repo      Repository
	users     *user.Service
	minPoints int64
}

// NewService builds a redemption service enforcing the configured minimum balance.
func NewService(repo Repository, users *user.Service, minPoints int64) *Service {
	return &Service{repo: repo, users: users, minPoints: minPoints}
}

// SubmitInput captures a redemption submission.
type SubmitInput struct {
	UserID   string
	UPIID    string
	GiftCard string
	Note     string
}

// Submit validates the payout target and balance and records a pending
// request snapshotting the user's name, email and full current balance.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (Request, error) {
	if (input.UPIID == "") == (input.GiftCard == "") {
		return Request{}, ErrPayoutTarget
	}
	if input.GiftCard != "" && !knownGiftCard(input.GiftCard) {
		return Request{}, ErrUnknownGiftCard
	}

	u, err := s.users.Get(ctx, input.UserID)
	if err != nil {
		return Request{}, err
	}
	if u.Points < s.minPoints {
		return Request{}, ErrInsufficientPoints
	}

	req := Request{
		ID:          uuid.New().String(),
		UserID:      u.ID,
		UserName:    u.FullName,
		UserEmail:   u.Email,
		UPIID:       input.UPIID,
		GiftCard:    input.GiftCard,
		Note:        input.Note,
		Points:      u.Points,
		Status:      StatusPending,
		RequestedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, req); err != nil {
		return Request{}, err
	}

	return req, nil
}

// List returns all redemption requests in submission order.
func (s *Service) List(ctx context.Context) ([]Request, error) {
	return s.repo.List(ctx)
}

// MarkPaid records the admin payout. Idempotent; unknown ids are a no-op.
func (s *Service) MarkPaid(ctx context.Context, id string) error {
	return s.repo.MarkPaid(ctx, id)
}

func knownGiftCard(card string) bool {
	for _, c := range GiftCards {
		if c == card {
			return true
		}
	}
	return false
}
