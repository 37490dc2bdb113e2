package redeem

import "time"

const (
	// StatusPending marks a request awaiting admin payout.
	StatusPending = "pending"
	// StatusPaid marks a request the admin has paid out.
	StatusPaid = "paid"
)

// GiftCards is the catalogue of gift card payouts offered by the portal.
var GiftCards = []string{"amazon", "google-play", "apple", "netflix", "spotify"}

// Request is a user's ask to convert points into a payout. Exactly one of
// UPIID and GiftCard is set. UserName and UserEmail are snapshots taken at
// submission time and never follow later profile changes.
type Request struct {
	ID          string
	UserID      string
	UserName    string
	UserEmail   string
	UPIID       string
	GiftCard    string
	Note        string
	Points      int64
	Status      string
	RequestedAt time.Time
}
