package support

import "time"

const (
	// StatusOpen marks a message awaiting an admin.
	StatusOpen = "open"
	// StatusResolved marks a message an admin has closed.
	StatusResolved = "resolved"
)

// Message is a support ticket. UserName and UserEmail are snapshots taken at
// submission time.
type Message struct {
	ID        string
	UserID    string
	UserName  string
	UserEmail string
	Subject   string
	Body      string
	Status    string
	SentAt    time.Time
}
