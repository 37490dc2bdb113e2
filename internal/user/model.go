package user

import "time"

// User represents a registered portal member and their point balance.
type User struct {
	ID           string
	FullName     string
	Email        string
	PhoneNumber  string
	Points       int64
	RegisteredAt time.Time
}
