package models

import "time"

type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}

// PasswordReset is a time-limited token minted by the reset-password flow.
// Delivery (email) is out of scope; the token is only logged.
type PasswordReset struct {
	ID        string
	UserID    string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}
