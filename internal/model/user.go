package model

import "time"

// User represents a registered account. Emails are unique and compared
// exactly as stored.
type User struct {
	CreatedAt    time.Time
	Email        string
	PasswordHash string
	ID           int64
}
