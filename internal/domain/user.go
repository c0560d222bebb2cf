package domain

import "time"

// User represents a registered identity. PasswordHash is never serialized
// or returned to clients.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
