package domain

import "time"

// User is an account. ID is the internal storage key and never leaves the
// service; ExternalID is the opaque identifier exposed to callers.
type User struct {
	ID           int64
	ExternalID   string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}
