package postgres

import "time"

type userRow struct {
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
