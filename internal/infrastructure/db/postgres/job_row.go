package postgres

import "time"

type jobRow struct {
	ID         int64
	ExternalID string
	Name       string
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}
