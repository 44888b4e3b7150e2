package domain

import "time"

type JobStatus string

const (
	JobUnpublished JobStatus = "UNPUBLISHED"
	JobPublished   JobStatus = "PUBLISHED"
)

// Job is a posting. Status moves UNPUBLISHED -> PUBLISHED exactly once;
// there is no reverse transition. Applicants is populated only when the
// caller asked for it.
type Job struct {
	ID         int64
	ExternalID string
	Name       string
	Status     JobStatus
	Applicants []User
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}
