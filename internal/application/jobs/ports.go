package jobs

import (
	"context"

	"github.com/openhire/jobboard-service/internal/domain"
)

/*
JobRepo
-------
Persistence port for jobs and the job<->applicant relation.

The store is the last line of defence for every rule the service also
checks in memory: job names carry a unique index, the applicant relation
a composite primary key, and Publish only flips rows that are still
unpublished. Two racing callers can both pass the in-memory checks; only
one survives the store.
*/
type JobRepo interface {
	// FindPage returns one page (reverse-chronological) plus the total
	// count across all pages. nameFilter, when non-empty, is a
	// case-sensitive substring match on the job name.
	FindPage(ctx context.Context, offset, limit int, nameFilter string) ([]domain.Job, int, error)
	GetByExternalID(ctx context.Context, externalID string, withApplicants bool) (domain.Job, error)
	Create(ctx context.Context, j domain.Job) (domain.Job, error)
	// Publish flips UNPUBLISHED -> PUBLISHED. It fails with a conflict
	// when the row was already published, even in a race.
	Publish(ctx context.Context, externalID string) (domain.Job, error)
	// AddApplicant inserts the (job, user) join row; a duplicate pair is
	// a conflict.
	AddApplicant(ctx context.Context, jobID, userID int64) error
	ListApplicants(ctx context.Context, jobExternalID string, offset, limit int) ([]domain.User, error)
}

/*
UserResolver
------------
The slice of the identity service the lifecycle needs. Satisfied by
*identity.Service.
*/
type UserResolver interface {
	FindByExternalID(ctx context.Context, externalID string) (domain.User, error)
}

/*
EventPublisher
--------------
Publishes lifecycle events for downstream consumers (notifications).
Publishing is best-effort: a broker failure never fails the operation.
*/
type EventPublisher interface {
	PublishJobPublished(ctx context.Context, evt JobPublishedEvent) error
	PublishCandidateApplied(ctx context.Context, evt CandidateAppliedEvent) error
}

type JobPublishedEvent struct {
	JobExternalID string
	Name          string
}

type CandidateAppliedEvent struct {
	JobExternalID  string
	UserExternalID string
	Email          string
}
