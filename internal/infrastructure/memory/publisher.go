package memory

import (
	"context"
	"log"

	"github.com/openhire/jobboard-service/internal/application/jobs"
)

type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher { return &NoopPublisher{} }

func (p *NoopPublisher) PublishJobPublished(ctx context.Context, evt jobs.JobPublishedEvent) error {
	log.Printf("[noop-pub] job published: job=%s name=%s", evt.JobExternalID, evt.Name)
	return nil
}

func (p *NoopPublisher) PublishCandidateApplied(ctx context.Context, evt jobs.CandidateAppliedEvent) error {
	log.Printf("[noop-pub] candidate applied: job=%s user=%s", evt.JobExternalID, evt.UserExternalID)
	return nil
}
