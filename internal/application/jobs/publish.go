package jobs

import (
	"context"

	"github.com/openhire/jobboard-service/internal/domain"
	"github.com/openhire/jobboard-service/internal/logger"
)

// Publish flips a job to PUBLISHED. Publishing twice is a conflict, never
// a silent no-op. The in-memory status check gives the common case a good
// error; the conditional update in the repo decides races.
func (s *Service) Publish(ctx context.Context, externalID string) (domain.Job, error) {
	j, err := s.FindOne(ctx, externalID, false)
	if err != nil {
		return domain.Job{}, err
	}

	if j.Status == domain.JobPublished {
		return domain.Job{}, domain.ErrJobAlreadyPublished()
	}

	updated, err := s.repo.Publish(ctx, externalID)
	if err != nil {
		return domain.Job{}, err
	}

	if s.pub != nil {
		if err := s.pub.PublishJobPublished(ctx, JobPublishedEvent{
			JobExternalID: updated.ExternalID,
			Name:          updated.Name,
		}); err != nil {
			lg := logger.WithCtx(ctx)
			lg.Warn().Err(err).
				Str("job_external_id", updated.ExternalID).
				Msg("job_published event not delivered")
		}
	}

	return updated, nil
}
