package jobs

import (
	"context"

	"github.com/openhire/jobboard-service/internal/domain"
	"github.com/openhire/jobboard-service/internal/logger"
)

// Apply records a candidate's application to a published job.
//
// The scan over the loaded applicant set is a fast path only: the
// read-check-write sequence is not atomic, and two concurrent
// applications can both pass it. The composite primary key on the join
// table is the hard guarantee, surfaced by AddApplicant as the same
// conflict.
func (s *Service) Apply(ctx context.Context, jobExternalID, userExternalID string) error {
	if userExternalID == "" {
		return domain.ErrMissingField("userExternalId")
	}

	j, err := s.FindOne(ctx, jobExternalID, true)
	if err != nil {
		return err
	}

	if j.Status != domain.JobPublished {
		return domain.ErrJobNotPublished()
	}

	for _, a := range j.Applicants {
		if a.ExternalID == userExternalID {
			return domain.ErrAlreadyApplied()
		}
	}

	u, err := s.users.FindByExternalID(ctx, userExternalID)
	if err != nil {
		return err
	}

	if err := s.repo.AddApplicant(ctx, j.ID, u.ID); err != nil {
		return err
	}

	if s.pub != nil {
		if err := s.pub.PublishCandidateApplied(ctx, CandidateAppliedEvent{
			JobExternalID:  j.ExternalID,
			UserExternalID: u.ExternalID,
			Email:          u.Email,
		}); err != nil {
			lg := logger.WithCtx(ctx)
			lg.Warn().Err(err).
				Str("job_external_id", j.ExternalID).
				Str("user_external_id", u.ExternalID).
				Msg("candidate_applied event not delivered")
		}
	}

	return nil
}
