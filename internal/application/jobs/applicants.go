package jobs

import (
	"context"

	"github.com/openhire/jobboard-service/internal/domain"
)

// FindApplicants pages through the users who applied to a job.
func (s *Service) FindApplicants(ctx context.Context, jobExternalID string, page, pageSize int) ([]domain.User, error) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	// Resolve the job first so an unknown id is a 404, not an empty list.
	if _, err := s.FindOne(ctx, jobExternalID, false); err != nil {
		return nil, err
	}

	return s.repo.ListApplicants(ctx, jobExternalID, (page-1)*pageSize, pageSize)
}
