package jobs

import (
	"context"
	"html"

	"github.com/openhire/jobboard-service/internal/domain"
)

type FindAllParams struct {
	Page     int
	PageSize int
	Name     string
}

// FindAll lists jobs newest-first. Pages are 1-indexed; the optional name
// filter is a case-sensitive substring match, escaped the same way job
// names are escaped on the way in so it matches the stored form.
func (s *Service) FindAll(ctx context.Context, p FindAllParams) (FindAllResult, error) {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}

	filter := ""
	if p.Name != "" {
		filter = html.EscapeString(p.Name)
	}

	offset := (p.Page - 1) * p.PageSize
	data, total, err := s.repo.FindPage(ctx, offset, p.PageSize, filter)
	if err != nil {
		return FindAllResult{}, err
	}

	return FindAllResult{
		Count:    total,
		PageSize: p.PageSize,
		Data:     data,
	}, nil
}

// FindOne loads a job by external id, optionally with its applicant set.
func (s *Service) FindOne(ctx context.Context, externalID string, withApplicants bool) (domain.Job, error) {
	if externalID == "" {
		return domain.Job{}, domain.ErrMissingField("externalId")
	}
	return s.repo.GetByExternalID(ctx, externalID, withApplicants)
}
