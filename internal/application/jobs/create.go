package jobs

import (
	"context"
	"html"
	"strings"

	"github.com/google/uuid"

	"github.com/openhire/jobboard-service/internal/domain"
)

type CreateJobInput struct {
	Name string
}

// Create stores a new job. Jobs always start UNPUBLISHED; the name is
// HTML-escaped before persistence and must be unique (store-enforced, a
// duplicate surfaces as a conflict).
func (s *Service) Create(ctx context.Context, in CreateJobInput) (domain.Job, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Job{}, domain.ErrMissingField("name")
	}

	j := domain.Job{
		ExternalID: uuid.NewString(),
		Name:       html.EscapeString(name),
		Status:     domain.JobUnpublished,
	}

	return s.repo.Create(ctx, j)
}
