package auth

import (
	"context"

	"github.com/openhire/jobboard-service/internal/domain"
)

func (s *Service) UserByExternalID(ctx context.Context, externalID string) (domain.User, error) {
	return s.ids.FindByExternalID(ctx, externalID)
}
