package auth

import (
	"context"

	"github.com/openhire/jobboard-service/internal/domain"
)

// ValidateUser re-resolves a verified token payload against the identity
// store. The token body is trusted only for identity, never for
// authorization: a user deleted after issuance stops resolving here.
func (s *Service) ValidateUser(ctx context.Context, claims TokenClaims) (domain.User, error) {
	u, err := s.ids.FindByEmail(ctx, claims.Email)
	if err != nil {
		return domain.User{}, domain.ErrUnknownSubject()
	}
	return u, nil
}
