package auth

import (
	"context"
	"strings"

	"github.com/openhire/jobboard-service/internal/domain"
)

// SignIn authenticates a user and issues an access token.
// IMPORTANT: must not leak whether the email exists (avoid user
// enumeration): unknown email and wrong password return the same error.
func (s *Service) SignIn(ctx context.Context, email, password string) (SignInResult, error) {
	email = strings.TrimSpace(email)

	if email == "" || password == "" {
		return SignInResult{}, domain.ErrInvalidCredentials()
	}

	u, err := s.ids.FindByEmail(ctx, email)
	if err != nil {
		// Hide not-found behind invalid credentials
		return SignInResult{}, domain.ErrInvalidCredentials()
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return SignInResult{}, domain.ErrInvalidCredentials()
	}

	tok, err := s.signer.SignAccessToken(u, s.accessTTL)
	if err != nil {
		return SignInResult{}, domain.ErrTokenSignFailed(err)
	}

	return SignInResult{Token: tok}, nil
}
