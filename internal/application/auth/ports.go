package auth

import (
	"context"
	"time"

	"github.com/openhire/jobboard-service/internal/application/identity"
	"github.com/openhire/jobboard-service/internal/domain"
)

/*
IdentityService
---------------
Everything the session issuer needs from the identity side. Satisfied by
*identity.Service.
*/
type IdentityService interface {
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByExternalID(ctx context.Context, externalID string) (domain.User, error)
	Create(ctx context.Context, in identity.CreateUserInput) (domain.User, error)
}

/*
PasswordHasher
--------------
Only the compare half is needed here; hashing happens in identity.
*/
type PasswordHasher interface {
	Compare(hash string, password string) error // nil if match
}

/*
TokenSigner
-----------
Issues and verifies access tokens (JWT).
Used by service + auth middleware.

The payload carries the external id as subject plus name, email and role.
Internal ids and password hashes never enter a token.
*/
type TokenClaims struct {
	Subject string // user external id
	Name    string
	Email   string
	Role    string
	Exp     time.Time
}

type TokenSigner interface {
	SignAccessToken(u domain.User, ttl time.Duration) (string, error)
	VerifyAccessToken(token string) (TokenClaims, error)
}
