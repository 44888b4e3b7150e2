package identity

import (
	"context"

	"github.com/openhire/jobboard-service/internal/domain"
)

/*
UserRepo
--------
Persistence port for users. Only describes WHAT the identity service
needs, not HOW it's stored. Soft-deleted rows are invisible to every
lookup.
*/
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByExternalID(ctx context.Context, externalID string) (domain.User, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)
}

/*
PasswordHasher
--------------
Abstracts bcrypt.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error // nil if match
}
