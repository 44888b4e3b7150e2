package identity

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/openhire/jobboard-service/internal/domain"
)

type Service struct {
	users  UserRepo
	hasher PasswordHasher
}

func NewService(users UserRepo, hasher PasswordHasher) *Service {
	return &Service{users: users, hasher: hasher}
}

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

func (s *Service) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	return s.users.GetByEmail(ctx, email)
}

func (s *Service) FindByExternalID(ctx context.Context, externalID string) (domain.User, error) {
	return s.users.GetByExternalID(ctx, externalID)
}

// Create persists a new user. The plaintext password never reaches the
// store; it is bcrypt-hashed here. A duplicate email surfaces as a
// conflict from the underlying unique constraint.
func (s *Service) Create(ctx context.Context, in CreateUserInput) (domain.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	if in.Name == "" {
		return domain.User{}, domain.ErrMissingField("name")
	}
	if in.Email == "" {
		return domain.User{}, domain.ErrMissingField("email")
	}
	if in.Password == "" {
		return domain.User{}, domain.ErrMissingField("password")
	}
	if !domain.IsValidRole(string(in.Role)) {
		return domain.User{}, domain.ErrInvalidRole(string(in.Role))
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return domain.User{}, domain.ErrHashFailed(err)
	}

	u := domain.User{
		ExternalID:   uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         string(in.Role),
	}

	return s.users.Create(ctx, u)
}
