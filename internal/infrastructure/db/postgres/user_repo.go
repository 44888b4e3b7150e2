package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/openhire/jobboard-service/internal/domain"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// ---------- helpers ----------

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *UserRepo) scanUserRow(row *sql.Row) (userRow, error) {
	var ur userRow
	err := row.Scan(
		&ur.ID,
		&ur.ExternalID,
		&ur.Name,
		&ur.Email,
		&ur.PasswordHash,
		&ur.Role,
		&ur.CreatedAt,
		&ur.UpdatedAt,
		&ur.DeletedAt,
	)
	return ur, err
}

func toDomainUser(ur userRow) domain.User {
	return domain.User{
		ID:           ur.ID,
		ExternalID:   ur.ExternalID,
		Name:         ur.Name,
		Email:        ur.Email,
		PasswordHash: ur.PasswordHash,
		Role:         ur.Role,
		CreatedAt:    ur.CreatedAt,
		UpdatedAt:    ur.UpdatedAt,
		DeletedAt:    ur.DeletedAt,
	}
}

// ---------- identity.UserRepo ----------

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return domain.User{}, domain.ErrMissingField("email")
	}

	const q = `
SELECT id, external_id, name, email, password_hash, role, created_at, updated_at, deleted_at
FROM users
WHERE email = $1 AND deleted_at IS NULL
LIMIT 1;
`
	ur, err := r.scanUserRow(r.db.QueryRowContext(ctx, q, email))
	if err != nil {
		if isNoRows(err) {
			return domain.User{}, domain.ErrUserNotFound()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return toDomainUser(ur), nil
}

func (r *UserRepo) GetByExternalID(ctx context.Context, externalID string) (domain.User, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return domain.User{}, domain.ErrMissingField("external_id")
	}

	const q = `
SELECT id, external_id, name, email, password_hash, role, created_at, updated_at, deleted_at
FROM users
WHERE external_id = $1 AND deleted_at IS NULL
LIMIT 1;
`
	ur, err := r.scanUserRow(r.db.QueryRowContext(ctx, q, externalID))
	if err != nil {
		if isNoRows(err) {
			return domain.User{}, domain.ErrUserNotFound()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return toDomainUser(ur), nil
}

func (r *UserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	u.Email = normalizeEmail(u.Email)
	if u.ExternalID == "" {
		return domain.User{}, domain.ErrMissingField("external_id")
	}
	if u.Email == "" {
		return domain.User{}, domain.ErrMissingField("email")
	}
	if u.PasswordHash == "" {
		return domain.User{}, domain.ErrMissingField("password_hash")
	}
	if !domain.IsValidRole(u.Role) {
		return domain.User{}, domain.ErrInvalidRole(u.Role)
	}

	const q = `
INSERT INTO users (external_id, name, email, password_hash, role)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, external_id, name, email, password_hash, role, created_at, updated_at, deleted_at;
`
	ur, err := r.scanUserRow(r.db.QueryRowContext(ctx, q,
		u.ExternalID, u.Name, u.Email, u.PasswordHash, u.Role,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, domain.ErrEmailAlreadyExists()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return toDomainUser(ur), nil
}
