package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/openhire/jobboard-service/internal/domain"
)

type JobRepo struct {
	db *sql.DB
}

func NewJobRepo(db *sql.DB) *JobRepo {
	return &JobRepo{db: db}
}

// ---------- helpers ----------

func (r *JobRepo) scanJobRow(row *sql.Row) (jobRow, error) {
	var jr jobRow
	err := row.Scan(
		&jr.ID,
		&jr.ExternalID,
		&jr.Name,
		&jr.Status,
		&jr.CreatedAt,
		&jr.UpdatedAt,
		&jr.DeletedAt,
	)
	return jr, err
}

func toDomainJob(jr jobRow) domain.Job {
	return domain.Job{
		ID:         jr.ID,
		ExternalID: jr.ExternalID,
		Name:       jr.Name,
		Status:     domain.JobStatus(jr.Status),
		CreatedAt:  jr.CreatedAt,
		UpdatedAt:  jr.UpdatedAt,
		DeletedAt:  jr.DeletedAt,
	}
}

// escapeLike neutralizes LIKE metacharacters so a filter value is always
// matched literally. Queries using it must declare ESCAPE '\'.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// ---------- jobs.JobRepo ----------

func (r *JobRepo) FindPage(ctx context.Context, offset, limit int, nameFilter string) ([]domain.Job, int, error) {
	const countAll = `SELECT COUNT(1) FROM jobs WHERE deleted_at IS NULL;`
	const countFiltered = `
SELECT COUNT(1) FROM jobs
WHERE deleted_at IS NULL AND name LIKE '%' || $1 || '%' ESCAPE '\';
`
	const pageAll = `
SELECT id, external_id, name, status, created_at, updated_at, deleted_at
FROM jobs
WHERE deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $1 OFFSET $2;
`
	const pageFiltered = `
SELECT id, external_id, name, status, created_at, updated_at, deleted_at
FROM jobs
WHERE deleted_at IS NULL AND name LIKE '%' || $3 || '%' ESCAPE '\'
ORDER BY created_at DESC
LIMIT $1 OFFSET $2;
`

	var total int
	var rows *sql.Rows
	var err error

	if nameFilter == "" {
		if err = r.db.QueryRowContext(ctx, countAll).Scan(&total); err != nil {
			return nil, 0, domain.ErrDBUnavailable(err)
		}
		rows, err = r.db.QueryContext(ctx, pageAll, limit, offset)
	} else {
		filter := escapeLike(nameFilter)
		if err = r.db.QueryRowContext(ctx, countFiltered, filter).Scan(&total); err != nil {
			return nil, 0, domain.ErrDBUnavailable(err)
		}
		rows, err = r.db.QueryContext(ctx, pageFiltered, limit, offset, filter)
	}
	if err != nil {
		return nil, 0, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var jr jobRow
		if err := rows.Scan(&jr.ID, &jr.ExternalID, &jr.Name, &jr.Status, &jr.CreatedAt, &jr.UpdatedAt, &jr.DeletedAt); err != nil {
			return nil, 0, domain.ErrDBUnavailable(err)
		}
		jobs = append(jobs, toDomainJob(jr))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, domain.ErrDBUnavailable(err)
	}
	return jobs, total, nil
}

func (r *JobRepo) GetByExternalID(ctx context.Context, externalID string, withApplicants bool) (domain.Job, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return domain.Job{}, domain.ErrMissingField("external_id")
	}

	const q = `
SELECT id, external_id, name, status, created_at, updated_at, deleted_at
FROM jobs
WHERE external_id = $1 AND deleted_at IS NULL
LIMIT 1;
`
	jr, err := r.scanJobRow(r.db.QueryRowContext(ctx, q, externalID))
	if err != nil {
		if isNoRows(err) {
			return domain.Job{}, domain.ErrJobNotFound()
		}
		return domain.Job{}, domain.ErrDBUnavailable(err)
	}

	j := toDomainJob(jr)
	if withApplicants {
		applicants, err := r.applicantsForJob(ctx, j.ID)
		if err != nil {
			return domain.Job{}, err
		}
		j.Applicants = applicants
	}
	return j, nil
}

func (r *JobRepo) Create(ctx context.Context, j domain.Job) (domain.Job, error) {
	if j.ExternalID == "" {
		return domain.Job{}, domain.ErrMissingField("external_id")
	}
	if j.Name == "" {
		return domain.Job{}, domain.ErrMissingField("name")
	}
	if j.Status == "" {
		j.Status = domain.JobUnpublished
	}

	const q = `
INSERT INTO jobs (external_id, name, status)
VALUES ($1, $2, $3)
RETURNING id, external_id, name, status, created_at, updated_at, deleted_at;
`
	jr, err := r.scanJobRow(r.db.QueryRowContext(ctx, q, j.ExternalID, j.Name, j.Status))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Job{}, domain.ErrJobNameTaken()
		}
		return domain.Job{}, domain.ErrDBUnavailable(err)
	}
	return toDomainJob(jr), nil
}

// Publish is a conditional update: only a row still UNPUBLISHED is
// flipped, so concurrent publishers cannot both succeed.
func (r *JobRepo) Publish(ctx context.Context, externalID string) (domain.Job, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return domain.Job{}, domain.ErrMissingField("external_id")
	}

	const q = `
UPDATE jobs
SET status = $2, updated_at = NOW()
WHERE external_id = $1 AND deleted_at IS NULL AND status = $3
RETURNING id, external_id, name, status, created_at, updated_at, deleted_at;
`
	jr, err := r.scanJobRow(r.db.QueryRowContext(ctx, q, externalID, domain.JobPublished, domain.JobUnpublished))
	if err != nil {
		if isNoRows(err) {
			// Row missing or already published; look once more to tell
			// the two apart.
			if _, err := r.GetByExternalID(ctx, externalID, false); err != nil {
				return domain.Job{}, err
			}
			return domain.Job{}, domain.ErrJobAlreadyPublished()
		}
		return domain.Job{}, domain.ErrDBUnavailable(err)
	}
	return toDomainJob(jr), nil
}

// AddApplicant inserts the join row. The composite primary key on
// (job_id, user_id) turns a concurrent duplicate into a conflict here
// even when both requests passed the service-level check.
func (r *JobRepo) AddApplicant(ctx context.Context, jobID, userID int64) error {
	const q = `INSERT INTO job_applications (job_id, user_id) VALUES ($1, $2);`

	if _, err := r.db.ExecContext(ctx, q, jobID, userID); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyApplied()
		}
		return domain.ErrDBUnavailable(err)
	}
	return nil
}

func (r *JobRepo) ListApplicants(ctx context.Context, jobExternalID string, offset, limit int) ([]domain.User, error) {
	const q = `
SELECT u.id, u.external_id, u.name, u.email, u.password_hash, u.role, u.created_at, u.updated_at, u.deleted_at
FROM users u
INNER JOIN job_applications ja ON u.id = ja.user_id
INNER JOIN jobs j ON ja.job_id = j.id
WHERE j.external_id = $1 AND u.deleted_at IS NULL
ORDER BY ja.applied_at
LIMIT $2 OFFSET $3;
`
	rows, err := r.db.QueryContext(ctx, q, jobExternalID, limit, offset)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

func (r *JobRepo) applicantsForJob(ctx context.Context, jobID int64) ([]domain.User, error) {
	const q = `
SELECT u.id, u.external_id, u.name, u.email, u.password_hash, u.role, u.created_at, u.updated_at, u.deleted_at
FROM users u
INNER JOIN job_applications ja ON u.id = ja.user_id
WHERE ja.job_id = $1 AND u.deleted_at IS NULL
ORDER BY ja.applied_at;
`
	rows, err := r.db.QueryContext(ctx, q, jobID)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

func collectUsers(rows *sql.Rows) ([]domain.User, error) {
	var users []domain.User
	for rows.Next() {
		var ur userRow
		if err := rows.Scan(&ur.ID, &ur.ExternalID, &ur.Name, &ur.Email, &ur.PasswordHash, &ur.Role, &ur.CreatedAt, &ur.UpdatedAt, &ur.DeletedAt); err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		users = append(users, toDomainUser(ur))
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return users, nil
}
