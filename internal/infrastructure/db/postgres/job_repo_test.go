package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhire/jobboard-service/internal/domain"
)

func newJobRepoForTest(t *testing.T) (*JobRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewJobRepo(db), mock
}

func jobColumns() []string {
	return []string{"id", "external_id", "name", "status", "created_at", "updated_at", "deleted_at"}
}

func TestJobRepo_FindPage_NoFilter(t *testing.T) {
	t.Parallel()

	repo, mock := newJobRepoForTest(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(1) FROM jobs WHERE deleted_at IS NULL")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(15))

	mock.ExpectQuery("SELECT id, external_id, name, status").
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows(jobColumns()).
			AddRow(int64(2), "j2", "Frontend Dev", "UNPUBLISHED", now, now, nil).
			AddRow(int64(1), "j1", "Backend Dev", "PUBLISHED", now, now, nil))

	jobs, total, err := repo.FindPage(context.Background(), 0, 10, "")
	require.NoError(t, err)
	assert.Equal(t, 15, total)
	require.Len(t, jobs, 2)
	assert.Equal(t, "j2", jobs[0].ExternalID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepo_FindPage_FilterEscapesLikeMeta(t *testing.T) {
	t.Parallel()

	repo, mock := newJobRepoForTest(t)

	// "100%" must match literally, not as a wildcard.
	mock.ExpectQuery("SELECT COUNT").
		WithArgs(`100\%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT id, external_id").
		WithArgs(10, 0, `100\%`).
		WillReturnRows(sqlmock.NewRows(jobColumns()))

	jobs, total, err := repo.FindPage(context.Background(), 0, 10, "100%")
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, jobs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepo_Create_UniqueName_Conflict(t *testing.T) {
	t.Parallel()

	repo, mock := newJobRepoForTest(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO jobs")).
		WithArgs("j1", "Backend Dev", domain.JobUnpublished).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), domain.Job{ExternalID: "j1", Name: "Backend Dev"})
	assert.True(t, domain.Is(err, "job_name_taken"), "got %v", err)
}

func TestJobRepo_Publish_FlipsRow(t *testing.T) {
	t.Parallel()

	repo, mock := newJobRepoForTest(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE jobs")).
		WithArgs("j1", domain.JobPublished, domain.JobUnpublished).
		WillReturnRows(sqlmock.NewRows(jobColumns()).
			AddRow(int64(1), "j1", "Backend Dev", "PUBLISHED", now, now, nil))

	j, err := repo.Publish(context.Background(), "j1")
	require.NoError(t, err)
	assert.Equal(t, domain.JobPublished, j.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepo_Publish_AlreadyPublished_Conflict(t *testing.T) {
	t.Parallel()

	repo, mock := newJobRepoForTest(t)
	now := time.Now()

	// Conditional update touches nothing because the row is already
	// published, then the follow-up read disambiguates.
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE jobs")).
		WithArgs("j1", domain.JobPublished, domain.JobUnpublished).
		WillReturnRows(sqlmock.NewRows(jobColumns()))

	mock.ExpectQuery("SELECT id, external_id, name, status").
		WithArgs("j1").
		WillReturnRows(sqlmock.NewRows(jobColumns()).
			AddRow(int64(1), "j1", "Backend Dev", "PUBLISHED", now, now, nil))

	_, err := repo.Publish(context.Background(), "j1")
	assert.True(t, domain.Is(err, "job_already_published"), "got %v", err)
}

func TestJobRepo_Publish_Missing_NotFound(t *testing.T) {
	t.Parallel()

	repo, mock := newJobRepoForTest(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE jobs")).
		WithArgs("ghost", domain.JobPublished, domain.JobUnpublished).
		WillReturnRows(sqlmock.NewRows(jobColumns()))

	mock.ExpectQuery("SELECT id, external_id, name, status").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(jobColumns()))

	_, err := repo.Publish(context.Background(), "ghost")
	assert.True(t, domain.Is(err, "job_not_found"), "got %v", err)
}

func TestJobRepo_AddApplicant_DuplicatePair_Conflict(t *testing.T) {
	t.Parallel()

	repo, mock := newJobRepoForTest(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO job_applications")).
		WithArgs(int64(1), int64(2)).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.AddApplicant(context.Background(), 1, 2)
	assert.True(t, domain.Is(err, "already_applied"), "got %v", err)
}

func TestJobRepo_GetByExternalID_WithApplicants(t *testing.T) {
	t.Parallel()

	repo, mock := newJobRepoForTest(t)
	now := time.Now()

	mock.ExpectQuery("SELECT id, external_id, name, status").
		WithArgs("j1").
		WillReturnRows(sqlmock.NewRows(jobColumns()).
			AddRow(int64(1), "j1", "Backend Dev", "PUBLISHED", now, now, nil))

	mock.ExpectQuery("SELECT u.id, u.external_id").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(int64(9), "ext-9", "Cand", "c@x.com", "hash", "CANDIDATE", now, now, nil))

	j, err := repo.GetByExternalID(context.Background(), "j1", true)
	require.NoError(t, err)
	require.Len(t, j.Applicants, 1)
	assert.Equal(t, "ext-9", j.Applicants[0].ExternalID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
