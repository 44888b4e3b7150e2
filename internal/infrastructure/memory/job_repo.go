package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/openhire/jobboard-service/internal/domain"
)

// JobRepo keeps jobs and the applicant relation in process. It mirrors
// the persistent store's guarantees: unique names, unique (job, user)
// pairs and a publish that only flips unpublished rows.
type JobRepo struct {
	mu         sync.RWMutex
	users      *UserRepo
	nextID     int64
	byID       map[int64]domain.Job
	byExternal map[string]int64
	byName     map[string]int64
	order      []int64 // insertion order, oldest first
	applicants map[int64][]int64
	pairs      map[[2]int64]bool
}

func NewJobRepo(users *UserRepo) *JobRepo {
	return &JobRepo{
		users:      users,
		byID:       make(map[int64]domain.Job),
		byExternal: make(map[string]int64),
		byName:     make(map[string]int64),
		applicants: make(map[int64][]int64),
		pairs:      make(map[[2]int64]bool),
	}
}

func (r *JobRepo) FindPage(ctx context.Context, offset, limit int, nameFilter string) ([]domain.Job, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []domain.Job
	// newest first
	for i := len(r.order) - 1; i >= 0; i-- {
		j := r.byID[r.order[i]]
		if nameFilter != "" && !strings.Contains(j.Name, nameFilter) {
			continue
		}
		matched = append(matched, j)
	}

	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (r *JobRepo) GetByExternalID(ctx context.Context, externalID string, withApplicants bool) (domain.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byExternal[externalID]
	if !ok {
		return domain.Job{}, domain.ErrJobNotFound()
	}
	j := r.byID[id]
	if withApplicants {
		j.Applicants = r.applicantUsers(id, 0, len(r.applicants[id]))
	}
	return j, nil
}

func (r *JobRepo) Create(ctx context.Context, j domain.Job) (domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[j.Name]; exists {
		return domain.Job{}, domain.ErrJobNameTaken()
	}
	if j.ExternalID == "" {
		return domain.Job{}, domain.ErrInternal(nil)
	}
	if j.Status == "" {
		j.Status = domain.JobUnpublished
	}

	r.nextID++
	j.ID = r.nextID
	now := time.Now()
	j.CreatedAt = now
	j.UpdatedAt = now

	r.byID[j.ID] = j
	r.byExternal[j.ExternalID] = j.ID
	r.byName[j.Name] = j.ID
	r.order = append(r.order, j.ID)
	return j, nil
}

func (r *JobRepo) Publish(ctx context.Context, externalID string) (domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byExternal[externalID]
	if !ok {
		return domain.Job{}, domain.ErrJobNotFound()
	}
	j := r.byID[id]
	if j.Status != domain.JobUnpublished {
		return domain.Job{}, domain.ErrJobAlreadyPublished()
	}
	j.Status = domain.JobPublished
	j.UpdatedAt = time.Now()
	r.byID[id] = j
	return j, nil
}

func (r *JobRepo) AddApplicant(ctx context.Context, jobID, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[jobID]; !ok {
		return domain.ErrJobNotFound()
	}
	key := [2]int64{jobID, userID}
	if r.pairs[key] {
		return domain.ErrAlreadyApplied()
	}
	r.pairs[key] = true
	r.applicants[jobID] = append(r.applicants[jobID], userID)
	return nil
}

func (r *JobRepo) ListApplicants(ctx context.Context, jobExternalID string, offset, limit int) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byExternal[jobExternalID]
	if !ok {
		return nil, domain.ErrJobNotFound()
	}
	return r.applicantUsers(id, offset, limit), nil
}

// callers hold r.mu
func (r *JobRepo) applicantUsers(jobID int64, offset, limit int) []domain.User {
	ids := r.applicants[jobID]
	if offset >= len(ids) {
		return nil
	}
	end := offset + limit
	if end > len(ids) {
		end = len(ids)
	}

	var users []domain.User
	for _, uid := range ids[offset:end] {
		if r.users == nil {
			continue
		}
		r.users.mu.RLock()
		u, ok := r.users.byID[uid]
		r.users.mu.RUnlock()
		if ok {
			users = append(users, u)
		}
	}
	return users
}
