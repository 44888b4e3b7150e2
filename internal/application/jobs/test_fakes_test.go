package jobs

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/openhire/jobboard-service/internal/domain"
)

/*
Fakes for ports
*/

type fakeJobRepo struct {
	mu sync.Mutex

	order      []string // external ids, newest first
	byExternal map[string]*domain.Job
	applicants map[string][]domain.User // job external id -> applicants
	nextID     int64

	findErr    error
	createErr  error
	publishErr error
	addErr     error
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{
		byExternal: map[string]*domain.Job{},
		applicants: map[string][]domain.User{},
	}
}

func (f *fakeJobRepo) put(j domain.Job) domain.Job {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	j.ID = f.nextID
	stored := j
	f.order = append([]string{j.ExternalID}, f.order...)
	f.byExternal[j.ExternalID] = &stored
	return j
}

func (f *fakeJobRepo) FindPage(ctx context.Context, offset, limit int, nameFilter string) ([]domain.Job, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, 0, f.findErr
	}

	var matched []domain.Job
	for _, ext := range f.order {
		j := *f.byExternal[ext]
		if nameFilter == "" || strings.Contains(j.Name, nameFilter) {
			matched = append(matched, j)
		}
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

func (f *fakeJobRepo) GetByExternalID(ctx context.Context, externalID string, withApplicants bool) (domain.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.byExternal[externalID]
	if !ok {
		return domain.Job{}, domain.ErrJobNotFound()
	}
	out := *j
	if withApplicants {
		out.Applicants = append([]domain.User(nil), f.applicants[externalID]...)
	}
	return out, nil
}

func (f *fakeJobRepo) Create(ctx context.Context, j domain.Job) (domain.Job, error) {
	f.mu.Lock()
	if f.createErr != nil {
		f.mu.Unlock()
		return domain.Job{}, f.createErr
	}
	for _, existing := range f.byExternal {
		if existing.Name == j.Name {
			f.mu.Unlock()
			return domain.Job{}, domain.ErrJobNameTaken()
		}
	}
	f.mu.Unlock()
	return f.put(j), nil
}

func (f *fakeJobRepo) Publish(ctx context.Context, externalID string) (domain.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.publishErr != nil {
		return domain.Job{}, f.publishErr
	}
	j, ok := f.byExternal[externalID]
	if !ok {
		return domain.Job{}, domain.ErrJobNotFound()
	}
	if j.Status != domain.JobUnpublished {
		return domain.Job{}, domain.ErrJobAlreadyPublished()
	}
	j.Status = domain.JobPublished
	j.UpdatedAt = time.Now()
	return *j, nil
}

func (f *fakeJobRepo) AddApplicant(ctx context.Context, jobID, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return f.addErr
	}
	for _, j := range f.byExternal {
		if j.ID != jobID {
			continue
		}
		for _, u := range f.applicants[j.ExternalID] {
			if u.ID == userID {
				return domain.ErrAlreadyApplied()
			}
		}
		f.applicants[j.ExternalID] = append(f.applicants[j.ExternalID], domain.User{ID: userID, ExternalID: fmt.Sprintf("ext-%d", userID)})
		return nil
	}
	return domain.ErrJobNotFound()
}

func (f *fakeJobRepo) ListApplicants(ctx context.Context, jobExternalID string, offset, limit int) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := f.applicants[jobExternalID]
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return append([]domain.User(nil), all[offset:end]...), nil
}

type fakeResolver struct {
	byExternal map[string]domain.User
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{byExternal: map[string]domain.User{}}
}

func (f *fakeResolver) FindByExternalID(ctx context.Context, externalID string) (domain.User, error) {
	u, ok := f.byExternal[externalID]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

type fakePublisher struct {
	mu        sync.Mutex
	published []JobPublishedEvent
	applied   []CandidateAppliedEvent
	err       error
}

func (f *fakePublisher) PublishJobPublished(ctx context.Context, evt JobPublishedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, evt)
	return nil
}

func (f *fakePublisher) PublishCandidateApplied(ctx context.Context, evt CandidateAppliedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.applied = append(f.applied, evt)
	return nil
}

func newSvcForTest(t *testing.T) (*Service, *fakeJobRepo, *fakeResolver, *fakePublisher) {
	t.Helper()
	repo := newFakeJobRepo()
	users := newFakeResolver()
	pub := &fakePublisher{}
	return NewService(repo, users, pub), repo, users, pub
}

func requireErrCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error code=%q, got nil", code)
	}
	if !domain.Is(err, code) {
		t.Fatalf("expected code=%q, got err=%v", code, err)
	}
}
