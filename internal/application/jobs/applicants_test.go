package jobs

import (
	"context"
	"fmt"
	"testing"

	"github.com/openhire/jobboard-service/internal/domain"
)

func TestFindApplicants_UnknownJob_NotFound(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newSvcForTest(t)

	_, err := svc.FindApplicants(context.Background(), "nope", 1, 10)
	requireErrCode(t, err, "job_not_found")
}

func TestFindApplicants_EmptyForFreshJob(t *testing.T) {
	t.Parallel()

	svc, repo, _, _ := newSvcForTest(t)
	repo.put(domain.Job{ExternalID: "j1", Name: "Backend Dev", Status: domain.JobPublished})

	got, err := svc.FindApplicants(context.Background(), "j1", 1, 10)
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no applicants, got %d", len(got))
	}
}

func TestFindApplicants_Paginates(t *testing.T) {
	t.Parallel()

	svc, repo, users, _ := newSvcForTest(t)
	repo.put(domain.Job{ExternalID: "j1", Name: "Backend Dev", Status: domain.JobPublished})
	for i := int64(1); i <= 12; i++ {
		ext := domain.User{ID: i, ExternalID: fmt.Sprintf("cand-%d", i), Role: "CANDIDATE"}
		users.byExternal[ext.ExternalID] = ext
		if err := svc.Apply(context.Background(), "j1", ext.ExternalID); err != nil {
			t.Fatalf("apply %d failed: %v", i, err)
		}
	}

	page1, err := svc.FindApplicants(context.Background(), "j1", 1, 10)
	if err != nil {
		t.Fatalf("page 1 failed: %v", err)
	}
	page2, err := svc.FindApplicants(context.Background(), "j1", 2, 10)
	if err != nil {
		t.Fatalf("page 2 failed: %v", err)
	}
	if len(page1) != 10 || len(page2) != 2 {
		t.Fatalf("expected 10+2, got %d+%d", len(page1), len(page2))
	}
}
