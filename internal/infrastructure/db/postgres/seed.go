package postgres

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/openhire/jobboard-service/internal/domain"
)

type SeederHasher interface {
	Hash(password string) (string, error)
}

type SeederRepo interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
}

// SeedUsers creates one account per role for local development.
func SeedUsers(ctx context.Context, repo SeederRepo, hasher SeederHasher) {
	type seedUser struct {
		Name  string
		Email string
		Role  domain.Role
		Pass  string
	}

	seeds := []seedUser{
		{Name: "Seed Candidate", Email: "candidate@example.com", Role: domain.RoleCandidate, Pass: "CandidatePassword123!"},
		{Name: "Seed Recruiter", Email: "recruiter@example.com", Role: domain.RoleRecruiter, Pass: "RecruiterPassword123!"},
		{Name: "Seed Interviewer", Email: "interviewer@example.com", Role: domain.RoleInterviewer, Pass: "InterviewerPassword123!"},
	}

	for _, s := range seeds {
		hash, err := hasher.Hash(s.Pass)
		if err != nil {
			log.Printf("[seed] hash failed (%s): %v", s.Email, err)
			continue
		}

		u := domain.User{
			ExternalID:   uuid.NewString(),
			Name:         s.Name,
			Email:        s.Email,
			PasswordHash: hash,
			Role:         string(s.Role),
		}

		if _, err = repo.Create(ctx, u); err != nil {
			// ignore duplicates (restart safe)
			continue
		}
	}

	log.Println("[seed] postgres users seeded")
}
