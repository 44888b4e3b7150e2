package auth

import (
	"context"
	"html"

	"github.com/openhire/jobboard-service/internal/application/identity"
	"github.com/openhire/jobboard-service/internal/domain"
)

type RegisterCandidateInput struct {
	Name     string
	Email    string
	Password string
}

// RegisterCandidate creates a self-service account. The role is always
// CANDIDATE; recruiter and interviewer accounts are provisioned
// administratively. Name and email are HTML-escaped before persistence so
// stored values can never carry markup.
func (s *Service) RegisterCandidate(ctx context.Context, in RegisterCandidateInput) (domain.User, error) {
	return s.ids.Create(ctx, identity.CreateUserInput{
		Name:     html.EscapeString(in.Name),
		Email:    html.EscapeString(in.Email),
		Password: in.Password,
		Role:     domain.RoleCandidate,
	})
}
