package jobs

import (
	"github.com/openhire/jobboard-service/internal/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

type Service struct {
	repo  JobRepo
	users UserResolver
	pub   EventPublisher
}

func NewService(repo JobRepo, users UserResolver, pub EventPublisher) *Service {
	return &Service{repo: repo, users: users, pub: pub}
}

// FindAllResult mirrors the list contract: total count across pages, the
// page size that was applied, and the page itself.
type FindAllResult struct {
	Count    int
	PageSize int
	Data     []domain.Job
}
