package memory

import (
	"context"
	"sync"
	"time"

	"github.com/openhire/jobboard-service/internal/domain"
)

type UserRepo struct {
	mu         sync.RWMutex
	nextID     int64
	byID       map[int64]domain.User
	byEmail    map[string]int64
	byExternal map[string]int64
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		byID:       make(map[int64]domain.User),
		byEmail:    make(map[string]int64),
		byExternal: make(map[string]int64),
	}
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return r.byID[id], nil
}

func (r *UserRepo) GetByExternalID(ctx context.Context, externalID string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byExternal[externalID]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return r.byID[id], nil
}

func (r *UserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[u.Email]; exists {
		return domain.User{}, domain.ErrEmailAlreadyExists()
	}
	// ExternalID should already be set by the identity service; be defensive.
	if u.ExternalID == "" {
		return domain.User{}, domain.ErrInternal(nil)
	}

	r.nextID++
	u.ID = r.nextID
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID
	r.byExternal[u.ExternalID] = u.ID
	return u, nil
}
