package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/openhire/jobboard-service/internal/application/identity"
	"github.com/openhire/jobboard-service/internal/domain"
)

/*
Fakes for ports
*/

type fakeIdentity struct {
	mu sync.Mutex

	byEmail    map[string]domain.User
	byExternal map[string]domain.User

	createErr error
	nextID    int64
}

func newFakeIdentity() *fakeIdentity {
	return &fakeIdentity{
		byEmail:    map[string]domain.User{},
		byExternal: map[string]domain.User{},
	}
}

func (f *fakeIdentity) put(u domain.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byEmail[u.Email] = u
	f.byExternal[u.ExternalID] = u
}

func (f *fakeIdentity) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (f *fakeIdentity) FindByExternalID(ctx context.Context, externalID string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byExternal[externalID]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (f *fakeIdentity) Create(ctx context.Context, in identity.CreateUserInput) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return domain.User{}, f.createErr
	}
	if _, ok := f.byEmail[in.Email]; ok {
		return domain.User{}, domain.ErrEmailAlreadyExists()
	}
	f.nextID++
	u := domain.User{
		ID:           f.nextID,
		ExternalID:   fmt.Sprintf("ext-%d", f.nextID),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: "hash:" + in.Password,
		Role:         string(in.Role),
	}
	f.byEmail[u.Email] = u
	f.byExternal[u.ExternalID] = u
	return u, nil
}

type fakeHasher struct {
	compareFn func(hash, pw string) error
}

func (f *fakeHasher) Compare(hash, pw string) error {
	if f.compareFn != nil {
		return f.compareFn(hash, pw)
	}
	if hash != "hash:"+pw {
		return errors.New("mismatch")
	}
	return nil
}

type fakeSigner struct {
	signErr error
}

func (f *fakeSigner) SignAccessToken(u domain.User, ttl time.Duration) (string, error) {
	if f.signErr != nil {
		return "", f.signErr
	}
	return "token-for-" + u.ExternalID, nil
}

func (f *fakeSigner) VerifyAccessToken(token string) (TokenClaims, error) {
	return TokenClaims{}, errors.New("not used in fakes")
}

func newSvcForTest(t *testing.T) (*Service, *fakeIdentity, *fakeHasher, *fakeSigner) {
	t.Helper()
	ids := newFakeIdentity()
	hasher := &fakeHasher{}
	signer := &fakeSigner{}
	svc := NewService(ids, hasher, signer, Config{AccessTTL: time.Minute})
	return svc, ids, hasher, signer
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
