package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openhire/jobboard-service/internal/application/auth"
	"github.com/openhire/jobboard-service/internal/domain"
	"github.com/openhire/jobboard-service/internal/transport/http/response"
)

type fakeVerifier struct {
	claims auth.TokenClaims
	err    error
}

func (f *fakeVerifier) VerifyAccessToken(token string) (auth.TokenClaims, error) {
	if f.err != nil {
		return auth.TokenClaims{}, f.err
	}
	return f.claims, nil
}

type fakeValidator struct {
	user domain.User
	err  error
}

func (f *fakeValidator) ValidateUser(ctx context.Context, claims auth.TokenClaims) (domain.User, error) {
	if f.err != nil {
		return domain.User{}, f.err
	}
	return f.user, nil
}

func runAuth(t *testing.T, verifier TokenVerifier, validator UserValidator, header string) (*httptest.ResponseRecorder, *Identity) {
	t.Helper()

	var captured *Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := IdentityFromContext(r.Context()); ok {
			captured = &id
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()

	Auth(verifier, validator, response.WriteError)(next).ServeHTTP(rec, req)
	return rec, captured
}

func TestAuth_MissingHeader_401(t *testing.T) {
	t.Parallel()

	rec, _ := runAuth(t, &fakeVerifier{}, &fakeValidator{}, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_MalformedHeader_401(t *testing.T) {
	t.Parallel()

	for _, h := range []string{"Basic abc", "Bearer", "Bearer  "} {
		rec, _ := runAuth(t, &fakeVerifier{}, &fakeValidator{}, h)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", h, rec.Code)
		}
	}
}

func TestAuth_InvalidToken_401(t *testing.T) {
	t.Parallel()

	rec, _ := runAuth(t, &fakeVerifier{err: domain.ErrTokenInvalid()}, &fakeValidator{}, "Bearer bad")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_DeletedSubject_401(t *testing.T) {
	t.Parallel()

	verifier := &fakeVerifier{claims: auth.TokenClaims{Subject: "ext-1", Email: "gone@x.com"}}
	validator := &fakeValidator{err: domain.ErrUnknownSubject()}

	rec, _ := runAuth(t, verifier, validator, "Bearer tok")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_Success_InjectsIdentity(t *testing.T) {
	t.Parallel()

	verifier := &fakeVerifier{claims: auth.TokenClaims{Subject: "ext-1", Email: "a@x.com", Role: "RECRUITER"}}
	validator := &fakeValidator{user: domain.User{ExternalID: "ext-1", Name: "A", Email: "a@x.com", Role: "RECRUITER"}}

	rec, id := runAuth(t, verifier, validator, "Bearer tok")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if id == nil || id.ExternalID != "ext-1" || id.Role != "RECRUITER" {
		t.Fatalf("expected identity in context, got %+v", id)
	}
}
