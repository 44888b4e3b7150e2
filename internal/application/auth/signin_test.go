package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/openhire/jobboard-service/internal/domain"
)

func TestSignIn_EmptyFields_InvalidCredentials(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newSvcForTest(t)

	_, err := svc.SignIn(context.Background(), "", "")
	requireErrCode(t, err, "invalid_credentials")
}

func TestSignIn_UnknownEmail_NonEnumerating(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newSvcForTest(t)

	// Unknown email must be indistinguishable from a wrong password.
	_, err := svc.SignIn(context.Background(), "missing@x.com", "pw")
	requireErrCode(t, err, "invalid_credentials")
}

func TestSignIn_BadPassword_InvalidCredentials(t *testing.T) {
	t.Parallel()

	svc, ids, hasher, _ := newSvcForTest(t)
	ids.put(domain.User{ID: 1, ExternalID: "ext-1", Email: "e@x.com", PasswordHash: "hash:pw", Role: "CANDIDATE"})
	hasher.compareFn = func(hash, pw string) error { return errors.New("nope") }

	_, err := svc.SignIn(context.Background(), "e@x.com", "pw")
	requireErrCode(t, err, "invalid_credentials")
}

func TestSignIn_SignFail(t *testing.T) {
	t.Parallel()

	svc, ids, _, signer := newSvcForTest(t)
	ids.put(domain.User{ID: 1, ExternalID: "ext-1", Email: "e@x.com", PasswordHash: "hash:pw", Role: "CANDIDATE"})
	signer.signErr = errors.New("boom")

	_, err := svc.SignIn(context.Background(), "e@x.com", "pw")
	requireErrCode(t, err, "token_sign_failed")
}

func TestSignIn_Success_IssuesToken(t *testing.T) {
	t.Parallel()

	svc, ids, _, _ := newSvcForTest(t)
	ids.put(domain.User{ID: 1, ExternalID: "ext-1", Email: "e@x.com", PasswordHash: "hash:pw", Role: "RECRUITER"})

	res, err := svc.SignIn(context.Background(), "e@x.com", "pw")
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if res.Token != "token-for-ext-1" {
		t.Fatalf("unexpected token %q", res.Token)
	}
}
