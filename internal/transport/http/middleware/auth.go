package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/openhire/jobboard-service/internal/application/auth"
	"github.com/openhire/jobboard-service/internal/domain"
)

type TokenVerifier interface {
	VerifyAccessToken(token string) (auth.TokenClaims, error)
}

// UserValidator re-resolves a verified token against the identity store
// so deleted accounts stop authenticating even with a live token.
type UserValidator interface {
	ValidateUser(ctx context.Context, claims auth.TokenClaims) (domain.User, error)
}

type WriteErrFunc func(http.ResponseWriter, *http.Request, error)

// Auth verifies Authorization: Bearer <access_token>, resolves the
// subject to a live account, and injects the identity into the request
// context.
func Auth(verifier TokenVerifier, users UserValidator, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" {
				writeErr(w, r, domain.ErrTokenMissing())
				return
			}

			parts := strings.SplitN(h, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			raw := strings.TrimSpace(parts[1])
			if raw == "" {
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			claims, err := verifier.VerifyAccessToken(raw)
			if err != nil {
				writeErr(w, r, err)
				return
			}

			if strings.TrimSpace(claims.Subject) == "" {
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			u, err := users.ValidateUser(r.Context(), claims)
			if err != nil {
				writeErr(w, r, err)
				return
			}

			ctx := WithIdentity(r.Context(), Identity{
				ExternalID: u.ExternalID,
				Name:       u.Name,
				Email:      u.Email,
				Role:       u.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
