package middleware

import (
	"net/http"
	"strings"

	"github.com/openhire/jobboard-service/internal/domain"
)

// RequireRole authorizes by explicit role set, not hierarchy: a route
// names exactly the roles that may call it. An empty set means any
// authenticated caller. Assumes Auth() already ran.
func RequireRole(writeErr WriteErrFunc, allowed ...domain.Role) func(http.Handler) http.Handler {
	names := make([]string, 0, len(allowed))
	for _, role := range allowed {
		names = append(names, string(role))
	}
	required := strings.Join(names, ",")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFromContext(r.Context())
			if !ok {
				// Auth middleware missing or ordering bug.
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			if !domain.RoleAllowed(id.Role, allowed...) {
				writeErr(w, r, domain.ErrInsufficientRole(required))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
