package response

import (
	"net/http"

	appctx "github.com/openhire/jobboard-service/internal/pkg/context"
)

// RequestIDFromContext returns the request id attached by the request-id
// middleware, or "" when the middleware is not installed.
func RequestIDFromContext(r *http.Request) string {
	return appctx.GetRequestID(r.Context())
}
