package middleware

import "context"

type ctxKey string

const ctxIdentity ctxKey = "identity"

// Identity is the authenticated caller as seen by handlers.
type Identity struct {
	ExternalID string
	Name       string
	Email      string
	Role       string
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxIdentity, id)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	v, ok := ctx.Value(ctxIdentity).(Identity)
	return v, ok && v.ExternalID != ""
}
