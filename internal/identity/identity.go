// Package identity carries the authenticated caller through a request context.
package identity

import "context"

// Identity is the authenticated user derived from a verified bearer token.
type Identity struct {
	UserID int64
}

type contextKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the identity stored in ctx and whether one was present.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok
}
