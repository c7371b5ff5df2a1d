package http

import (
	"context"

	"secondserve-backend/internal/domain"
)

type principalKey struct{}

// WithPrincipal attaches the resolved session principal to the request
// context. Guarded operations read it from here instead of any shared
// mutable state.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the principal attached by the auth middleware,
// if any.
func PrincipalFrom(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(domain.Principal)
	return p, ok
}
