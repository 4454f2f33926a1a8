// Package authctx carries the authenticated principal through request context.
//
// A single unexported key type keeps the value from colliding with other
// packages; handlers retrieve the principal with FromContext after the
// authentication middleware has run.
package authctx

import (
	"context"
	"errors"
)

// Principal is the authenticated identity attached to a request.
// It is immutable once a token has been issued for it.
type Principal struct {
	ID   uint   `json:"id"`
	Role string `json:"role"`
}

// contextKey is an unexported type to prevent collisions with other packages.
type contextKey struct{}

var principalKey = contextKey{}

// ErrNoPrincipal is returned when no principal is present in the context.
var ErrNoPrincipal = errors.New("authctx: no principal in context")

// WithPrincipal stores the principal in the context.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// FromContext retrieves the principal from the context.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}

// MustFromContext retrieves the principal, panicking if absent. Use only in
// handlers that run strictly behind the authentication middleware.
func MustFromContext(ctx context.Context) Principal {
	p, ok := FromContext(ctx)
	if !ok {
		panic("authctx: principal not found in context")
	}
	return p
}
