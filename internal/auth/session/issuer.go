// Package session mints access and refresh tokens bound to a principal.
// Refresh issuance is atomic from the caller's perspective: the token string
// is only returned once its revocation entry has been registered.
package session

import (
	"context"
	"fmt"

	"github.com/webimagedrive/gallery/internal/auth/authctx"
	"github.com/webimagedrive/gallery/internal/auth/revocation"
	"github.com/webimagedrive/gallery/internal/auth/token"
)

// Issuer mints tokens via the codec and registers refresh tokens in the
// revocation store.
type Issuer struct {
	codec *token.Codec
	store revocation.Store
}

// NewIssuer creates a session issuer.
func NewIssuer(codec *token.Codec, store revocation.Store) *Issuer {
	return &Issuer{codec: codec, store: store}
}

// Access mints a stateless access token for the principal.
func (i *Issuer) Access(p authctx.Principal) (string, error) {
	claims, err := token.NewAccessClaims(p, i.codec.Config().AccessTokenTTL)
	if err != nil {
		return "", err
	}
	return i.codec.Encode(claims)
}

// Refresh mints a refresh token and registers its revocation entry. If the
// registration fails the token is not returned.
func (i *Issuer) Refresh(ctx context.Context, p authctx.Principal) (string, error) {
	claims, err := token.NewRefreshClaims(p, i.codec.Config().RefreshTokenTTL)
	if err != nil {
		return "", err
	}
	signed, err := i.codec.Encode(claims)
	if err != nil {
		return "", err
	}
	if err := i.store.Register(ctx, claims.ID, p.ID, claims.ExpiresAt.Time); err != nil {
		return "", fmt.Errorf("session: register refresh token: %w", err)
	}
	return signed, nil
}
