// Package revocation tracks the liveness of refresh tokens. Every issued
// refresh token has exactly one entry, keyed by its jti, until it is revoked
// or expires. Stores are injected into the gateway at construction so tests
// run against isolated instances.
package revocation

import (
	"context"
	"time"
)

// Entry is the server-side record paired with a refresh token.
type Entry struct {
	TokenID   string    `json:"token_id"`
	UserID    uint      `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store is the liveness registry for refresh tokens.
//
// Concurrency contract: operations on distinct token ids never interfere;
// operations on the same token id are linearizable. A revoke completed in
// real time before an IsLive call must not be observed as live.
type Store interface {
	// Register inserts or overwrites the entry for tokenID.
	Register(ctx context.Context, tokenID string, userID uint, expiresAt time.Time) error

	// IsLive reports whether an entry exists and has not expired.
	IsLive(ctx context.Context, tokenID string) (bool, error)

	// Revoke removes the entry. Revoking an unknown id is a no-op.
	Revoke(ctx context.Context, tokenID string) error
}
