package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/webimagedrive/gallery/internal/auth/authctx"
)

// Type distinguishes access tokens from refresh tokens.
type Type string

const (
	// TypeAccess marks short-lived bearer tokens. Stateless: validity is
	// fully determined by signature and expiry.
	TypeAccess Type = "access"

	// TypeRefresh marks long-lived tokens paired with a revocation entry
	// keyed by their jti.
	TypeRefresh Type = "refresh"
)

// Claims is the payload carried inside a signed token. The jti lives in
// RegisteredClaims.ID and is set only on refresh tokens.
type Claims struct {
	gojwt.RegisteredClaims

	Role  string `json:"role"`
	Type  Type   `json:"type"`
	Nonce string `json:"nonce"`
}

// NewAccessClaims builds claims for an access token.
func NewAccessClaims(p authctx.Principal, ttl time.Duration) (*Claims, error) {
	nonce, err := randomHex(4)
	if err != nil {
		return nil, fmt.Errorf("token: generate nonce: %w", err)
	}
	now := time.Now()
	return &Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(p.ID), 10),
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(ttl)),
		},
		Role:  p.Role,
		Type:  TypeAccess,
		Nonce: nonce,
	}, nil
}

// NewRefreshClaims builds claims for a refresh token with a fresh jti.
func NewRefreshClaims(p authctx.Principal, ttl time.Duration) (*Claims, error) {
	jti, err := randomHex(8)
	if err != nil {
		return nil, fmt.Errorf("token: generate jti: %w", err)
	}
	nonce, err := randomHex(4)
	if err != nil {
		return nil, fmt.Errorf("token: generate nonce: %w", err)
	}
	now := time.Now()
	return &Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			ID:        jti,
			Subject:   strconv.FormatUint(uint64(p.ID), 10),
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(ttl)),
		},
		Role:  p.Role,
		Type:  TypeRefresh,
		Nonce: nonce,
	}, nil
}

// Principal extracts the principal identified by the claims.
func (c *Claims) Principal() (authctx.Principal, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return authctx.Principal{}, fmt.Errorf("token: invalid subject %q: %w", c.Subject, err)
	}
	return authctx.Principal{ID: uint(id), Role: c.Role}, nil
}

// randomHex returns n cryptographically secure random bytes hex-encoded.
func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
