// Package token encodes and decodes the signed, expiring claims that make up
// bearer tokens. The codec is constructed from explicit configuration: the
// signing secret and algorithm are never read from ambient globals, so tests
// can run with per-test secrets.
package token

import (
	"errors"
	"fmt"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// ErrInvalid is returned for any token that fails decoding: bad signature,
// malformed string, wrong algorithm. Callers treat ErrInvalid and ErrExpired
// identically; the split exists only so logs can tell them apart.
var ErrInvalid = errors.New("token: invalid token")

// ErrExpired is returned for a well-formed token whose expiry has passed.
var ErrExpired = errors.New("token: expired token")

// Codec signs claims into compact token strings and verifies them back.
type Codec struct {
	cfg Config
}

// NewCodec creates a codec from configuration.
func NewCodec(cfg Config) (*Codec, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Codec{cfg: cfg}, nil
}

// Config returns a copy of the codec configuration. The issuer reads TTLs
// from here so they are configured in one place.
func (c *Codec) Config() Config {
	return c.cfg
}

// Encode serializes claims into a signed token string.
func (c *Codec) Encode(claims *Claims) (string, error) {
	tok := gojwt.NewWithClaims(c.cfg.signingMethod(), claims)
	signed, err := tok.SignedString([]byte(c.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Decode verifies signature and expiry and returns the claims. All failures
// map to ErrInvalid except a clean expiry, which maps to ErrExpired; both are
// rejections from the caller's point of view.
func (c *Codec) Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}
	tok, err := gojwt.ParseWithClaims(tokenString, claims, c.keyFunc,
		gojwt.WithValidMethods([]string{c.cfg.signingMethod().Alg()}))
	if err != nil {
		if errors.Is(err, gojwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if !tok.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}

// keyFunc rejects tokens whose header names a different algorithm than the
// one configured for this deployment.
func (c *Codec) keyFunc(tok *gojwt.Token) (interface{}, error) {
	if tok.Method.Alg() != c.cfg.signingMethod().Alg() {
		return nil, fmt.Errorf("token: unexpected signing method: %s", tok.Method.Alg())
	}
	return []byte(c.cfg.Secret), nil
}
