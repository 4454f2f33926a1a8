// Package password provides password hashing and verification.
//
// It defines a Hasher interface with two implementations:
//   - PBKDF2Hasher: pbkdf2-sha256 with a random per-call salt (default)
//   - BcryptHasher: industry-standard bcrypt hashing
//
// Usage:
//
//	hasher := password.NewPBKDF2Hasher()
//	hash, err := hasher.Hash("my-password")
//	err = hasher.Verify("my-password", hash)
package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

// Hasher defines the interface for password hashing and verification.
type Hasher interface {
	// Hash returns a salted, irreversible digest of the password.
	// The salt is random per call, so two hashes of the same password differ.
	Hash(password string) (string, error)

	// Verify checks if a password matches the given hash.
	// Returns nil if they match, an error otherwise. A malformed hash is
	// reported as a mismatch, never as a panic.
	Verify(password, hash string) error
}

// ErrMismatch is returned when a password does not match its hash.
var ErrMismatch = errors.New("password: invalid password")

// --- PBKDF2 Implementation ---

// PBKDF2Hasher implements Hasher using pbkdf2-sha256.
type PBKDF2Hasher struct {
	iterations int
	saltLen    int
	keyLen     int
}

// PBKDF2Option configures the pbkdf2 hasher.
type PBKDF2Option func(*PBKDF2Hasher)

// WithIterations sets the pbkdf2 iteration count (default: 29000).
func WithIterations(n int) PBKDF2Option {
	return func(h *PBKDF2Hasher) {
		if n > 0 {
			h.iterations = n
		}
	}
}

// NewPBKDF2Hasher creates a pbkdf2-sha256 password hasher.
func NewPBKDF2Hasher(opts ...PBKDF2Option) *PBKDF2Hasher {
	h := &PBKDF2Hasher{
		iterations: 29000,
		saltLen:    16,
		keyLen:     32,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *PBKDF2Hasher) Hash(password string) (string, error) {
	salt, err := randomBytes(h.saltLen)
	if err != nil {
		return "", fmt.Errorf("password: generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, h.iterations, h.keyLen, sha256.New)

	// Encoded as: $pbkdf2-sha256$i=ITERATIONS$SALT$KEY
	encoded := fmt.Sprintf("$pbkdf2-sha256$i=%d$%s$%s",
		h.iterations,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
	return encoded, nil
}

func (h *PBKDF2Hasher) Verify(password, encodedHash string) error {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 5 || parts[1] != "pbkdf2-sha256" {
		return ErrMismatch
	}

	var iterations int
	if _, err := fmt.Sscanf(parts[2], "i=%d", &iterations); err != nil || iterations < 1 {
		return ErrMismatch
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil {
		return ErrMismatch
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(expected) == 0 {
		return ErrMismatch
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, len(expected), sha256.New)

	if subtle.ConstantTimeCompare(key, expected) != 1 {
		return ErrMismatch
	}
	return nil
}

// --- Bcrypt Implementation ---

// BcryptHasher implements Hasher using bcrypt.
type BcryptHasher struct {
	cost int
}

// BcryptOption configures the bcrypt hasher.
type BcryptOption func(*BcryptHasher)

// WithCost sets the bcrypt cost parameter (default: 12, range: 4-31).
func WithCost(cost int) BcryptOption {
	return func(h *BcryptHasher) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			h.cost = cost
		}
	}
}

// NewBcryptHasher creates a bcrypt-based password hasher.
func NewBcryptHasher(opts ...BcryptOption) *BcryptHasher {
	h := &BcryptHasher{cost: 12}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	if len(password) > 72 {
		return "", errors.New("password: maximum length is 72 characters (bcrypt limit)")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("password: hash: %w", err)
	}
	return string(hash), nil
}

func (h *BcryptHasher) Verify(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrMismatch
	}
	return nil
}

// randomBytes returns cryptographically secure random bytes.
func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}
