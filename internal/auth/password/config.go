package password

import "fmt"

// Algorithm represents supported password hashing algorithms.
type Algorithm string

const (
	// AlgorithmPBKDF2 is pbkdf2-sha256 hashing (default).
	AlgorithmPBKDF2 Algorithm = "pbkdf2-sha256"

	// AlgorithmBcrypt is bcrypt hashing.
	AlgorithmBcrypt Algorithm = "bcrypt"
)

// Config configures password hashing behavior.
// Loadable from YAML/env via mapstructure tags.
type Config struct {
	// Algorithm selects the hashing algorithm (default: "pbkdf2-sha256").
	Algorithm Algorithm `yaml:"algorithm" mapstructure:"algorithm"`

	// PBKDF2Iterations is the iteration count for pbkdf2 (default: 29000).
	PBKDF2Iterations int `yaml:"pbkdf2_iterations" mapstructure:"pbkdf2_iterations"`

	// BcryptCost is the bcrypt cost parameter (default: 12, range: 4-31).
	BcryptCost int `yaml:"bcrypt_cost" mapstructure:"bcrypt_cost"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Algorithm == "" {
		c.Algorithm = AlgorithmPBKDF2
	}
	if c.PBKDF2Iterations == 0 {
		c.PBKDF2Iterations = 29000
	}
	if c.BcryptCost == 0 {
		c.BcryptCost = 12
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	switch c.Algorithm {
	case AlgorithmPBKDF2, AlgorithmBcrypt:
	default:
		return fmt.Errorf("unsupported algorithm: %s (use pbkdf2-sha256 or bcrypt)", c.Algorithm)
	}
	if c.PBKDF2Iterations < 1000 {
		return fmt.Errorf("pbkdf2_iterations must be >= 1000 (got: %d)", c.PBKDF2Iterations)
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("bcrypt_cost must be between 4 and 31 (got: %d)", c.BcryptCost)
	}
	return nil
}

// NewHasher creates a Hasher from configuration.
func NewHasher(cfg Config) Hasher {
	cfg.ApplyDefaults()
	switch cfg.Algorithm {
	case AlgorithmBcrypt:
		return NewBcryptHasher(WithCost(cfg.BcryptCost))
	default:
		return NewPBKDF2Hasher(WithIterations(cfg.PBKDF2Iterations))
	}
}
