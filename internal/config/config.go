// Package config loads service configuration from a YAML file with
// GALLERY_-prefixed environment overrides, optionally seeded from a .env
// file. Every section follows the ApplyDefaults/Validate convention.
package config

import (
	"fmt"

	"github.com/webimagedrive/gallery/internal/auth/password"
	"github.com/webimagedrive/gallery/internal/auth/token"
	"github.com/webimagedrive/gallery/internal/logger"
	"github.com/webimagedrive/gallery/internal/server"
)

// Config is the root service configuration.
type Config struct {
	Server   server.Config   `yaml:"server" mapstructure:"server"`
	Logging  logger.Config   `yaml:"logging" mapstructure:"logging"`
	Token    token.Config    `yaml:"token" mapstructure:"token"`
	Password password.Config `yaml:"password" mapstructure:"password"`
	Database DatabaseConfig  `yaml:"database" mapstructure:"database"`
	Redis    RedisConfig     `yaml:"redis" mapstructure:"redis"`
}

// DatabaseConfig configures the user store.
type DatabaseConfig struct {
	// DSN is the SQLite path, or ":memory:" for an ephemeral store.
	DSN string `yaml:"dsn" mapstructure:"dsn"`
}

// RedisConfig configures the optional Redis-backed revocation store.
// When Addr is empty the in-memory store is used instead.
type RedisConfig struct {
	Addr      string `yaml:"addr" mapstructure:"addr"`
	Password  string `yaml:"password" mapstructure:"password"`
	DB        int    `yaml:"db" mapstructure:"db"`
	KeyPrefix string `yaml:"key_prefix" mapstructure:"key_prefix"`
}

// ApplyDefaults fills in zero-value fields across all sections.
func (c *Config) ApplyDefaults() {
	c.Server.ApplyDefaults()
	c.Logging.ApplyDefaults()
	c.Token.ApplyDefaults()
	c.Password.ApplyDefaults()
	if c.Database.DSN == "" {
		c.Database.DSN = "gallery.db"
	}
	if c.Redis.KeyPrefix == "" {
		c.Redis.KeyPrefix = "refresh"
	}
}

// Validate checks all sections.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Token.Validate(); err != nil {
		return err
	}
	if err := c.Password.Validate(); err != nil {
		return fmt.Errorf("password: %w", err)
	}
	return nil
}
