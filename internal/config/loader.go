package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for environment overrides, e.g.
// GALLERY_TOKEN_SECRET overrides token.secret.
const envPrefix = "GALLERY"

// Load reads configuration from the given YAML file (optional) and the
// environment, applies defaults and validates the result. A .env file in the
// working directory is loaded first if present.
func Load(configFile string) (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("config: load .env: %w", err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	// Bind the keys viper only discovers through the config file, so env
	// overrides work even without one.
	for _, key := range []string{
		"server.host", "server.port",
		"logging.level", "logging.format",
		"token.secret", "token.method", "token.access_token_ttl", "token.refresh_token_ttl",
		"password.algorithm", "password.pbkdf2_iterations", "password.bcrypt_cost",
		"database.dsn",
		"redis.addr", "redis.password", "redis.db", "redis.key_prefix",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
