package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GALLERY_TOKEN_SECRET", "env-secret")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Token.Secret != "env-secret" {
		t.Errorf("expected secret from env, got %q", cfg.Token.Secret)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Token.AccessTokenTTL != 30*time.Minute {
		t.Errorf("expected default access TTL 30m, got %s", cfg.Token.AccessTokenTTL)
	}
	if cfg.Database.DSN != "gallery.db" {
		t.Errorf("expected default dsn, got %q", cfg.Database.DSN)
	}
}

func TestLoad_MissingSecretFails(t *testing.T) {
	t.Setenv("GALLERY_TOKEN_SECRET", "")

	if _, err := Load(""); err == nil {
		t.Error("missing token secret should fail validation")
	}
}

func TestLoad_YAMLFileWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yml")
	yaml := []byte(`
server:
  port: 9090
token:
  secret: file-secret
  access_token_ttl: 5m
`)
	if err := os.WriteFile(file, yaml, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GALLERY_TOKEN_SECRET", "override-secret")

	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port from file, got %d", cfg.Server.Port)
	}
	if cfg.Token.AccessTokenTTL != 5*time.Minute {
		t.Errorf("expected TTL from file, got %s", cfg.Token.AccessTokenTTL)
	}
	if cfg.Token.Secret != "override-secret" {
		t.Errorf("env must override file, got %q", cfg.Token.Secret)
	}
}
