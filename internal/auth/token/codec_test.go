package token

import (
	"errors"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/webimagedrive/gallery/internal/auth/authctx"
)

func testCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := NewCodec(Config{Secret: "test-secret"})
	if err != nil {
		t.Fatalf("NewCodec failed: %v", err)
	}
	return c
}

func TestCodec_EncodeDecode_Access(t *testing.T) {
	c := testCodec(t)
	p := authctx.Principal{ID: 42, Role: "user"}

	claims, err := NewAccessClaims(p, 30*time.Minute)
	if err != nil {
		t.Fatalf("NewAccessClaims failed: %v", err)
	}
	tok, err := c.Encode(claims)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded, err := c.Decode(tok)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded.Type != TypeAccess {
		t.Errorf("expected type access, got %s", decoded.Type)
	}
	if decoded.ID != "" {
		t.Errorf("access tokens must not carry a jti, got %q", decoded.ID)
	}
	got, err := decoded.Principal()
	if err != nil {
		t.Fatalf("Principal failed: %v", err)
	}
	if got != p {
		t.Errorf("expected principal %+v, got %+v", p, got)
	}
}

func TestCodec_EncodeDecode_Refresh(t *testing.T) {
	c := testCodec(t)
	p := authctx.Principal{ID: 7, Role: "admin"}

	claims, err := NewRefreshClaims(p, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("NewRefreshClaims failed: %v", err)
	}
	if len(claims.ID) != 16 {
		t.Errorf("expected 8-byte hex jti (16 chars), got %q", claims.ID)
	}

	tok, err := c.Encode(claims)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, err := c.Decode(tok)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded.Type != TypeRefresh {
		t.Errorf("expected type refresh, got %s", decoded.Type)
	}
	if decoded.ID != claims.ID {
		t.Errorf("jti mismatch: %q vs %q", decoded.ID, claims.ID)
	}
}

func TestClaims_NonceMakesTokensDistinct(t *testing.T) {
	c := testCodec(t)
	p := authctx.Principal{ID: 1, Role: "user"}

	c1, err := NewAccessClaims(p, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	c2, err := NewAccessClaims(p, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	t1, err := c.Encode(c1)
	if err != nil {
		t.Fatal(err)
	}
	t2, err := c.Encode(c2)
	if err != nil {
		t.Fatal(err)
	}
	if t1 == t2 {
		t.Error("tokens for the same principal must differ via nonce")
	}
}

func TestCodec_Decode_Tampered(t *testing.T) {
	c := testCodec(t)
	p := authctx.Principal{ID: 1, Role: "user"}
	claims, _ := NewAccessClaims(p, time.Minute)
	tok, err := c.Encode(claims)
	if err != nil {
		t.Fatal(err)
	}

	cases := map[string]string{
		"truncated":    tok[:len(tok)-10],
		"garbage":      "not.a.token",
		"empty":        "",
		"flipped byte": tok[:len(tok)-1] + flip(tok[len(tok)-1]),
	}
	for name, bad := range cases {
		if _, err := c.Decode(bad); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: expected ErrInvalid, got %v", name, err)
		}
	}
}

func TestCodec_Decode_WrongSecret(t *testing.T) {
	c := testCodec(t)
	other, err := NewCodec(Config{Secret: "other-secret"})
	if err != nil {
		t.Fatal(err)
	}
	claims, _ := NewAccessClaims(authctx.Principal{ID: 1, Role: "user"}, time.Minute)
	tok, err := c.Encode(claims)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := other.Decode(tok); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for wrong secret, got %v", err)
	}
}

func TestCodec_Decode_Expired(t *testing.T) {
	c := testCodec(t)
	claims, err := NewAccessClaims(authctx.Principal{ID: 1, Role: "user"}, -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	tok, err := c.Encode(claims)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Decode(tok); !errors.Is(err, ErrExpired) {
		t.Errorf("expected ErrExpired, got %v", err)
	}
}

func TestCodec_Decode_WrongAlgorithm(t *testing.T) {
	c := testCodec(t)
	// Sign with HS512 while the codec expects HS256.
	claims, _ := NewAccessClaims(authctx.Principal{ID: 1, Role: "user"}, time.Minute)
	tok := gojwt.NewWithClaims(gojwt.SigningMethodHS512, claims)
	signed, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Decode(signed); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for wrong algorithm, got %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Error("missing secret should fail validation")
	}

	cfg = Config{Secret: "s", Method: "RS256"}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Error("unsupported method should fail validation")
	}

	cfg = Config{Secret: "s"}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config with secret should validate: %v", err)
	}
	if cfg.AccessTokenTTL != 30*time.Minute {
		t.Errorf("expected default access TTL 30m, got %s", cfg.AccessTokenTTL)
	}
	if cfg.RefreshTokenTTL != 7*24*time.Hour {
		t.Errorf("expected default refresh TTL 168h, got %s", cfg.RefreshTokenTTL)
	}
}

// flip returns a base64url character guaranteed to differ from b.
func flip(b byte) string {
	if b == 'A' {
		return "B"
	}
	return "A"
}
