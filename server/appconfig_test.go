package server

import (
	"testing"
	"time"
)

func TestAppConfigDefaults(t *testing.T) {
	cfg := &AppConfig{Env: "local"}

	if got := cfg.Addr(); got != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", got)
	}
	if got := cfg.TokenTTL(); got != time.Hour {
		t.Fatalf("expected default ttl 1h, got %v", got)
	}
	if len(cfg.SigningKey()) == 0 {
		t.Fatal("expected a local fallback signing key")
	}
}

func TestAppConfigOverrides(t *testing.T) {
	cfg := &AppConfig{
		Env:  "local",
		HTTP: HTTPConfig{Addr: ":9000"},
		JWT:  JWTConfig{Secret: "s3cret", TTL: "30m"},
	}

	if got := cfg.Addr(); got != ":9000" {
		t.Fatalf("expected :9000, got %q", got)
	}
	if got := cfg.TokenTTL(); got != 30*time.Minute {
		t.Fatalf("expected 30m, got %v", got)
	}
	if got := string(cfg.SigningKey()); got != "s3cret" {
		t.Fatalf("expected configured secret, got %q", got)
	}
}

func TestAppConfigInvalidTTL(t *testing.T) {
	cfg := &AppConfig{Env: "local", JWT: JWTConfig{TTL: "soon"}}
	if got := cfg.TokenTTL(); got != time.Hour {
		t.Fatalf("invalid ttl must fall back to 1h, got %v", got)
	}

	cfg = &AppConfig{Env: "local", JWT: JWTConfig{TTL: "-5m"}}
	if got := cfg.TokenTTL(); got != time.Hour {
		t.Fatalf("non-positive ttl must fall back to 1h, got %v", got)
	}
}
