package config

import (
	"testing"
	"time"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_ADDR", "postgres://localhost/jobboard")
	t.Setenv("ENV", "dev")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.HTTPAddr)
	}
	if cfg.JWTIssuer != "jobboard-service" {
		t.Fatalf("expected default issuer, got %q", cfg.JWTIssuer)
	}
	if cfg.AccessTokenTTL != 15*time.Minute {
		t.Fatalf("expected default TTL, got %v", cfg.AccessTokenTTL)
	}
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_ADDR", "postgres://localhost/jobboard")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing JWT_SECRET")
	}
}

func TestLoad_MissingDBAddr(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_ADDR", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing DB_ADDR")
	}
}

func TestLoad_RabbitRequiredOutsideDev(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("ENV", "prod")
	t.Setenv("RABBIT_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error: RABBIT_URL is required outside dev")
	}

	t.Setenv("RABBIT_URL", "amqp://localhost")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RabbitURL != "amqp://localhost" {
		t.Fatalf("unexpected rabbit url %q", cfg.RabbitURL)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("ACCESS_TOKEN_TTL", "soon")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}

func TestLoad_RedisOptional(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("REDIS_ADDR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RedisAddr != "" {
		t.Fatalf("expected empty redis addr")
	}
}
