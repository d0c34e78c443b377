package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"ARBITER_CONFIG", "LISTEN_ADDR", "REDIS_URL",
		"DATABASE_URL", "MATCH_TTL_SECONDS", "INITIAL_ADMIN",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("listen addr = %q", cfg.ListenAddr)
	}
	if cfg.RedisURL != "" || cfg.DatabaseURL != "" || cfg.InitialAdmin != "" {
		t.Fatalf("unexpected non-empty defaults: %+v", cfg)
	}
	if cfg.MatchTTL() != 0 {
		t.Fatalf("match ttl = %v, want 0", cfg.MatchTTL())
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("REDIS_URL", "redis://localhost:6379/1")
	t.Setenv("MATCH_TTL_SECONDS", "3600")
	t.Setenv("INITIAL_ADMIN", "peach")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":9090" {
		t.Fatalf("listen addr = %q", cfg.ListenAddr)
	}
	if cfg.RedisURL != "redis://localhost:6379/1" {
		t.Fatalf("redis url = %q", cfg.RedisURL)
	}
	if cfg.MatchTTL() != time.Hour {
		t.Fatalf("match ttl = %v", cfg.MatchTTL())
	}
	if cfg.InitialAdmin != "peach" {
		t.Fatalf("initial admin = %q", cfg.InitialAdmin)
	}
}

func TestLoadFromFileWithEnvOverride(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "arbiter.yaml")
	raw := []byte("listen_addr: \":7070\"\nredis_url: \"redis://file:6379\"\nmatch_ttl_seconds: 60\n")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("ARBITER_CONFIG", path)
	t.Setenv("REDIS_URL", "redis://env:6379")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":7070" {
		t.Fatalf("listen addr = %q, want file value", cfg.ListenAddr)
	}
	if cfg.RedisURL != "redis://env:6379" {
		t.Fatalf("redis url = %q, env must win over file", cfg.RedisURL)
	}
	if cfg.MatchTTLSeconds != 60 {
		t.Fatalf("match ttl seconds = %d", cfg.MatchTTLSeconds)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("MATCH_TTL_SECONDS", "soon")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-numeric ttl")
	}

	clearConfigEnv(t)
	t.Setenv("MATCH_TTL_SECONDS", "-5")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative ttl")
	}

	clearConfigEnv(t)
	t.Setenv("ARBITER_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
