// Package config loads service configuration. Values come from an optional
// YAML file first, then environment variables on top, so deployments can
// keep a checked-in baseline and override per environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	ListenAddr  string `yaml:"listen_addr"`
	RedisURL    string `yaml:"redis_url"`
	DatabaseURL string `yaml:"database_url"`

	// MatchTTLSeconds bounds how long an in-progress match survives in the
	// registry without a move.
	MatchTTLSeconds int `yaml:"match_ttl_seconds"`

	// InitialAdmin seeds the admin record the first time the service boots
	// against an empty store.
	InitialAdmin string `yaml:"initial_admin"`
}

// MatchTTL returns the registry TTL as a duration; zero means "use the
// store default".
func (c *AppConfig) MatchTTL() time.Duration {
	return time.Duration(c.MatchTTLSeconds) * time.Second
}

// Load builds the configuration. The YAML file named by ARBITER_CONFIG (if
// any) is applied first, then individual environment variables.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		ListenAddr: ":8080",
	}

	if path := strings.TrimSpace(os.Getenv("ARBITER_CONFIG")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if v := strings.TrimSpace(os.Getenv("LISTEN_ADDR")); v != "" {
		cfg.ListenAddr = v
	}
	if v := strings.TrimSpace(os.Getenv("REDIS_URL")); v != "" {
		cfg.RedisURL = v
	}
	if v := strings.TrimSpace(os.Getenv("DATABASE_URL")); v != "" {
		cfg.DatabaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("MATCH_TTL_SECONDS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid MATCH_TTL_SECONDS %q", v)
		}
		cfg.MatchTTLSeconds = n
	}
	if v := strings.TrimSpace(os.Getenv("INITIAL_ADMIN")); v != "" {
		cfg.InitialAdmin = v
	}

	if strings.TrimSpace(cfg.ListenAddr) == "" {
		return nil, fmt.Errorf("listen address is required")
	}

	return cfg, nil
}
