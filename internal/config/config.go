// Package config loads server and CLI settings: built-in defaults, then an
// optional YAML file, then environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bauermateus/Bill-Splitter-App/internal/form"
)

// Config holds every tunable of the billsplit binary.
type Config struct {
	// Addr is the listen address of the RPC server.
	Addr string `yaml:"addr"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// JWTSecret signs and verifies bearer tokens. Empty disables auth.
	JWTSecret string `yaml:"jwt_secret"`

	// TokenDuration is how long minted tokens stay valid.
	TokenDuration time.Duration `yaml:"token_duration"`

	// SessionTTL is how long an idle form session survives.
	SessionTTL time.Duration `yaml:"session_ttl"`

	// SweepInterval is how often idle sessions are collected.
	SweepInterval time.Duration `yaml:"sweep_interval"`

	// Validation is the form validation policy: numeric or non_empty.
	Validation string `yaml:"validation"`

	// CORSOrigin is sent as Access-Control-Allow-Origin to browser clients.
	CORSOrigin string `yaml:"cors_origin"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Addr:          ":8080",
		LogLevel:      "info",
		TokenDuration: 24 * time.Hour,
		SessionTTL:    30 * time.Minute,
		SweepInterval: time.Minute,
		Validation:    string(form.ValidateNumeric),
		CORSOrigin:    "*",
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Addr = getEnv("BILLSPLIT_ADDR", c.Addr)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)
	c.Validation = getEnv("VALIDATION", c.Validation)
	c.CORSOrigin = getEnv("CORS_ORIGIN", c.CORSOrigin)

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"TOKEN_DURATION", &c.TokenDuration},
		{"SESSION_TTL", &c.SessionTTL},
		{"SWEEP_INTERVAL", &c.SweepInterval},
	}
	for _, d := range durations {
		value := os.Getenv(d.key)
		if value == "" {
			continue
		}
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", d.key, err)
		}
		*d.dst = parsed
	}
	return nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if _, err := form.ParseValidation(c.Validation); err != nil {
		return err
	}
	if c.CORSOrigin == "" {
		return errors.New("cors_origin must not be empty")
	}
	if c.TokenDuration <= 0 {
		return errors.New("token_duration must be positive")
	}
	if c.SessionTTL <= 0 {
		return errors.New("session_ttl must be positive")
	}
	if c.SweepInterval <= 0 {
		return errors.New("sweep_interval must be positive")
	}
	return nil
}

// FormValidation returns the parsed validation policy. Call it on a
// validated Config.
func (c Config) FormValidation() form.Validation {
	v, err := form.ParseValidation(c.Validation)
	if err != nil {
		return form.ValidateNumeric
	}
	return v
}

// AuthEnabled reports whether bearer tokens are required.
func (c Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
