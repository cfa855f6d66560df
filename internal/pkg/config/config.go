package config

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
)

// Config is the immutable process-wide configuration. It is loaded once in
// main and injected into every component that needs it; nothing reads the
// environment after startup.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SessionTokenKey signs 3-day session tokens; TransactionTokenKey signs
	// 1-hour transaction tokens. They must differ so the two token types are
	// never interchangeable.
	SessionTokenKey     string `env:"TOKEN_KEY"`
	TransactionTokenKey string `env:"TX_TOKEN_KEY"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=holdings"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// IsProduction reports whether the process runs in a production-like
// environment (controls the session cookie Secure flag and key fallback).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables and resolves the
// signing keys. In production a missing key is a startup error. Elsewhere a
// random key is generated once for the process lifetime, with a loud warning:
// every restart then invalidates all outstanding tokens of that type.
func Load(ctx context.Context, log zerolog.Logger) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var err error
	if cfg.SessionTokenKey, err = resolveKey(cfg.SessionTokenKey, "TOKEN_KEY", &cfg, log); err != nil {
		return nil, err
	}
	if cfg.TransactionTokenKey, err = resolveKey(cfg.TransactionTokenKey, "TX_TOKEN_KEY", &cfg, log); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func resolveKey(key, name string, cfg *Config, log zerolog.Logger) (string, error) {
	if key != "" {
		return key, nil
	}
	if cfg.IsProduction() {
		return "", fmt.Errorf("config: %s must be set in production", name)
	}

	generated, err := generateKey()
	if err != nil {
		return "", fmt.Errorf("config: generate fallback %s: %w", name, err)
	}
	log.Warn().
		Str("key", name).
		Msg("signing key not configured, generated a random key for this process; restarting will invalidate all outstanding tokens")
	return generated, nil
}

// generateKey returns 32 random bytes, hex-encoded.
func generateKey() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
