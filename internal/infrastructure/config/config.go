// Package config loads runtime configuration from environment variables.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT      JWTConfig
	Provider ProviderConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

// JWTConfig drives session token issuance. Secret has no default on purpose:
// the process must not start without one.
type JWTConfig struct {
	Secret     string        `env:"JWT_SECRET, required"`
	Issuer     string        `env:"JWT_ISSUER, default=reading-tracker"`
	TTL        time.Duration `env:"JWT_TTL,    default=24h"`
	CookieName string        `env:"JWT_COOKIE_NAME, default=reading_session"`
}

// ProviderConfig verifies assertions minted by the external identity provider.
type ProviderConfig struct {
	JWTSecret string `env:"PROVIDER_JWT_SECRET, required"`
	Audience  string `env:"PROVIDER_AUDIENCE,   default=authenticated"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=reading_tracker"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
