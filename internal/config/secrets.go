package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Secrets are never kept in the config file.
type Secrets struct {
	APIToken         string `env:"COACH_API_TOKEN"`
	RedisPassword    string `env:"COACH_REDIS_PASS"`
	PostgresUser     string `env:"COACH_PG_USER, default=postgres"`
	PostgresPassword string `env:"COACH_PG_PASS"`
	SentryDSN        string `env:"SENTRY_DSN"`
	HoneycombEnabled bool   `env:"HONEYCOMB_ENABLED, default=false"`
	HoneycombAPIKey  string `env:"HONEYCOMB_API_KEY"`
	OtelServiceName  string `env:"OTEL_SERVICE_NAME, default=squashcoach"`
}

// LoadDotEnv loads variables from the given .env files into the process env.
// Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load env file [%s]: %w", p, err)
		}
	}
	return nil
}

func LoadSecrets(ctx context.Context) (*Secrets, error) {
	return loadSecrets(ctx, envconfig.OsLookuper())
}

func loadSecrets(ctx context.Context, lookuper envconfig.Lookuper) (*Secrets, error) {
	var s Secrets
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &s,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("process env secrets: %w", err)
	}
	return &s, nil
}
