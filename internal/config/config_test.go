package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/2beens/squashcoach/internal/coaching/analytics"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToml = `
[development]
environment = "development"
host = "localhost"
port = 9300
log_level = "trace"
cache_backend = "local"
cache_ttl = "30m"
default_language = "en"

[development.thresholds]
min_history_logs = 5
trend_delta = 1.0

[production]
environment = "production"
port = 8300
redis_host = "redis"
redis_port = "6379"
`

func TestParse(t *testing.T) {
	cfg, err := Parse("dev", testToml)
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, CacheBackendLocal, cfg.CacheBackend)
	assert.Equal(t, 30*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "en", cfg.DefaultLanguage)
	assert.Equal(t, 5, cfg.Thresholds.MinHistoryLogs)
	assert.Equal(t, 1.0, cfg.Thresholds.TrendDelta)
	assert.Equal(t, analytics.DefaultThresholds().RiskWindow, cfg.Thresholds.RiskWindow)

	cfg, err = Parse("production", testToml)
	require.NoError(t, err)
	assert.Equal(t, 8300, cfg.Port)
	assert.Equal(t, CacheBackendRedis, cfg.CacheBackend)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, "ko", cfg.DefaultLanguage)
	assert.Equal(t, 30, cfg.RateLimitPerMin)
	assert.Equal(t, analytics.DefaultThresholds(), cfg.Thresholds)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("staging", testToml)
	assert.Error(t, err)

	_, err = Parse("dev", `[production]
port = 1`)
	assert.Error(t, err)

	_, err = Parse("dev", `[development]
cache_backend = "memcached"`)
	assert.Error(t, err)

	_, err = Parse("dev", `not toml at all = = =`)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testToml), 0o600))

	cfg, err := Load("development", path)
	require.NoError(t, err)
	assert.Equal(t, 9300, cfg.Port)

	_, err = Load("development", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadSecrets(t *testing.T) {
	secrets, err := loadSecrets(context.Background(), envconfig.MapLookuper(map[string]string{
		"COACH_API_TOKEN":   "token",
		"HONEYCOMB_ENABLED": "true",
	}))
	require.NoError(t, err)
	assert.Equal(t, "token", secrets.APIToken)
	assert.True(t, secrets.HoneycombEnabled)
	assert.Equal(t, "postgres", secrets.PostgresUser)
	assert.Equal(t, "squashcoach", secrets.OtelServiceName)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("COACH_DOTENV_TEST_VALUE=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("COACH_DOTENV_TEST_VALUE") })

	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"), path))
	assert.Equal(t, "from-file", os.Getenv("COACH_DOTENV_TEST_VALUE"))
}
