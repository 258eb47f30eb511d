package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/squashcoach/internal/coaching/analytics"

	"github.com/BurntSushi/toml"
)

const (
	CacheBackendRedis = "redis"
	CacheBackendLocal = "local"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	MetricsPort int    `toml:"metrics_port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// analysis cache
	CacheBackend     string        `toml:"cache_backend"`
	CacheTTL         time.Duration `toml:"cache_ttl"`
	LocalCacheSizeMB int           `toml:"local_cache_size_mb"`
	// coaching
	DefaultLanguage string               `toml:"default_language"`
	HistoryLimit    int                  `toml:"history_limit"`
	MemoLimit       int                  `toml:"memo_limit"`
	RateLimitPerMin int                  `toml:"rate_limit_per_min"`
	AllowedOrigins  []string             `toml:"allowed_origins"`
	Thresholds      analytics.Thresholds `toml:"thresholds"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file at path and returns the config for env with defaults applied.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}
	return fromToml(&t, env)
}

// Parse is Load for in-memory TOML.
func Parse(env, data string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(data, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return fromToml(&t, env)
}

func fromToml(t *Toml, env string) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] missing", env)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9300
	}
	if c.MetricsPort == 0 {
		c.MetricsPort = 2113
	}
	if c.CacheBackend == "" {
		c.CacheBackend = CacheBackendRedis
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = time.Hour
	}
	if c.DefaultLanguage == "" {
		c.DefaultLanguage = "ko"
	}
	if c.HistoryLimit == 0 {
		c.HistoryLimit = 365
	}
	if c.MemoLimit == 0 {
		c.MemoLimit = 200
	}
	if c.RateLimitPerMin == 0 {
		c.RateLimitPerMin = 30
	}
	c.Thresholds = analytics.DefaultThresholds().Merge(c.Thresholds)
}

func (c *Config) validate() error {
	switch c.CacheBackend {
	case CacheBackendRedis, CacheBackendLocal:
	default:
		return fmt.Errorf("unknown cache backend: %s", c.CacheBackend)
	}
	if c.CacheTTL < 0 {
		return errors.New("cache ttl must not be negative")
	}
	return nil
}
