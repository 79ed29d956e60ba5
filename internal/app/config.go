package app

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`
	AppShutdownGrace  time.Duration `envconfig:"APP_SHUTDOWN_GRACE" default:"10s"`
	AppRateLimit      int           `envconfig:"APP_RATE_LIMIT" default:"60"`
	AppTimezone       string        `envconfig:"APP_TIMEZONE" default:"Europe/London"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("app: load config: %w", err)
	}
	if cfg.AppRateLimit <= 0 {
		return nil, fmt.Errorf("app: APP_RATE_LIMIT must be positive, got %d", cfg.AppRateLimit)
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

// IsTest returns true under the test environment.
func (c *Config) IsTest() bool {
	return c != nil && c.AppEnv == "test"
}

// Location resolves AppTimezone, the zone "today" is read in.
func (c *Config) Location() (*time.Location, error) {
	if c == nil || c.AppTimezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.AppTimezone)
	if err != nil {
		return nil, fmt.Errorf("app: APP_TIMEZONE %q: %w", c.AppTimezone, err)
	}
	return loc, nil
}

func parseLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return slog.LevelInfo, fmt.Errorf("app: LOG_LEVEL %q: %w", raw, err)
	}
	return level, nil
}
