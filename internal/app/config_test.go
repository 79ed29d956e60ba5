package app

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	unsetenv(t, "APP_ENV", "APP_ADDR", "APP_RATE_LIMIT", "APP_REQUEST_TIMEOUT", "LOG_LEVEL")
	t.Setenv("APP_TIMEZONE", "UTC")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, ":8080", cfg.AppAddr)
	require.Equal(t, 60, cfg.AppRateLimit)
	require.Equal(t, 30*time.Second, cfg.AppRequestTimeout)
	require.Equal(t, "info", cfg.LogLevel)
	require.False(t, cfg.IsProduction())

	loc, err := cfg.Location()
	require.NoError(t, err)
	require.Equal(t, time.UTC, loc)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("APP_RATE_LIMIT", "120")
	t.Setenv("APP_REQUEST_TIMEOUT", "5s")
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.True(t, cfg.IsProduction())
	require.Equal(t, ":9090", cfg.AppAddr)
	require.Equal(t, 120, cfg.AppRateLimit)
	require.Equal(t, 5*time.Second, cfg.AppRequestTimeout)

	level, err := parseLevel(cfg.LogLevel)
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, level)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	cases := map[string]map[string]string{
		"rate limit": {"APP_RATE_LIMIT": "0"},
		"timezone":   {"APP_TIMEZONE": "Mars/Olympus_Mons"},
		"log level":  {"LOG_LEVEL": "chatty"},
		"duration":   {"APP_READ_TIMEOUT": "soon"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("APP_TIMEZONE", "UTC")
			t.Setenv("LOG_LEVEL", "info")
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}

func TestConfigNilReceivers(t *testing.T) {
	var cfg *Config
	require.False(t, cfg.IsProduction())
	require.False(t, cfg.IsTest())
	loc, err := cfg.Location()
	require.NoError(t, err)
	require.Equal(t, time.UTC, loc)
}

// unsetenv clears keys for the test so envconfig falls back to defaults.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}
