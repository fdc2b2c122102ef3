package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_HOST", "APP_PORT", "FRONTEND_URL", "DATABASE_DRIVER", "DATABASE_DSN",
		"REDIS_ADDR", "NATS_URL", "RATE_LIMIT_PER_MINUTE", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:3000", cfg.AppURL)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.FrontendURLs)
	assert.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	assert.Equal(t, "tasks.db", cfg.DatabaseDSN)
	assert.Empty(t, cfg.RedisAddr)
	assert.Empty(t, cfg.NatsURL)
	assert.Equal(t, 120, cfg.RateLimit)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FrontendList(t *testing.T) {
	t.Setenv("FRONTEND_URL", "http://a.test, http://b.test ,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.FrontendURLs)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string][2]string{
		"non numeric port": {"APP_PORT", "abc"},
		"port range":       {"APP_PORT", "70000"},
		"driver":           {"DATABASE_DRIVER", "mysql"},
		"rate limit":       {"RATE_LIMIT_PER_MINUTE", "0"},
		"log level":        {"LOG_LEVEL", "verbose"},
		"shutdown timeout": {"SHUTDOWN_TIMEOUT_SECONDS", "-1"},
	}

	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
