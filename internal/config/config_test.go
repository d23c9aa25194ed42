package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "admin", cfg.Auth.AdminRole)
	assert.True(t, cfg.Swagger.Enabled)
	assert.True(t, cfg.IsLocal())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CATS_SERVER__PORT", "9090")
	t.Setenv("CATS_SERVER__READ_TIMEOUT", "2s")
	t.Setenv("CATS_LOG__FORMAT", "json")
	t.Setenv("CATS_DATABASE__DRIVER", "sqlite")
	t.Setenv("CATS_DATABASE__DSN", "file:cats.db")
	t.Setenv("CATS_DATABASE__MAX_OPEN_CONNS", "20")
	t.Setenv("CATS_SMOKETEST__USERNAME", "tester")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "file:cats.db", cfg.Database.DSN)
	assert.Equal(t, 1, cfg.Database.MaxOpenConns)
	assert.Equal(t, "tester", cfg.SmokeTest.Username)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("postgres without dsn", func(t *testing.T) {
		t.Setenv("CATS_DATABASE__DRIVER", "postgres")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("CATS_DATABASE__DRIVER", "oracle")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("verifier without api key", func(t *testing.T) {
		t.Setenv("CATS_AUTH__VERIFY_URL", "https://iam.example.com")
		_, err := Load()
		require.Error(t, err)
	})
}
