package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concierge/config"
)

func writeEnv(t *testing.T, body string) string {
	t.Helper()

	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte(body), 0o600))

	return file
}

func TestLoad(t *testing.T) {
	t.Run("defaults fill the gaps", func(t *testing.T) {
		t.Setenv("JWT_ACCESS_SECRET", "front-desk")
		t.Setenv("JWT_REFRESH_SECRET", "night-audit")

		cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "5432", cfg.DB.Postgres.Write.Port)
		assert.Equal(t, 600, cfg.Cache.TTL)
		assert.Equal(t, 60, cfg.JWT.AccessExpireMin)
		assert.Equal(t, "service-requests", cfg.Kafka.Topics.ServiceRequest)
		assert.Equal(t, "000", cfg.Guest.DefaultRoomNumber)
	})

	t.Run("env file and nested names", func(t *testing.T) {
		t.Setenv("JWT_ACCESS_SECRET", "front-desk")
		t.Setenv("JWT_REFRESH_SECRET", "night-audit")
		// restored on cleanup; unset so the file can fill them
		for _, key := range []string{"CACHE_REDIS_PRIMARY_PORT", "KAFKA_BROKERS"} {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}

		file := writeEnv(t, "CACHE_REDIS_PRIMARY_PORT=6380\nKAFKA_BROKERS=k1:9092,k2:9092\n")

		cfg, err := config.Load(file)
		require.NoError(t, err)

		assert.Equal(t, "6380", cfg.Cache.Redis.Primary.Port)
		assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	})

	t.Run("missing secrets", func(t *testing.T) {
		t.Setenv("JWT_ACCESS_SECRET", "")
		t.Setenv("JWT_REFRESH_SECRET", "")

		_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorContains(t, err, "JWT_ACCESS_SECRET")
	})

	t.Run("shared secret", func(t *testing.T) {
		t.Setenv("JWT_ACCESS_SECRET", "same")
		t.Setenv("JWT_REFRESH_SECRET", "same")

		_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorContains(t, err, "different secrets")
	})
}

func TestValidate_RateLimiter(t *testing.T) {
	cfg := config.Config{}
	cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret = "a", "b"
	cfg.JWT.AccessExpireMin, cfg.JWT.RefreshExpireMin = 15, 60
	cfg.App.RateLimiter.Enable = true

	assert.ErrorContains(t, cfg.Validate(), "rate limiter")

	cfg.App.RateLimiter.MaxRequests, cfg.App.RateLimiter.WindowSeconds = 100, 60
	assert.NoError(t, cfg.Validate())
}
