package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "PORT", "MONGODB_URI", "MONGODB_DATABASE", "MONGODB_COLLECTION", "VIEWS_DIR", "PUBLIC_DIR", "RABBITMQ_URL", "AMQP_URL"} {
		t.Setenv(k, "")
	}
	chdir(t, t.TempDir())

	cfg := Load()
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "moviecatalog", cfg.MongoDB)
	assert.Equal(t, "movies", cfg.Collection)
	assert.Equal(t, "web/views", cfg.ViewsDir)
	assert.Equal(t, "web/public", cfg.PublicDir)
	assert.Empty(t, cfg.RabbitMQURL)
	assert.False(t, cfg.IsProd())
}

func TestLoadOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("RABBITMQ_URL", "")
	t.Setenv("AMQP_URL", "amqp://example:5672/")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProd())
	assert.Equal(t, "amqp://example:5672/", cfg.RabbitMQURL)
}

func TestLoadRateLimitConfigClamps(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "yes")
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := LoadRateLimitConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 1, cfg.Capacity)
	assert.Equal(t, 2*time.Second, cfg.RefillInterval)
	assert.Equal(t, 10*time.Second, cfg.TTL)
	assert.Equal(t, "ip_route", cfg.KeyStrategy)
}

func TestLoadRedisConfigHostPortWins(t *testing.T) {
	t.Setenv("REDIS_ADDR", "cache:1")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("REDIS_TLS", "1")

	cfg := LoadRedisConfig()
	assert.Equal(t, "redis:6380", cfg.Addr)
	assert.True(t, cfg.TLS)
}

func TestRedisTLSVerifiesByDefault(t *testing.T) {
	t.Setenv("REDIS_TLS", "true")
	t.Setenv("REDIS_TLS_INSECURE", "")

	cfg := LoadRedisConfig()
	require.NotNil(t, cfg.tlsConfig())
	assert.False(t, cfg.tlsConfig().InsecureSkipVerify)

	t.Setenv("REDIS_TLS_INSECURE", "true")
	assert.True(t, LoadRedisConfig().tlsConfig().InsecureSkipVerify)

	t.Setenv("REDIS_TLS", "false")
	assert.Nil(t, LoadRedisConfig().tlsConfig())
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
