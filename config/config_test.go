package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		key := key
		prev, ok := os.LookupEnv(key)
		os.Unsetenv(key)
		if ok {
			t.Cleanup(func() { os.Setenv(key, prev) })
		}
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	unsetEnv(t, "APP_PORT", "APP_MODE", "LOG_MODE", "SHUTDOWN_TIMEOUT_SEC",
		"MONGO_URI", "MONGO_DATABASE", "MONGO_CONNECT_TIMEOUT_SEC",
		"REDIS_ENABLED", "REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB", "REDIS_CHANNEL_PREFIX")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "debug", cfg.AppMode)
	assert.Equal(t, "development", cfg.LogMode)
	assert.Equal(t, 5, cfg.ShutdownTimeoutSec)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "chatter", cfg.Mongo.Database)
	assert.Equal(t, 10, cfg.Mongo.ConnectTimeoutSec)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, "6379", cfg.Redis.Port)
	assert.Equal(t, "chatter:", cfg.Redis.ChannelPrefix)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_MODE", "release")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("MONGO_DATABASE", "chatter_test")
	t.Setenv("MONGO_CONNECT_TIMEOUT_SEC", "3")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_DB", "2")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "release", cfg.AppMode)
	assert.Equal(t, "mongodb://db:27017", cfg.Mongo.URI)
	assert.Equal(t, "chatter_test", cfg.Mongo.Database)
	assert.Equal(t, 3, cfg.Mongo.ConnectTimeoutSec)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestGetEnv_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT_SEC", "soon")
	t.Setenv("REDIS_ENABLED", "maybe")

	assert.Equal(t, 5, getEnvAsInt("SHUTDOWN_TIMEOUT_SEC", 5))
	assert.False(t, getEnvAsBool("REDIS_ENABLED", false))
}
