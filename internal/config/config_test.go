package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		// Given: an empty config file
		path := writeConfig(t, "{}\n")

		// When: loading it
		conf := MustLoad(path)

		// Then: every field holds its default
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, 500*time.Millisecond, conf.ComputerDelay)
		assert.Equal(t, StorageMemory, conf.Storage.Driver)
		assert.Equal(t, "ticTacToeGameState", conf.Storage.Key)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Values from file", func(t *testing.T) {
		// Given: a config file with redis storage
		path := writeConfig(t, `
log-level: debug
http-port: "8081"
computer-delay: 1s
storage:
  driver: redis
  key: series
redis:
  host: cache
  port: "6380"
`)

		// When: loading it
		conf := MustLoad(path)

		// Then: the file values win over the defaults
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8081", conf.HTTPPort)
		assert.Equal(t, time.Second, conf.ComputerDelay)
		assert.Equal(t, StorageRedis, conf.Storage.Driver)
		assert.Equal(t, "series", conf.Storage.Key)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Missing file panics", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}

func TestConfig_SlogLevel(t *testing.T) {
	levels := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"ERROR":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for value, expected := range levels {
		t.Run(value, func(t *testing.T) {
			// Given: a configured log level
			conf := &Config{LogLevel: value}

			// When/Then: it maps onto the slog level
			assert.Equal(t, expected, conf.SlogLevel())
		})
	}
}
