package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults without a config file", func(t *testing.T) {
		// When: loading a path that does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: defaults are applied
		require.NoError(t, err)
		assert.Equal(t, &Config{
			LogLevel: "info",
			Game:     Game{FirstMark: "X"},
			Redis: Redis{
				Enabled: false,
				Host:    "localhost",
				Port:    "6379",
				Channel: "tictactoe:events",
				Buffer:  64,
			},
		}, conf)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Values from the yml file", func(t *testing.T) {
		// Given: a config file
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\ngame:\n  first-mark: O\nredis:\n  enabled: true\n  host: cache\n  port: \"6380\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: file values win, the rest keeps defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "O", conf.Game.FirstMark)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, "tictactoe:events", conf.Redis.Channel)
	})

	t.Run("Environment overrides", func(t *testing.T) {
		// Given: env variables
		t.Setenv("TICTACTOE_LOG_LEVEL", "warn")
		t.Setenv("TICTACTOE_FIRST_MARK", "O")

		// When: loading without a file
		conf, err := Load("")

		// Then: env values are used
		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Equal(t, "O", conf.Game.FirstMark)
	})

	t.Run("Broken file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: [unclosed"), 0o600))

		_, err := Load(path)

		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(path) })
	})
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Run("From the yml file", func(t *testing.T) {
		// Given: a config file with an unknown log level
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: loud\n"), 0o600))

		// When: loading it
		_, err := Load(path)

		// Then: the level is rejected instead of falling back to info
		require.ErrorIs(t, err, ErrInvalidLogLevel)
	})

	t.Run("From the environment", func(t *testing.T) {
		t.Setenv("TICTACTOE_LOG_LEVEL", "verbose")

		_, err := Load("")

		require.ErrorIs(t, err, ErrInvalidLogLevel)
	})
}

func TestConfig_SlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}

	for level, want := range tests {
		t.Run(level, func(t *testing.T) {
			conf := &Config{LogLevel: level}

			assert.Equal(t, want, conf.SlogLevel())
		})
	}
}
