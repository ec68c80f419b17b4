package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidLogLevel = errors.New("invalid log level")

// ValidLogLevels defines the allowed log-level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	Game     Game   `yaml:"game"`
	Redis    Redis  `yaml:"redis"`
}

type Game struct {
	FirstMark string `yaml:"first-mark" env:"TICTACTOE_FIRST_MARK" env-default:"X"`
}

// Redis configures the optional state-change feed.
type Redis struct {
	Enabled bool   `yaml:"enabled" env:"TICTACTOE_REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
	Channel string `yaml:"channel" env:"TICTACTOE_REDIS_CHANNEL" env-default:"tictactoe:events"`
	Buffer  int    `yaml:"buffer" env:"TICTACTOE_REDIS_BUFFER" env-default:"64"`
}

// Load - reads the yml file at path with env overrides. Without a file only env and defaults apply.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) || path == "" {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err = ValidateLogLevel(config.LogLevel); err != nil {
		return nil, err
	}

	return config, nil
}

func ValidateLogLevel(level string) error {
	if !slices.Contains(ValidLogLevels, level) {
		return fmt.Errorf("%w %q: must be one of %v", ErrInvalidLogLevel, level, ValidLogLevels)
	}

	return nil
}

// SlogLevel - maps LogLevel to a slog level.
func (that *Config) SlogLevel() slog.Level {
	switch that.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// MustLoad - load all configurations, panics on failure.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
