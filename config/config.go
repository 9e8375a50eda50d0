// Package config provides application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable, e.g. SEEDMAP_LOG_LEVEL.
const Prefix = "SEEDMAP"

const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = LogFormatConsole
)

// LogFormat is the log output encoding.
type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds all environment-based configuration.
type Config struct {
	// LogLevel is the log verbosity: debug, info, warn or error.
	// Env: SEEDMAP_LOG_LEVEL (default: info)
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogFormat is the log encoding, console or json.
	// Env: SEEDMAP_LOG_FORMAT (default: console)
	LogFormat LogFormat `envconfig:"LOG_FORMAT" default:"console"`

	// Debug forces debug logging and logs every pipeline stage.
	// Env: SEEDMAP_DEBUG (default: false)
	Debug bool `envconfig:"DEBUG" default:"false"`
}

// Load reads the .env file at envFile if it exists, then the environment.
// Variables already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return Config{}, fmt.Errorf("config: fail to load %q: %w", envFile, err)
			}
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: fail to process environment: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = LogFormat(strings.ToLower(string(cfg.LogFormat)))
	if cfg.Debug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	switch c.LogFormat {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}
