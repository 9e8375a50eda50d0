package pipeline

import "go.uber.org/zap"

type Config struct {
	Logger *zap.Logger

	// Debug logs the worklists of every stage in interval mode.
	Debug bool
}

type Option func(*Config)

func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

func WithDebug(debug bool) Option {
	return func(c *Config) {
		c.Debug = debug
	}
}
