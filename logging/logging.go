// Package logging builds the zap logger used by the CLI.
package logging

import (
	"fmt"

	"github.com/liznear/seedmap/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger writing to stderr, so stdout only carries results.
func New(cfg config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logging: fail to parse level: %w", err)
	}

	var zcfg zap.Config
	switch cfg.LogFormat {
	case config.LogFormatJSON:
		zcfg = zap.NewProductionConfig()
	default:
		zcfg = zap.NewDevelopmentConfig()
		zcfg.DisableStacktrace = true
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: fail to build logger: %w", err)
	}
	return logger, nil
}
