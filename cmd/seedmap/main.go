// Package main is the entry point for the seedmap CLI.
package main

import (
	"fmt"
	"os"

	"github.com/liznear/seedmap/almanac"
	"github.com/liznear/seedmap/config"
	"github.com/liznear/seedmap/logging"
	"github.com/liznear/seedmap/pipeline"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:           "seedmap",
		Short:         "Find the lowest value reachable through a chain of range maps",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "path to a .env file")

	setup := func() (*env, error) {
		return newEnv(envFile)
	}
	cmd.AddCommand(pointsCmd(setup))
	cmd.AddCommand(rangesCmd(setup))
	cmd.AddCommand(traceCmd(setup))
	cmd.AddCommand(versionCmd())
	return cmd
}

// env is what every command needs: a logger and an engine using it.
type env struct {
	logger *zap.Logger
	engine *pipeline.Engine
}

func newEnv(envFile string) (*env, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := logging.New(cfg)
	if err != nil {
		return nil, err
	}
	return &env{
		logger: logger,
		engine: pipeline.New(pipeline.WithLogger(logger), pipeline.WithDebug(cfg.Debug)),
	}, nil
}

func (e *env) load(path string) (*almanac.Almanac, error) {
	a, err := almanac.Load(path)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("Almanac loaded",
		zap.String("path", path),
		zap.Int("seeds", len(a.Seeds)),
		zap.Int("stages", len(a.Pipeline)),
	)
	return a, nil
}
