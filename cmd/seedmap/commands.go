package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func pointsCmd(setup func() (*env, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "points FILE",
		Short: "Print the lowest final value over the individual seeds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = e.logger.Sync() }()

			a, err := e.load(args[0])
			if err != nil {
				return err
			}
			lowest, err := e.engine.LowestValue(a.Pipeline, a.Seeds)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), lowest)
			return err
		},
	}
}

func rangesCmd(setup func() (*env, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "ranges FILE",
		Short: "Print the lowest final value over the seed (start, size) ranges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = e.logger.Sync() }()

			a, err := e.load(args[0])
			if err != nil {
				return err
			}
			ranges, err := a.SeedRanges()
			if err != nil {
				return err
			}
			lowest, err := e.engine.LowestInRanges(a.Pipeline, ranges)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), lowest)
			return err
		},
	}
}

func traceCmd(setup func() (*env, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "trace FILE VALUE",
		Short: "Print the value after every stage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[1], err)
			}
			e, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = e.logger.Sync() }()

			a, err := e.load(args[0])
			if err != nil {
				return err
			}
			values := e.engine.Trace(a.Pipeline, v)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "input: %d\n", values[0])
			for i, s := range a.Pipeline {
				fmt.Fprintf(out, "%s: %d\n", s.Name, values[i+1])
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "seedmap version %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", commit)
		},
	}
}
