// Command fornjot evaluates TOML shape models with the fornjot kernel.
//
// Usage:
//
//	fornjot eval MODEL.toml... [--tolerance T] [--resolution R]
//	fornjot preview MODEL.toml -o out.png [--watch]
package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	logger := newLogger()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd(logger).ExecuteContext(ctx); err != nil {
		logger.Error("command failed", "err", err)
		stop()
		os.Exit(1)
	}
}

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "fornjot",
	})
}

type rootFlags struct {
	logLevel  string
	tolerance float64
}

func newRootCmd(logger *log.Logger) *cobra.Command {
	var flags rootFlags
	root := &cobra.Command{
		Use:   "fornjot",
		Short: "Triangulate parametric shape models",
		Long: `fornjot turns a tree of parametric shapes described in a TOML model file
into a triangle mesh within a tolerance.

Shapes are circles and squares on the XY plane, sweeps of those along +Z
and unions of solids.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(flags.logLevel)
			if err != nil {
				return err
			}
			logger.SetLevel(level)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().Float64Var(&flags.tolerance, "tolerance", 0, "maximum deviation of the mesh from the shape; overrides the model file")
	root.AddCommand(
		newEvalCmd(logger, &flags),
		newPreviewCmd(logger, &flags),
	)
	return root
}
