package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	logLevel string
	logger   = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "rasterbench",
	Short: "Benchmark scalar, threaded and vectorized raster generation",
	Long: `rasterbench fills a synthetic RGB gradient with five strategies (scalar,
threaded, 8-lane vector, approximated vector and threaded vector), times
each one over repeated trials and reports the speedup over the scalar loop.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(cmd.ErrOrStderr(), logLevel)
		slog.SetDefault(logger)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
}

// newLogger returns a JSON logger. Logs go to stderr so stdout stays free
// for reports.
func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	return slog.New(slog.NewJSONHandler(w, opts))
}
