package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/cwbudde/rasterbench/internal/bench"
	"github.com/cwbudde/rasterbench/internal/cpu"
	"github.com/cwbudde/rasterbench/internal/raster"
	"github.com/cwbudde/rasterbench/internal/report"
	"github.com/cwbudde/rasterbench/internal/store"
)

var (
	benchRows       int
	benchCols       int
	benchSamples    int
	benchWorkers    int
	benchRemainder  string
	benchStrategies []string
	benchOutDir     string
	benchFormat     string
	benchNoWrite    bool
	benchVerify     bool
	benchJSON       bool
	benchEvents     string
	benchTrials     bool
	benchColor      string
	benchProfile    string
	benchProfileDir string
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time every strategy and report speedups",
	Long: `Runs each selected strategy for a number of trials, writing every trial's
image to the output directory outside the timed interval, and reports
min/average/max compute time plus the speedup over the scalar baseline.`,
	RunE: runBench,
}

func init() {
	defaults := bench.DefaultConfig()

	benchCmd.Flags().IntVar(&benchRows, "rows", defaults.Rows, "Image height in pixels")
	benchCmd.Flags().IntVar(&benchCols, "cols", defaults.Cols, "Image width in pixels")
	benchCmd.Flags().IntVarP(&benchSamples, "samples", "n", defaults.Samples, "Trials per strategy")
	benchCmd.Flags().IntVarP(&benchWorkers, "workers", "w", 0, "Worker goroutines for threaded strategies (0 = logical CPUs)")
	benchCmd.Flags().StringVar(&benchRemainder, "remainder", "fill", "Pixels outside the partitioning: fill, drop, reject")
	benchCmd.Flags().StringSliceVarP(&benchStrategies, "strategies", "s", nil, "Strategies to run (default all); scalar is always run first")
	benchCmd.Flags().StringVarP(&benchOutDir, "out", "o", ".", "Output directory for images")
	benchCmd.Flags().StringVar(&benchFormat, "format", "ppm", "Image format: ppm, png, bmp, tiff")
	benchCmd.Flags().BoolVar(&benchNoWrite, "no-write", false, "Skip writing images")
	benchCmd.Flags().BoolVar(&benchVerify, "verify", false, "Check every trial against the pixel formula")
	benchCmd.Flags().BoolVar(&benchJSON, "json", false, "Print the report as JSON instead of text")
	benchCmd.Flags().StringVar(&benchEvents, "events", "", "Write one JSON line per trial to this file")
	benchCmd.Flags().BoolVar(&benchTrials, "trials", true, "Print every trial time")
	benchCmd.Flags().StringVar(&benchColor, "color", "auto", "Colored output: auto, always, never")
	benchCmd.Flags().StringVar(&benchProfile, "profile", "", "Capture a profile: cpu, mem, trace, block, mutex")
	benchCmd.Flags().StringVar(&benchProfileDir, "profile-dir", ".", "Directory for profile output")

	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	remainder, strict, err := parseRemainderFlag(benchRemainder)
	if err != nil {
		return err
	}

	cfg := bench.Config{
		Rows:    benchRows,
		Cols:    benchCols,
		Samples: benchSamples,
		Verify:  benchVerify,
		Strict:  strict,
	}
	opts := raster.Options{Workers: benchWorkers, Remainder: remainder}

	strategies, err := selectStrategies(benchStrategies, opts)
	if err != nil {
		return err
	}

	sink, err := newSink(benchNoWrite, benchOutDir, benchFormat)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	color, err := useColor(benchColor, out)
	if err != nil {
		return err
	}

	var observers report.Multi
	var console *report.Console
	if !benchJSON {
		console = report.NewConsole(out, color, benchTrials)
		observers = append(observers, console)
	}

	var events *report.JSONLines
	if benchEvents != "" {
		f, err := os.Create(benchEvents)
		if err != nil {
			return fmt.Errorf("failed to create events file: %w", err)
		}
		defer f.Close()
		events = report.NewJSONLines(f)
		observers = append(observers, events)
	}

	h, err := bench.New(cfg, sink, bench.WithObserver(observers), bench.WithLogger(logger))
	if err != nil {
		return err
	}

	features := cpu.Detect()
	logger.Info("Starting benchmark",
		"host", features.String(),
		"rows", cfg.Rows,
		"cols", cfg.Cols,
		"samples", cfg.Samples,
		"remainder", benchRemainder,
		"strategies", len(strategies),
	)
	if !features.Has256BitLanes() {
		logger.Warn("Host lacks 256-bit vector units; expect little gain from 8-lane strategies", "host", features.String())
	}

	stop, err := startProfile(benchProfile, benchProfileDir)
	if err != nil {
		return err
	}
	rep, err := h.RunAll(strategies)
	stop()
	if err != nil {
		return err
	}

	if events != nil {
		if err := events.Flush(); err != nil {
			return err
		}
	}

	if benchJSON {
		return report.WriteJSON(out, rep)
	}
	console.Summary(rep)
	return nil
}

// parseRemainderFlag maps fill, drop and reject onto a remainder policy.
// reject uses the drop partitioning and makes the harness refuse strategies
// that would leave pixels unwritten.
func parseRemainderFlag(s string) (raster.Remainder, bool, error) {
	if strings.EqualFold(strings.TrimSpace(s), "reject") {
		return raster.RemainderDrop, true, nil
	}
	r, err := raster.ParseRemainder(s)
	if err != nil {
		return 0, false, err
	}
	return r, false, nil
}

// selectStrategies resolves names in order, dropping duplicates. An empty
// list selects every strategy. The scalar strategy is prepended when
// missing so every run has a baseline.
func selectStrategies(names []string, opts raster.Options) ([]raster.Strategy, error) {
	if len(names) == 0 {
		return raster.All(opts), nil
	}

	seen := make(map[raster.Name]bool)
	var out []raster.Strategy
	for _, name := range names {
		s, err := raster.New(name, opts)
		if err != nil {
			return nil, err
		}
		if seen[s.Name()] {
			continue
		}
		seen[s.Name()] = true
		out = append(out, s)
	}

	if !seen[raster.NameScalar] {
		out = append([]raster.Strategy{raster.NewScalar()}, out...)
	}
	return out, nil
}

func newSink(noWrite bool, dir, format string) (bench.Sink, error) {
	if noWrite {
		return store.Discard, nil
	}
	f, err := store.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	sink, err := store.NewFSSink(dir, f)
	if err != nil {
		return nil, err
	}
	logger.Info("Writing trial images", "dir", dir, "format", sink.Format())
	return sink, nil
}

// useColor resolves auto, always and never. auto enables color only when w
// is a terminal.
func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		f, ok := w.(*os.File)
		if !ok {
			return false, nil
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	default:
		return false, fmt.Errorf("invalid color mode %q (want auto, always or never)", mode)
	}
}

// startProfile starts the named profile and returns its stop function.
func startProfile(mode, dir string) (func(), error) {
	var kind func(*profile.Profile)
	switch mode {
	case "":
		return func() {}, nil
	case "cpu":
		kind = profile.CPUProfile
	case "mem":
		kind = profile.MemProfile
	case "trace":
		kind = profile.TraceProfile
	case "block":
		kind = profile.BlockProfile
	case "mutex":
		kind = profile.MutexProfile
	default:
		return nil, fmt.Errorf("invalid profile %q (want cpu, mem, trace, block or mutex)", mode)
	}

	p := profile.Start(kind, profile.ProfilePath(dir), profile.Quiet, profile.NoShutdownHook)
	slog.Debug("Profiling enabled", "mode", mode, "dir", dir)
	return p.Stop, nil
}
