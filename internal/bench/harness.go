// Package bench times pixel-generation strategies.
//
// A Harness runs a fixed number of trials per strategy. Each trial allocates
// fresh channel planes, times only the strategy call, then hands the planes
// to a Sink. The minimum sample is the strategy's representative cost and
// the base for speedups against the first strategy of a run.
package bench

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cwbudde/rasterbench/internal/raster"
)

// Sink persists the channels of a finished trial. It is called outside the
// timed interval.
type Sink interface {
	Write(name string, rows, cols int, ch raster.Channels) error
}

// Observer receives progress. Calls happen on the harness goroutine.
type Observer interface {
	TrialDone(name raster.Name, trial int, elapsed time.Duration)
	StrategyDone(result Result)
}

// Result holds the samples and statistics of one strategy.
type Result struct {
	Strategy raster.Name     `json:"strategy"`
	Samples  []time.Duration `json:"samplesNs"`
	Stats

	// Covered is the number of pixels the strategy wrote per trial.
	Covered int `json:"covered"`

	// Speedup is the baseline minimum over this minimum, in percent.
	Speedup float64 `json:"speedupPercent"`
}

// Report is the outcome of RunAll.
type Report struct {
	Config   Config      `json:"config"`
	Baseline raster.Name `json:"baseline"`
	Results  []Result    `json:"results"`
}

// Harness runs benchmark trials.
type Harness struct {
	cfg      Config
	sink     Sink
	observer Observer
	logger   *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithObserver sets the progress observer.
func WithObserver(o Observer) Option {
	return func(h *Harness) {
		if o != nil {
			h.observer = o
		}
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) {
		if l != nil {
			h.logger = l
		}
	}
}

// New validates cfg and returns a Harness writing trial output to sink.
func New(cfg Config, sink Sink, opts ...Option) (*Harness, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sink == nil {
		return nil, errors.New("sink cannot be nil")
	}

	h := &Harness{
		cfg:      cfg,
		sink:     sink,
		observer: nopObserver{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Config returns the harness configuration.
func (h *Harness) Config() Config {
	return h.cfg
}

// Run times cfg.Samples trials of s. Result.Speedup is left at zero.
func (h *Harness) Run(s raster.Strategy) (Result, error) {
	rows, cols := h.cfg.Rows, h.cfg.Cols
	name := s.Name()
	n := rows * cols

	covered := s.Covered(rows, cols)
	if covered < n {
		if h.cfg.Strict {
			return Result{}, fmt.Errorf("%w: %s writes %d of %d pixels at %dx%d", ErrIncompleteCoverage, name, covered, n, cols, rows)
		}
		h.logger.Warn("Strategy drops trailing pixels", "strategy", name, "covered", covered, "pixels", n)
	}

	logger := h.logger.With("strategy", name)
	if w, ok := s.(interface{ Workers() int }); ok {
		logger = logger.With("workers", w.Workers())
	}
	logger.Info("Profiling strategy", "rows", rows, "cols", cols, "samples", h.cfg.Samples)

	samples := make([]time.Duration, 0, h.cfg.Samples)
	for trial := 1; trial <= h.cfg.Samples; trial++ {
		ch := raster.NewChannels(n)

		start := time.Now()
		s.Generate(rows, cols, ch)
		elapsed := time.Since(start)

		samples = append(samples, elapsed)
		logger.Debug("Trial complete", "trial", trial, "elapsed_ns", elapsed.Nanoseconds())
		h.observer.TrialDone(name, trial, elapsed)

		if err := h.sink.Write(string(name), rows, cols, ch); err != nil {
			return Result{}, fmt.Errorf("failed to write %s trial %d: %w", name, trial, err)
		}
		if h.cfg.Verify {
			if err := raster.Verify(s, rows, cols, ch); err != nil {
				return Result{}, fmt.Errorf("trial %d: %w", trial, err)
			}
		}
	}

	result := Result{
		Strategy: name,
		Samples:  samples,
		Stats:    Summarize(samples),
		Covered:  covered,
	}
	logger.Info("Strategy complete", "min", result.Min, "mean", result.Mean, "max", result.Max)
	return result, nil
}

// RunAll runs every strategy in order. The first is the baseline; each
// result's Speedup compares the baseline minimum with its own minimum.
func (h *Harness) RunAll(strategies []raster.Strategy) (*Report, error) {
	if len(strategies) == 0 {
		return nil, fmt.Errorf("%w: no strategies selected", ErrInvalidConfig)
	}

	report := &Report{
		Config:   h.cfg,
		Baseline: strategies[0].Name(),
		Results:  make([]Result, 0, len(strategies)),
	}

	var baseline time.Duration
	for i, s := range strategies {
		result, err := h.Run(s)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			baseline = result.Min
		}
		result.Speedup = Speedup(baseline, result.Min)
		report.Results = append(report.Results, result)
		h.observer.StrategyDone(result)
	}
	return report, nil
}

type nopObserver struct{}

func (nopObserver) TrialDone(raster.Name, int, time.Duration) {}
func (nopObserver) StrategyDone(Result)                       {}
