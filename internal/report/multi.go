package report

import (
	"time"

	"github.com/cwbudde/rasterbench/internal/bench"
	"github.com/cwbudde/rasterbench/internal/raster"
)

// Multi fans progress out to several observers in order.
type Multi []bench.Observer

func (m Multi) TrialDone(name raster.Name, trial int, elapsed time.Duration) {
	for _, o := range m {
		o.TrialDone(name, trial, elapsed)
	}
}

func (m Multi) StrategyDone(r bench.Result) {
	for _, o := range m {
		o.StrategyDone(r)
	}
}
