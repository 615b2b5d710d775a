package bench

import (
	"errors"
	"fmt"

	"github.com/cwbudde/rasterbench/internal/raster"
)

// Default benchmark parameters.
const (
	DefaultRows    = 1080
	DefaultCols    = 1920
	DefaultSamples = 10
)

var (
	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("invalid benchmark config")

	// ErrIncompleteCoverage is returned in strict mode when a strategy would
	// leave pixels unwritten.
	ErrIncompleteCoverage = errors.New("strategy does not cover every pixel")
)

// Config holds the parameters of one benchmark run.
type Config struct {
	Rows    int `json:"rows"`
	Cols    int `json:"cols"`
	Samples int `json:"samples"`

	// Verify checks each trial's output against the pixel formula after
	// the timed interval.
	Verify bool `json:"verify"`

	// Strict rejects strategies whose remainder policy drops pixels for
	// the configured dimensions.
	Strict bool `json:"strict"`
}

// DefaultConfig returns the 1920x1080, 10-sample configuration.
func DefaultConfig() Config {
	return Config{
		Rows:    DefaultRows,
		Cols:    DefaultCols,
		Samples: DefaultSamples,
	}
}

// Pixels returns rows*cols.
func (c Config) Pixels() int {
	return c.Rows * c.Cols
}

// Validate checks that dimensions and sample count are positive and that
// 256*rows*cols fits the int32 channel arithmetic.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidConfig, c.Cols, c.Rows)
	}
	if c.Samples <= 0 {
		return fmt.Errorf("%w: samples must be positive, got %d", ErrInvalidConfig, c.Samples)
	}
	if c.Rows > raster.MaxPixels || c.Cols > raster.MaxPixels ||
		int64(c.Rows)*int64(c.Cols) > raster.MaxPixels {
		return fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrInvalidConfig, c.Cols, c.Rows, raster.MaxPixels)
	}
	return nil
}
