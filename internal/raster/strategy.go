// Package raster implements the pixel-generation strategies.
//
// Every strategy fills the three channel planes of a rows x cols image in
// place. All of them reproduce Pixel exactly over the pixels they cover,
// except the approximated vector strategy, which computes one pixel per
// 8-lane block and broadcasts it.
package raster

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/rasterbench/internal/parallel"
)

// Name identifies a strategy. It doubles as the output file stem.
type Name string

const (
	NameScalar         Name = "scalar"
	NameThreaded       Name = "threaded"
	NameVector         Name = "vector"
	NameApproxVector   Name = "approx-vector"
	NameThreadedVector Name = "threaded-vector"
)

// ErrUnknownStrategy is returned when a name does not match a known strategy.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy fills channel planes for a rows x cols image.
type Strategy interface {
	// Name returns the canonical strategy name.
	Name() Name

	// Generate writes pixels into ch. Each plane must hold rows*cols values.
	// Generate keeps no reference to ch after it returns.
	Generate(rows, cols int, ch Channels)

	// Covered returns how many leading pixels Generate writes. It is
	// rows*cols unless the remainder policy drops trailing pixels.
	Covered(rows, cols int) int

	// Exact reports whether every covered pixel equals Pixel.
	Exact() bool
}

// Remainder selects what happens to pixels that do not fit the worker or
// lane partitioning.
type Remainder int

const (
	// RemainderFill computes every pixel.
	RemainderFill Remainder = iota
	// RemainderDrop leaves trailing pixels unwritten: n/T pixels per
	// worker and whole 8-pixel blocks only.
	RemainderDrop
)

func (r Remainder) String() string {
	switch r {
	case RemainderFill:
		return "fill"
	case RemainderDrop:
		return "drop"
	default:
		return fmt.Sprintf("Remainder(%d)", int(r))
	}
}

// ParseRemainder maps "fill" or "drop" to a Remainder.
func ParseRemainder(s string) (Remainder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fill":
		return RemainderFill, nil
	case "drop":
		return RemainderDrop, nil
	default:
		return RemainderFill, fmt.Errorf("unknown remainder policy %q", s)
	}
}

// Options configure the strategies.
type Options struct {
	// Workers is the goroutine count of the threaded strategies.
	// Zero or less selects the detected hardware concurrency.
	Workers int

	Remainder Remainder
}

// NormalizeName maps user input, including the legacy image function
// names such as simpleImage, to a canonical Name.
func NormalizeName(name string) Name {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "scalar", "simple", "simpleimage":
		return NameScalar
	case "threaded", "threadedimage":
		return NameThreaded
	case "vector", "simd", "simdimage":
		return NameVector
	case "approx-vector", "approx", "approximated-simd", "approximatedsimdimage":
		return NameApproxVector
	case "threaded-vector", "threaded-simd", "threadedsimdimage":
		return NameThreadedVector
	default:
		return Name(name)
	}
}

// Names returns every strategy name in benchmark order. The first is the
// speedup baseline.
func Names() []Name {
	return []Name{NameScalar, NameThreaded, NameVector, NameApproxVector, NameThreadedVector}
}

// New constructs the named strategy.
func New(name string, opts Options) (Strategy, error) {
	switch NormalizeName(name) {
	case NameScalar:
		return NewScalar(), nil
	case NameThreaded:
		return NewThreaded(opts), nil
	case NameVector:
		return NewVector(opts), nil
	case NameApproxVector:
		return NewApproxVector(opts), nil
	case NameThreadedVector:
		return NewThreadedVector(opts), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, name)
	}
}

// All constructs every strategy in benchmark order.
func All(opts Options) []Strategy {
	names := Names()
	all := make([]Strategy, len(names))
	for i, name := range names {
		s, _ := New(string(name), opts)
		all[i] = s
	}
	return all
}

// workerCount resolves Options.Workers once at construction.
func workerCount(opts Options) int {
	return parallel.Resolve(opts.Workers)
}
