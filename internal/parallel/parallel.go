// Package parallel splits an index range across freshly spawned goroutines
// and waits for all of them before returning.
//
// No goroutines outlive a call. Each worker receives a disjoint half-open
// range [start, end), so callers may write to shared slices inside their
// range without locking.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// FallbackWorkers is used when the hardware concurrency cannot be determined.
const FallbackWorkers = 2

// numCPU is swapped in tests.
var numCPU = runtime.NumCPU

// Workers returns the detected hardware concurrency, or FallbackWorkers when
// the runtime reports zero or less.
func Workers() int {
	if n := numCPU(); n > 0 {
		return n
	}
	return FallbackWorkers
}

// Resolve returns requested if positive, otherwise Workers().
func Resolve(requested int) int {
	if requested > 0 {
		return requested
	}
	return Workers()
}

// Range is a half-open interval of work indices.
type Range struct {
	Start, End int
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Split divides [0, total) into at most workers contiguous ranges whose
// lengths differ by at most one. Every index is assigned exactly once.
func Split(total, workers int) []Range {
	if total <= 0 {
		return nil
	}
	workers = min(Resolve(workers), total)

	ranges := make([]Range, workers)
	chunk, extra := total/workers, total%workers
	start := 0
	for w := range ranges {
		end := start + chunk
		if w < extra {
			end++
		}
		ranges[w] = Range{Start: start, End: end}
		start = end
	}
	return ranges
}

// SplitTruncated divides [0, total) into exactly workers ranges of
// total/workers indices each. The trailing total%workers indices belong to
// no range. Ranges are empty when total < workers.
func SplitTruncated(total, workers int) []Range {
	workers = Resolve(workers)
	if total < 0 {
		total = 0
	}

	ranges := make([]Range, workers)
	chunk := total / workers
	for w := range ranges {
		ranges[w] = Range{Start: w * chunk, End: (w + 1) * chunk}
	}
	return ranges
}

// Covered returns the number of leading indices assigned by ranges produced
// by Split or SplitTruncated.
func Covered(ranges []Range) int {
	if len(ranges) == 0 {
		return 0
	}
	return ranges[len(ranges)-1].End
}

// For runs fn once per range of Split(total, workers) and blocks until every
// call has returned.
func For(total, workers int, fn func(start, end int)) {
	run(Split(total, workers), fn)
}

// ForTruncated runs fn once per range of SplitTruncated(total, workers),
// spawning exactly workers goroutines, and blocks until all have returned.
func ForTruncated(total, workers int, fn func(start, end int)) {
	run(SplitTruncated(total, workers), fn)
}

func run(ranges []Range, fn func(start, end int)) {
	switch len(ranges) {
	case 0:
		return
	case 1:
		fn(ranges[0].Start, ranges[0].End)
		return
	}

	var g errgroup.Group
	for _, r := range ranges {
		g.Go(func() error {
			fn(r.Start, r.End)
			return nil
		})
	}
	// Workers never fail; Wait is the join barrier.
	_ = g.Wait()
}
