package raster

import (
	"github.com/cwbudde/rasterbench/internal/parallel"
	"github.com/cwbudde/rasterbench/internal/simd8"
)

type threadedVector struct {
	workers   int
	remainder Remainder
}

// NewThreadedVector returns a strategy that splits the 8-pixel blocks into
// one contiguous run per worker goroutine, each running the vector body.
func NewThreadedVector(opts Options) Strategy {
	return &threadedVector{workers: workerCount(opts), remainder: opts.Remainder}
}

func (t *threadedVector) Name() Name  { return NameThreadedVector }
func (t *threadedVector) Exact() bool { return true }

// Workers returns the resolved goroutine count.
func (t *threadedVector) Workers() int { return t.workers }

func (t *threadedVector) Covered(rows, cols int) int {
	n := rows * cols
	if t.remainder == RemainderDrop {
		blocks := n / simd8.Lanes
		return parallel.Covered(parallel.SplitTruncated(blocks, t.workers)) * simd8.Lanes
	}
	return n
}

func (t *threadedVector) Generate(rows, cols int, ch Channels) {
	n := rows * cols
	blocks := n / simd8.Lanes
	body := func(first, last int) {
		vectorBlocks(rows, cols, ch, first, last)
	}

	if t.remainder == RemainderDrop {
		// n/T/8 blocks per worker, as floor(floor(n/8)/T).
		parallel.ForTruncated(blocks, t.workers, body)
		return
	}
	parallel.For(blocks, t.workers, body)
	fillScalar(rows, cols, ch, blocks*simd8.Lanes, n)
}
