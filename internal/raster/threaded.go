package raster

import "github.com/cwbudde/rasterbench/internal/parallel"

type threaded struct {
	workers   int
	remainder Remainder
}

// NewThreaded returns a strategy that splits the pixel range into one
// contiguous run per worker goroutine.
func NewThreaded(opts Options) Strategy {
	return &threaded{workers: workerCount(opts), remainder: opts.Remainder}
}

func (t *threaded) Name() Name  { return NameThreaded }
func (t *threaded) Exact() bool { return true }

// Workers returns the resolved goroutine count.
func (t *threaded) Workers() int { return t.workers }

func (t *threaded) Covered(rows, cols int) int {
	n := rows * cols
	if t.remainder == RemainderDrop {
		return parallel.Covered(parallel.SplitTruncated(n, t.workers))
	}
	return n
}

func (t *threaded) Generate(rows, cols int, ch Channels) {
	fill := func(start, end int) {
		fillScalar(rows, cols, ch, start, end)
	}
	if t.remainder == RemainderDrop {
		parallel.ForTruncated(rows*cols, t.workers, fill)
		return
	}
	parallel.For(rows*cols, t.workers, fill)
}
