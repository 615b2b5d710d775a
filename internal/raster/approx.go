package raster

import "github.com/cwbudde/rasterbench/internal/simd8"

// Representative is the lane whose exact value the approximated strategy
// broadcasts across its block.
const Representative = 3

type approxVector struct {
	remainder Remainder
}

// NewApproxVector returns a strategy that evaluates Pixel once per 8-pixel
// block, at offset Representative, and broadcasts the result to all lanes.
func NewApproxVector(opts Options) Strategy {
	return &approxVector{remainder: opts.Remainder}
}

func (a *approxVector) Name() Name  { return NameApproxVector }
func (a *approxVector) Exact() bool { return false }

func (a *approxVector) Covered(rows, cols int) int {
	return blockCovered(rows*cols, a.remainder)
}

func (a *approxVector) Generate(rows, cols int, ch Channels) {
	n := rows * cols
	blocks := n / simd8.Lanes
	blue := simd8.BroadcastInt32(Blue)

	for k := 0; k < blocks; k++ {
		base := k * simd8.Lanes
		r, g, _ := Pixel(base+Representative, rows, cols)
		simd8.BroadcastInt32(r).Store(ch.R[base:])
		simd8.BroadcastInt32(g).Store(ch.G[base:])
		blue.Store(ch.B[base:])
	}

	tail := blocks * simd8.Lanes
	if a.remainder == RemainderDrop || tail == n {
		return
	}
	r, g, _ := Pixel(representativeIndex(tail, n), rows, cols)
	for i := tail; i < n; i++ {
		ch.R[i], ch.G[i], ch.B[i] = r, g, Blue
	}
}

// representativeIndex returns the pixel whose value stands for the block
// starting at base, clamped to a partial block ending at end.
func representativeIndex(base, end int) int {
	return min(base+Representative, end-1)
}
