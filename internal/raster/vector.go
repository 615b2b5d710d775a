package raster

import "github.com/cwbudde/rasterbench/internal/simd8"

type vector struct {
	remainder Remainder
}

// NewVector returns a single-goroutine strategy computing 8 pixels per step.
func NewVector(opts Options) Strategy {
	return &vector{remainder: opts.Remainder}
}

func (v *vector) Name() Name  { return NameVector }
func (v *vector) Exact() bool { return true }

func (v *vector) Covered(rows, cols int) int {
	return blockCovered(rows*cols, v.remainder)
}

func (v *vector) Generate(rows, cols int, ch Channels) {
	n := rows * cols
	blocks := n / simd8.Lanes
	vectorBlocks(rows, cols, ch, 0, blocks)
	if v.remainder == RemainderFill {
		fillScalar(rows, cols, ch, blocks*simd8.Lanes, n)
	}
}

// blockCovered is the number of pixels written by a whole-block pass over n
// pixels under the given policy.
func blockCovered(n int, rem Remainder) int {
	if rem == RemainderDrop {
		return n / simd8.Lanes * simd8.Lanes
	}
	return n
}

// vectorBlocks fills blocks [first, last). Block k covers pixels
// [8k, 8k+8); all of them must lie inside ch.
func vectorBlocks(rows, cols int, ch Channels, first, last int) {
	redScale := simd8.BroadcastFloat32(float32(256) / float32(cols) / float32(rows))
	greenScale := simd8.BroadcastFloat32(float32(256) / float32(cols))
	blue := simd8.BroadcastInt32(Blue)
	lanes := simd8.Iota()
	width := int32(cols)
	area := int32(rows * cols)

	// (256*i/cols)/rows == 256*i/(cols*rows) for non-negative integers, so
	// both channels are a single floor division fixed up after the float
	// multiply.
	for k := first; k < last; k++ {
		base := k * simd8.Lanes

		index := simd8.BroadcastInt32(int32(base)).Add(lanes)
		index.ToFloat32().Mul(redScale).TruncToInt32().
			FixQuotient(index.Scale(256), area).
			Store(ch.R[base:])

		column := simd8.BroadcastInt32(int32(base % cols)).Add(lanes).Wrap(width)
		column.ToFloat32().Mul(greenScale).TruncToInt32().
			FixQuotient(column.Scale(256), width).
			Store(ch.G[base:])

		blue.Store(ch.B[base:])
	}
}
