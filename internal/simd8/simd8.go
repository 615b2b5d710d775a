// Package simd8 provides fixed-width 8-lane vector primitives.
//
// The types mirror a 256-bit register holding eight 32-bit lanes. Each
// operation is a straight-line loop over a fixed-size array, which the
// compiler unrolls and keeps free of bounds checks.
//
// Primitives:
//
//	Iota()                 load the lane indices 0..7
//	BroadcastInt32(v)      all lanes = v
//	BroadcastFloat32(v)    all lanes = v
//	Int32x8.Add            lane-wise add
//	Int32x8.Scale          lane-wise multiply by a constant
//	Int32x8.Wrap           lane-wise reduce into [0, limit)
//	Int32x8.ToFloat32      int32 -> float32 conversion
//	Float32x8.Mul          lane-wise multiply
//	Float32x8.TruncToInt32 float32 -> int32, truncating toward zero
//	Int32x8.FixQuotient    lane-wise correction of q to floor(num/den)
//	Int32x8.Store          write all lanes to dst[0:8]
package simd8

// Lanes is the number of 32-bit lanes per vector.
const Lanes = 8

// Int32x8 holds eight int32 lanes.
type Int32x8 [Lanes]int32

// Float32x8 holds eight float32 lanes.
type Float32x8 [Lanes]float32

var iota8 = Int32x8{0, 1, 2, 3, 4, 5, 6, 7}

// Iota returns {0, 1, ..., 7}.
func Iota() Int32x8 {
	return iota8
}

// BroadcastInt32 returns a vector with every lane set to v.
func BroadcastInt32(v int32) Int32x8 {
	return Int32x8{v, v, v, v, v, v, v, v}
}

// BroadcastFloat32 returns a vector with every lane set to v.
func BroadcastFloat32(v float32) Float32x8 {
	return Float32x8{v, v, v, v, v, v, v, v}
}

// Scale returns a * k lane-wise.
func (a Int32x8) Scale(k int32) Int32x8 {
	var r Int32x8
	for i := range r {
		r[i] = a[i] * k
	}
	return r
}

// Add returns a + b lane-wise.
func (a Int32x8) Add(b Int32x8) Int32x8 {
	var r Int32x8
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

// Wrap subtracts limit from each lane until the lane is below limit.
// Lanes must be non-negative and limit positive.
func (a Int32x8) Wrap(limit int32) Int32x8 {
	r := a
	for i := range r {
		for r[i] >= limit {
			r[i] -= limit
		}
	}
	return r
}

// FixQuotient corrects an estimated quotient q of num/den by at most one
// in either direction so every lane holds floor(num/den). num must be
// non-negative and den positive. It repairs the rounding error of a float32
// reciprocal multiply.
func (q Int32x8) FixQuotient(num Int32x8, den int32) Int32x8 {
	r := q
	d := int64(den)
	for i := range r {
		n := int64(num[i])
		switch {
		case int64(r[i]+1)*d <= n:
			r[i]++
		case int64(r[i])*d > n:
			r[i]--
		}
	}
	return r
}

// ToFloat32 converts every lane to float32.
func (a Int32x8) ToFloat32() Float32x8 {
	var r Float32x8
	for i := range r {
		r[i] = float32(a[i])
	}
	return r
}

// Store writes all lanes to dst[0:8]. It panics if len(dst) < 8.
func (a Int32x8) Store(dst []int32) {
	_ = dst[Lanes-1]
	copy(dst[:Lanes], a[:])
}

// Mul returns a * b lane-wise.
func (a Float32x8) Mul(b Float32x8) Float32x8 {
	var r Float32x8
	for i := range r {
		r[i] = a[i] * b[i]
	}
	return r
}

// TruncToInt32 converts every lane to int32, truncating toward zero.
func (a Float32x8) TruncToInt32() Int32x8 {
	var r Int32x8
	for i := range r {
		r[i] = int32(a[i])
	}
	return r
}
