package store

import "fmt"

// Diff summarizes how two images of the same size differ.
type Diff struct {
	Pixels     int `json:"pixels"`
	Mismatched int `json:"mismatched"`

	// MaxError is the largest absolute difference per channel (R, G, B).
	MaxError [3]int32 `json:"maxError"`

	// FirstMismatch is the lowest differing pixel index, or -1.
	FirstMismatch int `json:"firstMismatch"`
}

// Compare counts the pixels where a and b differ in any channel.
func Compare(a, b *Image) (Diff, error) {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return Diff{}, fmt.Errorf("size mismatch: %dx%d vs %dx%d", a.Cols, a.Rows, b.Cols, b.Rows)
	}

	d := Diff{Pixels: a.Rows * a.Cols, FirstMismatch: -1}
	pa := [3][]int32{a.Channels.R, a.Channels.G, a.Channels.B}
	pb := [3][]int32{b.Channels.R, b.Channels.G, b.Channels.B}
	for i := 0; i < d.Pixels; i++ {
		differs := false
		for c := 0; c < 3; c++ {
			e := pa[c][i] - pb[c][i]
			if e < 0 {
				e = -e
			}
			if e == 0 {
				continue
			}
			differs = true
			d.MaxError[c] = max(d.MaxError[c], e)
		}
		if differs {
			if d.FirstMismatch < 0 {
				d.FirstMismatch = i
			}
			d.Mismatched++
		}
	}
	return d, nil
}

// Identical reports whether no pixel differs.
func (d Diff) Identical() bool {
	return d.Mismatched == 0
}
