package raster

import (
	"errors"
	"fmt"

	"github.com/cwbudde/rasterbench/internal/simd8"
)

// ErrMismatch is wrapped by every MismatchError.
var ErrMismatch = errors.New("pixel mismatch")

// MismatchError describes the first pixel that violates a strategy's
// contract.
type MismatchError struct {
	Strategy Name
	Index    int
	Channel  string
	Got      int32
	Want     int32
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: pixel %d channel %s = %d, want %d", e.Strategy, e.Index, e.Channel, e.Got, e.Want)
}

func (e *MismatchError) Unwrap() error {
	return ErrMismatch
}

// Verify checks ch against the contract of s over the pixels s covers.
// Exact strategies must equal Pixel everywhere; the approximated strategy
// must equal Pixel at each block's representative in every lane of the
// block.
func Verify(s Strategy, rows, cols int, ch Channels) error {
	covered := s.Covered(rows, cols)
	if ch.Len() < covered || len(ch.G) < covered || len(ch.B) < covered {
		return fmt.Errorf("%s: channels hold %d pixels, need %d", s.Name(), ch.Len(), covered)
	}

	if s.Exact() {
		for i := 0; i < covered; i++ {
			r, g, b := Pixel(i, rows, cols)
			if err := compare(s.Name(), ch, i, r, g, b); err != nil {
				return err
			}
		}
		return nil
	}

	for base := 0; base < covered; base += simd8.Lanes {
		end := min(base+simd8.Lanes, covered)
		r, g, b := Pixel(representativeIndex(base, end), rows, cols)
		for i := base; i < end; i++ {
			if err := compare(s.Name(), ch, i, r, g, b); err != nil {
				return err
			}
		}
	}
	return nil
}

func compare(name Name, ch Channels, i int, r, g, b int32) error {
	switch {
	case ch.R[i] != r:
		return &MismatchError{Strategy: name, Index: i, Channel: "R", Got: ch.R[i], Want: r}
	case ch.G[i] != g:
		return &MismatchError{Strategy: name, Index: i, Channel: "G", Got: ch.G[i], Want: g}
	case ch.B[i] != b:
		return &MismatchError{Strategy: name, Index: i, Channel: "B", Got: ch.B[i], Want: b}
	}
	return nil
}
