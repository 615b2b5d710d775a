package raster

import (
	"errors"
	"testing"
)

func TestVerifyAcceptsEveryStrategy(t *testing.T) {
	for _, s := range All(Options{Workers: 4}) {
		ch := generate(t, s, 16, 16)
		if err := Verify(s, 16, 16, ch); err != nil {
			t.Errorf("%s: %v", s.Name(), err)
		}
	}
}

func TestVerifyReportsFirstMismatch(t *testing.T) {
	s := NewScalar()
	ch := generate(t, s, 4, 8)
	ch.G[13]++
	ch.R[20] = 99

	err := Verify(s, 4, 8, ch)
	if !errors.Is(err, ErrMismatch) {
		t.Fatalf("Verify error = %v, want ErrMismatch", err)
	}
	var mm *MismatchError
	if !errors.As(err, &mm) {
		t.Fatalf("Verify error %T is not *MismatchError", err)
	}
	if mm.Index != 13 || mm.Channel != "G" {
		t.Errorf("mismatch at %d/%s, want 13/G", mm.Index, mm.Channel)
	}
}

func TestVerifyApproxRejectsExactOutput(t *testing.T) {
	// Scalar output differs from the broadcast value inside each block.
	ch := generate(t, NewScalar(), 2, 4)
	err := Verify(NewApproxVector(Options{}), 2, 4, ch)
	if !errors.Is(err, ErrMismatch) {
		t.Errorf("Verify error = %v, want ErrMismatch", err)
	}
}

func TestVerifyShortChannels(t *testing.T) {
	if err := Verify(NewScalar(), 4, 4, NewChannels(8)); err == nil {
		t.Error("Verify should reject channels shorter than the image")
	}
}
