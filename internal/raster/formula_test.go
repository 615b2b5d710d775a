package raster

import "testing"

func TestPixelTwoByFour(t *testing.T) {
	wantRed := []int32{0, 0, 0, 0, 32, 32, 32, 32}
	wantGreen := []int32{0, 64, 128, 192, 0, 64, 128, 192}

	for i := 0; i < 8; i++ {
		r, g, b := Pixel(i, 2, 4)
		if r != wantRed[i] {
			t.Errorf("red[%d] = %d, want %d", i, r, wantRed[i])
		}
		if g != wantGreen[i] {
			t.Errorf("green[%d] = %d, want %d", i, g, wantGreen[i])
		}
		if b != Blue {
			t.Errorf("blue[%d] = %d, want %d", i, b, Blue)
		}
	}
}

func TestPixelTruncatesEachDivision(t *testing.T) {
	// (256*5/3)/7 = 426/7
	r, _, _ := Pixel(5, 7, 3)
	if r != 60 {
		t.Errorf("red = %d, want 60", r)
	}
}

func TestRedMonotonic(t *testing.T) {
	for _, dims := range [][2]int{{2, 4}, {9, 40}, {108, 192}} {
		rows, cols := dims[0], dims[1]
		prev := int32(-1)
		for i := 0; i < rows*cols; i++ {
			r, _, _ := Pixel(i, rows, cols)
			if r < prev {
				t.Fatalf("%dx%d: red decreases at %d (%d < %d)", rows, cols, i, r, prev)
			}
			if r > MaxValue {
				t.Fatalf("%dx%d: red[%d] = %d exceeds %d", rows, cols, i, r, MaxValue)
			}
			prev = r
		}
	}
}

func TestGreenPeriodic(t *testing.T) {
	rows, cols := 6, 10
	for i := 0; i < rows*cols; i++ {
		_, g, _ := Pixel(i, rows, cols)
		_, g0, _ := Pixel(i%cols, rows, cols)
		if g != g0 {
			t.Errorf("green[%d] = %d, want %d (period %d)", i, g, g0, cols)
		}
		if i%cols == 0 && g != 0 {
			t.Errorf("green[%d] = %d, want 0 at row start", i, g)
		}
	}
}

func TestFillScalarRange(t *testing.T) {
	ch := NewChannels(8)
	fillScalar(2, 4, ch, 2, 6)

	for i := 0; i < 8; i++ {
		inside := i >= 2 && i < 6
		if inside != (ch.B[i] == Blue) {
			t.Errorf("pixel %d written = %v, want %v", i, ch.B[i] == Blue, inside)
		}
	}
}
