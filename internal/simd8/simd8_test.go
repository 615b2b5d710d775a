package simd8

import "testing"

func TestIota(t *testing.T) {
	v := Iota()
	for i, lane := range v {
		if lane != int32(i) {
			t.Errorf("lane %d = %d, want %d", i, lane, i)
		}
	}
}

func TestBroadcast(t *testing.T) {
	for i, lane := range BroadcastInt32(128) {
		if lane != 128 {
			t.Errorf("int lane %d = %d, want 128", i, lane)
		}
	}
	for i, lane := range BroadcastFloat32(0.5) {
		if lane != 0.5 {
			t.Errorf("float lane %d = %v, want 0.5", i, lane)
		}
	}
}

func TestAddAndWrap(t *testing.T) {
	v := BroadcastInt32(4).Add(Iota())
	want := Int32x8{4, 5, 6, 7, 8, 9, 10, 11}
	if v != want {
		t.Fatalf("Add = %v, want %v", v, want)
	}

	tests := []struct {
		limit int32
		want  Int32x8
	}{
		{6, Int32x8{4, 5, 0, 1, 2, 3, 4, 5}},
		{4, Int32x8{0, 1, 2, 3, 0, 1, 2, 3}},
		{100, want},
	}
	for _, tt := range tests {
		if got := v.Wrap(tt.limit); got != tt.want {
			t.Errorf("Wrap(%d) = %v, want %v", tt.limit, got, tt.want)
		}
	}
}

func TestConvertAndMultiply(t *testing.T) {
	f := Iota().ToFloat32().Mul(BroadcastFloat32(2.75))
	got := f.TruncToInt32()
	want := Int32x8{0, 2, 5, 8, 11, 13, 16, 19}
	if got != want {
		t.Errorf("TruncToInt32 = %v, want %v", got, want)
	}

	neg := Float32x8{-1.5, -0.5, 0.5, 1.5, -2.9, 2.9, 0, -0}.TruncToInt32()
	if neg != (Int32x8{-1, 0, 0, 1, -2, 2, 0, 0}) {
		t.Errorf("truncation toward zero failed: %v", neg)
	}
}

func TestStore(t *testing.T) {
	v := Int32x8{9, 8, 7, 6, 5, 4, 3, 2}
	dst := make([]int32, 10)
	v.Store(dst[1:])

	for i := 0; i < Lanes; i++ {
		if dst[i+1] != v[i] {
			t.Errorf("dst[%d] = %d, want %d", i+1, dst[i+1], v[i])
		}
	}
	if dst[0] != 0 || dst[9] != 0 {
		t.Error("Store wrote outside dst[0:8]")
	}
}

func TestScale(t *testing.T) {
	got := Iota().Scale(256)
	want := Int32x8{0, 256, 512, 768, 1024, 1280, 1536, 1792}
	if got != want {
		t.Errorf("Scale(256) = %v, want %v", got, want)
	}
}

func TestFixQuotient(t *testing.T) {
	// num = 256*i for i in 40..47, den = 4*82 = 328.
	num := BroadcastInt32(40).Add(Iota()).Scale(256)
	var want Int32x8
	for i := range want {
		want[i] = num[i] / 328
	}

	tests := []struct {
		name string
		q    Int32x8
	}{
		{"exact", want},
		{"one low", want.Add(BroadcastInt32(-1))},
		{"one high", want.Add(BroadcastInt32(1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.FixQuotient(num, 328); got != want {
				t.Errorf("FixQuotient = %v, want %v", got, want)
			}
		})
	}
}

func TestFixQuotientExactMultiple(t *testing.T) {
	// 256*41 = 10496 = 32*328: a float multiply can land just below 32.
	num := BroadcastInt32(10496)
	got := BroadcastInt32(31).FixQuotient(num, 328)
	if got != BroadcastInt32(32) {
		t.Errorf("FixQuotient = %v, want all 32", got)
	}
}

func TestStoreShortSlicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Store into a 7-element slice should panic")
		}
	}()
	Iota().Store(make([]int32, 7))
}

func BenchmarkPipeline(b *testing.B) {
	dst := make([]int32, Lanes)
	scale := BroadcastFloat32(256.0 / 1920.0)
	for i := 0; i < b.N; i++ {
		idx := BroadcastInt32(int32(i & 1023)).Add(Iota())
		idx.ToFloat32().Mul(scale).TruncToInt32().FixQuotient(idx.Scale(256), 1920).Store(dst)
	}
}
