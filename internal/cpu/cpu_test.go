package cpu

import (
	"runtime"
	"testing"
)

func TestDetect(t *testing.T) {
	f := Detect()
	if f.Architecture != runtime.GOARCH {
		t.Errorf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}
	if f.NumCPU != runtime.NumCPU() {
		t.Errorf("NumCPU = %d, want %d", f.NumCPU, runtime.NumCPU())
	}
	if runtime.GOARCH == "amd64" && !f.HasSSE2 {
		t.Error("amd64 host should report SSE2")
	}
}

func TestForcedFeatures(t *testing.T) {
	SetForcedFeatures(Features{Architecture: "test", NumCPU: 3, HasAVX2: true})
	defer ResetForcedFeatures()

	f := Detect()
	if f.Architecture != "test" || f.NumCPU != 3 {
		t.Fatalf("forced features not returned: %+v", f)
	}
	if !f.Has256BitLanes() {
		t.Error("AVX2 host should have 256-bit lanes")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		f    Features
		want string
	}{
		{Features{Architecture: "amd64", HasSSE2: true, HasAVX: true, HasAVX2: true}, "amd64 (SSE2, AVX, AVX2)"},
		{Features{Architecture: "arm64", HasNEON: true}, "arm64 (NEON)"},
		{Features{Architecture: "riscv64"}, "riscv64 (none)"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
