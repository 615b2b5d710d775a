package bench

import (
	"testing"
	"time"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		samples []time.Duration
		want    Stats
	}{
		{"single", []time.Duration{42}, Stats{Min: 42, Mean: 42, Max: 42}},
		{"several", []time.Duration{30, 10, 20, 40}, Stats{Min: 10, Mean: 25, Max: 40}},
		{"truncating mean", []time.Duration{1, 2}, Stats{Min: 1, Mean: 1, Max: 2}},
		{"empty", nil, Stats{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summarize(tt.samples); got != tt.want {
				t.Errorf("Summarize = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSpeedup(t *testing.T) {
	if got := Speedup(100, 25); got != 400.0 {
		t.Errorf("Speedup(100, 25) = %v, want 400", got)
	}
	if got := Speedup(100, 100); got != 100.0 {
		t.Errorf("Speedup(100, 100) = %v, want 100", got)
	}
	if got := Speedup(100, 0); got != 0 {
		t.Errorf("Speedup(100, 0) = %v, want 0", got)
	}
}
