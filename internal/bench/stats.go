package bench

import "time"

// Stats summarizes the samples of one strategy.
type Stats struct {
	Min  time.Duration `json:"minNs"`
	Mean time.Duration `json:"meanNs"`
	Max  time.Duration `json:"maxNs"`
}

// Summarize returns the minimum, mean and maximum of samples. The mean is
// the sum divided by the sample count. An empty slice yields zero Stats.
func Summarize(samples []time.Duration) Stats {
	if len(samples) == 0 {
		return Stats{}
	}

	s := Stats{Min: samples[0], Max: samples[0]}
	var sum time.Duration
	for _, d := range samples {
		sum += d
		s.Min = min(s.Min, d)
		s.Max = max(s.Max, d)
	}
	s.Mean = sum / time.Duration(len(samples))
	return s
}

// Speedup returns baseline/candidate*100, the candidate's speed relative to
// the baseline in percent. It returns 0 if candidate is not positive.
func Speedup(baseline, candidate time.Duration) float64 {
	if candidate <= 0 {
		return 0
	}
	return float64(baseline) / float64(candidate) * 100
}
