package contention

import (
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
)

// Summary condenses latency samples, in nanoseconds.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean_ns"`
	StdDev float64 `json:"stddev_ns"`
	P50    float64 `json:"p50_ns"`
	P99    float64 `json:"p99_ns"`
	Max    float64 `json:"max_ns"`
}

// Summarize sorts samples in place and reports their distribution. An
// empty input yields the zero Summary; a single sample has no spread.
func Summarize(samples []float64) Summary {
	if len(samples) == 0 {
		return Summary{}
	}
	slices.Sort(samples)

	s := Summary{
		Count: len(samples),
		Mean:  stat.Mean(samples, nil),
		P50:   stat.Quantile(0.50, stat.Empirical, samples, nil),
		P99:   stat.Quantile(0.99, stat.Empirical, samples, nil),
		Max:   samples[len(samples)-1],
	}
	if len(samples) > 1 {
		s.StdDev = stat.StdDev(samples, nil)
	}
	return s
}
