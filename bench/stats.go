// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the timings of one cell in seconds.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64 // sample (n-1) standard deviation; NaN when N < 2
	Min    float64
	Max    float64
}

// Summarize computes a Summary over durations. An empty input yields N=0 and
// NaN statistics.
//
// Complexity: O(n) time, O(n) space for the seconds slice.
func Summarize(durations []time.Duration) Summary {
	if len(durations) == 0 {
		nan := math.NaN()
		return Summary{Mean: nan, StdDev: nan, Min: nan, Max: nan}
	}
	secs := make([]float64, len(durations))
	for i, d := range durations {
		secs[i] = d.Seconds()
	}

	s := Summary{
		N:      len(secs),
		Mean:   stat.Mean(secs, nil),
		StdDev: math.NaN(),
		Min:    floats.Min(secs),
		Max:    floats.Max(secs),
	}
	if s.N >= 2 {
		s.StdDev = stat.StdDev(secs, nil)
	}

	return s
}

// String renders the summary on one line, e.g. "n=5 mean=0.81s sd=0.012s min=0.8s max=0.83s".
func (s Summary) String() string {
	return fmt.Sprintf("n=%d mean=%.6gs sd=%.3gs min=%.6gs max=%.6gs", s.N, s.Mean, s.StdDev, s.Min, s.Max)
}
