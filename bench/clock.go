// SPDX-License-Identifier: MIT

package bench

import "time"

// Clock abstracts the monotonic time source so tests can fake elapsed times.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// SystemClock reads the wall clock; time.Now carries a monotonic reading, so
// Since is immune to clock adjustments.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// Since returns time.Since(t).
func (SystemClock) Since(t time.Time) time.Duration { return time.Since(t) }
