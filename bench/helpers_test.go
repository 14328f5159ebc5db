// SPDX-License-Identifier: MIT
package bench_test

import (
	"bufio"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// stepClock advances by step on every Since call, so rep k lasts k*step.
type stepClock struct {
	step  time.Duration
	calls int
}

func (c *stepClock) Now() time.Time { return time.Time{} }

func (c *stepClock) Since(time.Time) time.Duration {
	c.calls++
	return time.Duration(c.calls) * c.step
}

// readLines returns the lines of path without trailing newlines.
func readLines(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	require.NoError(t, sc.Err())

	return lines
}
