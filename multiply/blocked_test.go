// SPDX-License-Identifier: MIT
package multiply_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/mmbench/multiply"
	"github.com/stretchr/testify/require"
)

// TestBlockedInvariantToBlockSize reproduces the naive result for block sizes
// that divide n, do not divide n, equal n and exceed n.
func TestBlockedInvariantToBlockSize(t *testing.T) {
	const n = 100
	a := randn(t, n, n, 21)
	b := randn(t, n, n, 22)
	want, err := multiply.Multiply(a, b, multiply.Naive)
	require.NoError(t, err)

	for _, bs := range []int{1, 7, 64, n, 2 * n} {
		t.Run(fmt.Sprintf("bs=%d", bs), func(t *testing.T) {
			got, err := multiply.Multiply(a, b, multiply.Blocked, multiply.WithBlockSize(bs))
			require.NoError(t, err)
			requireClose(t, got, want)
		})
	}
}

// TestBlockedEdgeClamp uses a shape where every dimension leaves a partial block.
func TestBlockedEdgeClamp(t *testing.T) {
	a := randn(t, 10, 11, 31)
	b := randn(t, 11, 9, 32)
	want, err := multiply.Multiply(a, b, multiply.Naive)
	require.NoError(t, err)

	got, err := multiply.Multiply(a, b, multiply.Blocked, multiply.WithBlockSize(4))
	require.NoError(t, err)
	requireClose(t, got, want)
}
