// SPDX-License-Identifier: MIT
// Package multiply_test: shared fixtures.
//
// Purpose:
//   • Deterministic, well-conditioned random operands (standard normal entries).
//   • A single tolerance policy for cross-strategy agreement.

package multiply_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mmbench/matrix"
	"github.com/stretchr/testify/require"
)

// relTol bounds the normwise relative difference between two strategies.
const relTol = 1e-9

// randn returns an r×c Dense with N(0,1) entries from a seeded source.
func randn(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err)

	return m
}

// requireClose asserts MaxRelDiff(got, want) < relTol.
func requireClose(t testing.TB, got, want *matrix.Dense) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	d, err := matrix.MaxRelDiff(got, want)
	require.NoError(t, err)
	require.Less(t, d, relTol)
}

// hide masks the concrete *Dense type to force the copying fallback.
type hide struct{ matrix.Matrix }
