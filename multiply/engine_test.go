// SPDX-License-Identifier: MIT
package multiply_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/mmbench/matrix"
	"github.com/katalvlaran/mmbench/multiply"
	"github.com/stretchr/testify/require"
)

// TestKnownProduct checks every strategy on a hand-computed 2×3 · 3×2 product.
func TestKnownProduct(t *testing.T) {
	a, err := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	b, err := matrix.FromRows([][]float64{{7, 8}, {9, 10}, {11, 12}})
	require.NoError(t, err)

	for _, alg := range multiply.Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			c, err := multiply.Multiply(a, b, alg)
			require.NoError(t, err)
			require.Equal(t, []float64{58, 64, 139, 154}, c.RawData())
		})
	}
}

// TestVariantsAgree compares every strategy with naive on random square inputs.
func TestVariantsAgree(t *testing.T) {
	eng := multiply.New(multiply.WithBlockSize(16), multiply.WithLeafThreshold(16))
	for _, n := range []int{1, 16, 64, 128} {
		a := randn(t, n, n, int64(n))
		b := randn(t, n, n, int64(n)+1000)
		want, err := eng.Multiply(a, b, multiply.Naive)
		require.NoError(t, err)

		for _, alg := range multiply.Algorithms() {
			t.Run(fmt.Sprintf("n=%d/%s", n, alg), func(t *testing.T) {
				got, err := eng.Multiply(a, b, alg)
				require.NoError(t, err)
				requireClose(t, got, want)
			})
		}
	}
}

// TestRectangular covers n×p · p×m for the strategies without size policy.
func TestRectangular(t *testing.T) {
	a := randn(t, 13, 29, 1)
	b := randn(t, 29, 7, 2)
	want, err := multiply.Multiply(a, b, multiply.Naive)
	require.NoError(t, err)
	require.Equal(t, 13, want.Rows())
	require.Equal(t, 7, want.Cols())

	for _, alg := range []multiply.Algorithm{multiply.Blocked, multiply.Reference, multiply.Strassen} {
		got, err := multiply.Multiply(a, b, alg, multiply.WithBlockSize(5))
		require.NoError(t, err, alg.String())
		requireClose(t, got, want)
	}
}

// TestDimensionMismatch ensures every strategy rejects incompatible shapes.
func TestDimensionMismatch(t *testing.T) {
	a := randn(t, 3, 4, 1)
	b := randn(t, 3, 4, 2)
	for _, alg := range multiply.Algorithms() {
		_, err := multiply.Multiply(a, b, alg)
		require.ErrorIs(t, err, multiply.ErrDimensionMismatch)
		require.Contains(t, err.Error(), "multiply."+alg.String())
	}
}

// TestNilAndUnknown covers nil operands and an out-of-range tag.
func TestNilAndUnknown(t *testing.T) {
	a := randn(t, 2, 2, 1)

	_, err := multiply.Multiply(nil, a, multiply.Naive)
	require.ErrorIs(t, err, multiply.ErrNilMatrix)

	_, err = multiply.Multiply(a, a, multiply.Algorithm(42))
	require.ErrorIs(t, err, multiply.ErrUnknownAlgorithm)
}

// TestOperandsUntouched verifies that no strategy writes into its inputs.
func TestOperandsUntouched(t *testing.T) {
	a := randn(t, 32, 32, 5)
	b := randn(t, 32, 32, 6)
	aCopy := append([]float64(nil), a.RawData()...)
	bCopy := append([]float64(nil), b.RawData()...)

	for _, alg := range multiply.Algorithms() {
		c, err := multiply.Multiply(a, b, alg, multiply.WithLeafThreshold(4), multiply.WithBlockSize(8))
		require.NoError(t, err)
		require.NotSame(t, a, c)
		require.NotSame(t, b, c)
	}
	require.Equal(t, aCopy, a.RawData())
	require.Equal(t, bCopy, b.RawData())
}

// TestNonDenseOperands goes through the copying fallback.
func TestNonDenseOperands(t *testing.T) {
	a := randn(t, 8, 8, 11)
	b := randn(t, 8, 8, 12)
	want, err := multiply.Multiply(a, b, multiply.Reference)
	require.NoError(t, err)

	got, err := multiply.Multiply(hide{a}, hide{b}, multiply.Blocked)
	require.NoError(t, err)
	requireClose(t, got, want)
}

// TestEndToEndFourByFour generates seeded 4×4 operands and checks all four
// strategies against the naive-derived expected matrix.
func TestEndToEndFourByFour(t *testing.T) {
	a := randn(t, 4, 4, 2025)
	b := randn(t, 4, 4, 2026)
	want, err := multiply.Multiply(a, b, multiply.Naive)
	require.NoError(t, err)

	eng := multiply.New(multiply.WithLeafThreshold(1), multiply.WithBlockSize(3))
	for _, alg := range multiply.Algorithms() {
		got, err := eng.Multiply(a, b, alg)
		require.NoError(t, err)
		ok, err := matrix.AllClose(got, want, 1e-12, 1e-12)
		require.NoError(t, err)
		require.True(t, ok, alg.String())
	}
}
