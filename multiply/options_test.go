// SPDX-License-Identifier: MIT
package multiply_test

import (
	"testing"

	"github.com/katalvlaran/mmbench/multiply"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	o := multiply.New().Options()
	require.Equal(t, multiply.DefaultBlockSize, o.BlockSize())
	require.Equal(t, multiply.DefaultLeafThreshold, o.LeafThreshold())
	require.Equal(t, multiply.PadNone, o.Padding())
}

func TestOptionsLastWins(t *testing.T) {
	o := multiply.New(multiply.WithBlockSize(8), multiply.WithBlockSize(32), nil).Options()
	require.Equal(t, 32, o.BlockSize())
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { multiply.WithBlockSize(0) })
	require.Panics(t, func() { multiply.WithLeafThreshold(-1) })
	require.Panics(t, func() { multiply.WithPadding(multiply.Padding(9)) })
}

func TestParsePadding(t *testing.T) {
	p, err := multiply.ParsePadding(" POW2 ")
	require.NoError(t, err)
	require.Equal(t, multiply.PadPowerOfTwo, p)
	require.Equal(t, "pow2", p.String())

	_, err = multiply.ParsePadding("mirror")
	require.ErrorIs(t, err, multiply.ErrInvalidConfiguration)
}

func TestParseAlgorithm(t *testing.T) {
	for _, alg := range multiply.Algorithms() {
		got, err := multiply.ParseAlgorithm(alg.String())
		require.NoError(t, err)
		require.Equal(t, alg, got)
	}

	got, err := multiply.ParseAlgorithm("BLAS")
	require.NoError(t, err)
	require.Equal(t, multiply.Reference, got)

	_, err = multiply.ParseAlgorithm("winograd")
	require.ErrorIs(t, err, multiply.ErrUnknownAlgorithm)
	require.Equal(t, "algorithm(7)", multiply.Algorithm(7).String())
}
