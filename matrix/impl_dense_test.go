// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mmbench/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseFrom checks the ownership constructor and its length guard.
func TestNewDenseFrom(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	m, err := matrix.NewDenseFrom(2, 3, data)
	require.NoError(t, err)
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)

	_, err = matrix.NewDenseFrom(2, 2, data)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestFromRowsRagged ensures ragged input is rejected.
func TestFromRowsRagged(t *testing.T) {
	_, err := matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestSetRejectsNonFinite verifies the numeric policy of Set.
func TestSetRejectsNonFinite(t *testing.T) {
	m := MustDense(t, 1, 1)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 0}, {0, 2}})

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal)

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal)
}

// TestBlockRoundTrip copies each quadrant out and writes it back into a fresh matrix.
func TestBlockRoundTrip(t *testing.T) {
	src := RandDense(t, 6, 6, 3)
	dst := MustDense(t, 6, 6)

	for _, rc := range [][2]int{{0, 0}, {0, 3}, {3, 0}, {3, 3}} {
		q, err := src.Block(rc[0], rc[1], 3, 3)
		require.NoError(t, err)
		require.NoError(t, dst.SetBlock(rc[0], rc[1], q))
	}
	require.Equal(t, src.RawData(), dst.RawData())
}

// TestBlockBounds checks window validation for Block and SetBlock.
func TestBlockBounds(t *testing.T) {
	m := MustDense(t, 4, 4)

	_, err := m.Block(2, 2, 3, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Block(0, 0, 0, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	require.ErrorIs(t, m.SetBlock(3, 3, MustDense(t, 2, 2)), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetBlock(0, 0, nil), matrix.ErrNilMatrix)
}

// TestString renders a small matrix row by row.
func TestString(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4.5}})
	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}
