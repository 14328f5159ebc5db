// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support copy-based block extraction (Block) and block insertion (SetBlock),
//     which the divide-and-conquer kernels use to split operands into quadrants.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot kernels: operate on RawData() directly.
//   - Use Block(r0,c0,h,w) to materialize a submatrix with an independent lifetime.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Block/SetBlock: O(h*w).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxBlock    = "Block"    // ctor tag for Dense.Block
	ctxSetBlock = "SetBlock" // tag for Dense.SetBlock
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//   - Stage 2: return wrapped error.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Public constructor forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Inputs:
//   - rows: positive number of rows
//   - cols: positive number of columns
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom wraps an existing row-major buffer without copying.
// The Dense takes ownership of data; the caller must not retain or mutate it.
//
// Errors:
//   - ErrInvalidDimensions if rows<=0, cols<=0 or len(data) != rows*cols.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// FromRows builds a Dense from a rectangular slice of rows (copying the values).
//
// Errors:
//   - ErrInvalidDimensions for an empty input or empty first row.
//   - ErrDimensionMismatch for ragged rows.
//   - ErrNaNInf for non-finite values.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("FromRows: row %d: %w", i, ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols). No side effects.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// RawData exposes the row-major backing buffer (len == Rows()*Cols()).
// It is meant for hot kernels that read operands; writing through the slice
// mutates the matrix and bypasses the numeric policy of Set.
// Complexity: O(1).
func (m *Dense) RawData() []float64 { return m.data }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
//
// Errors:
//   - ErrOutOfRange wrapped with "Dense.At(row,col)".
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Only finite values are accepted.
//
// Errors:
//   - ErrOutOfRange, ErrNaNInf wrapped with "Dense.Set(row,col)".
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	return m.clone()
}

func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Block copies the rows×cols window starting at (r0, c0) into a new Dense.
//
// Implementation:
//   - Stage 1: validate the window lies inside the matrix.
//   - Stage 2: copy row segments with the built-in copy (one memmove per row).
//
// Errors:
//   - ErrInvalidDimensions for non-positive window sizes.
//   - ErrOutOfRange when the window exceeds the bounds.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func (m *Dense) Block(r0, c0, rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, denseErrorf(ctxBlock, r0, c0, ErrInvalidDimensions)
	}
	if r0 < 0 || c0 < 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, denseErrorf(ctxBlock, r0, c0, ErrOutOfRange)
	}
	out := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
	var i, src int
	for i = 0; i < rows; i++ {
		src = (r0+i)*m.c + c0
		copy(out.data[i*cols:(i+1)*cols], m.data[src:src+cols])
	}

	return out, nil
}

// SetBlock writes src into m with its top-left corner at (r0, c0).
//
// Errors:
//   - ErrNilMatrix when src is nil.
//   - ErrOutOfRange when src does not fit.
//
// Complexity:
//   - Time O(src.r*src.c), Space O(1).
func (m *Dense) SetBlock(r0, c0 int, src *Dense) error {
	if src == nil {
		return denseErrorf(ctxSetBlock, r0, c0, ErrNilMatrix)
	}
	if r0 < 0 || c0 < 0 || r0+src.r > m.r || c0+src.c > m.c {
		return denseErrorf(ctxSetBlock, r0, c0, ErrOutOfRange)
	}
	var i, dst int
	for i = 0; i < src.r; i++ {
		dst = (r0+i)*m.c + c0
		copy(m.data[dst:dst+src.c], src.data[i*src.c:(i+1)*src.c])
	}

	return nil
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
