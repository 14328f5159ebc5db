// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points over the canonical
//     constructors.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense; the padding path of Strassen uses it to
// build the zero canvas operands are embedded into.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}
