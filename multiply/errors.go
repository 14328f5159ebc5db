// SPDX-License-Identifier: MIT
// Package multiply: sentinel errors.
//
// Error policy:
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w (see multiplyErrorf).

package multiply

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mmbench/matrix"
)

// ErrDimensionMismatch indicates that A.Cols != B.Rows.
// It is the matrix package sentinel re-exported so callers need only one import.
var ErrDimensionMismatch = matrix.ErrDimensionMismatch

// ErrNilMatrix indicates a nil operand.
var ErrNilMatrix = matrix.ErrNilMatrix

// ErrInvalidConfiguration indicates that the engine options cannot serve the
// requested operand sizes.
var ErrInvalidConfiguration = errors.New("multiply: invalid configuration")

// ErrInvalidSize indicates that Strassen received a size it cannot halve down
// to the leaf threshold while no padding policy is configured.
// errors.Is(ErrInvalidSize, ErrInvalidConfiguration) holds.
var ErrInvalidSize = fmt.Errorf("%w: strassen size not halvable to leaf threshold", ErrInvalidConfiguration)

// ErrUnknownAlgorithm indicates an Algorithm value or label outside the known set.
var ErrUnknownAlgorithm = errors.New("multiply: unknown algorithm")

// multiplyErrorf wraps err with the algorithm label, e.g. "multiply.strassen: ...".
func multiplyErrorf(alg Algorithm, err error) error {
	return fmt.Errorf("multiply.%s: %w", alg, err)
}
