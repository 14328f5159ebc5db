// SPDX-License-Identifier: MIT

package multiply

import "github.com/katalvlaran/mmbench/matrix"

// kernel is the common shape of every strategy. Operands are validated and
// already converted to *matrix.Dense when a kernel runs.
type kernel func(e *Engine, a, b *matrix.Dense) (*matrix.Dense, error)

// kernels is the tagged-variant dispatch table, indexed by Algorithm.
var kernels = [...]kernel{
	Naive:     func(_ *Engine, a, b *matrix.Dense) (*matrix.Dense, error) { return naive(a, b) },
	Blocked:   func(e *Engine, a, b *matrix.Dense) (*matrix.Dense, error) { return blocked(a, b, e.opts.blockSize) },
	Strassen:  (*Engine).strassen,
	Reference: func(_ *Engine, a, b *matrix.Dense) (*matrix.Dense, error) { return reference(a, b) },
}

// Engine multiplies matrices with a configurable strategy.
// An Engine is immutable after New and safe for concurrent use.
type Engine struct {
	opts Options
}

// New returns an Engine configured by opts over DefaultOptions.
func New(opts ...Option) *Engine {
	return &Engine{opts: gatherOptions(opts...)}
}

// Options returns the effective configuration.
func (e *Engine) Options() Options { return e.opts }

// Multiply computes C = A·B with the selected strategy.
//
// Implementation:
//   - Stage 1: reject unknown algorithms, nil operands and A.Cols != B.Rows.
//   - Stage 2: view both operands as *matrix.Dense (copying non-Dense inputs).
//   - Stage 3: dispatch through the kernels table.
//
// Inputs:
//   - a: n×p operand, b: p×m operand. Neither is mutated.
//   - alg: strategy tag.
//
// Returns:
//   - *matrix.Dense: freshly allocated n×m product.
//
// Errors:
//   - ErrUnknownAlgorithm, ErrNilMatrix, ErrDimensionMismatch,
//     ErrInvalidSize (Strassen without padding on a non-halvable size).
//     All wrapped as "multiply.<alg>: ...".
//
// Complexity:
//   - See the individual strategies; validation is O(1).
func (e *Engine) Multiply(a, b matrix.Matrix, alg Algorithm) (*matrix.Dense, error) {
	if !alg.Valid() {
		return nil, multiplyErrorf(alg, ErrUnknownAlgorithm)
	}
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, multiplyErrorf(alg, err)
	}
	da, err := matrix.AsDense(a)
	if err != nil {
		return nil, multiplyErrorf(alg, err)
	}
	db, err := matrix.AsDense(b)
	if err != nil {
		return nil, multiplyErrorf(alg, err)
	}

	c, err := kernels[alg](e, da, db)
	if err != nil {
		return nil, multiplyErrorf(alg, err)
	}

	return c, nil
}

// Multiply is a convenience wrapper for New(opts...).Multiply(a, b, alg).
func Multiply(a, b matrix.Matrix, alg Algorithm, opts ...Option) (*matrix.Dense, error) {
	return New(opts...).Multiply(a, b, alg)
}
