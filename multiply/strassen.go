// SPDX-License-Identifier: MIT

package multiply

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/mmbench/matrix"
)

// strassen computes C = A·B with Strassen's 7-product recursion.
//
// Implementation:
//   - Stage 1 (leaf): if every dimension is ≤ the leaf threshold, multiply
//     directly with the Reference kernel. Any rectangle qualifies.
//   - Stage 2 (size policy):
//     PadNone        → operands must be square (ValidateSquare) of one order that stays even
//     at every level above the threshold; otherwise ErrInvalidSize.
//     PadPowerOfTwo  → zero-embed into s×s, s = next power of two ≥ max(n,p,m),
//     recurse, crop the n×m top-left block.
//   - Stage 3 (recursion): see strassenSquare.
//
// Errors:
//   - ErrInvalidSize (wraps ErrInvalidConfiguration); for non-square operands
//     the cause matrix.ErrNonSquare is wrapped as well.
//
// Complexity:
//   - Time Θ(s^log2(7)) above the leaf; Space O(s²) per recursion level.
func (e *Engine) strassen(a, b *matrix.Dense) (*matrix.Dense, error) {
	leaf := e.opts.leafThreshold
	n, p := a.Shape()
	m := b.Cols()
	if n <= leaf && p <= leaf && m <= leaf {
		return reference(a, b)
	}

	switch e.opts.padding {
	case PadPowerOfTwo:
		s := nextPowerOfTwo(max(n, p, m))
		if n == s && p == s && m == s {
			return strassenSquare(a, b, leaf)
		}
		ap, err := embed(a, s)
		if err != nil {
			return nil, err
		}
		bp, err := embed(b, s)
		if err != nil {
			return nil, err
		}
		cp, err := strassenSquare(ap, bp, leaf)
		if err != nil {
			return nil, err
		}

		return cp.Block(0, 0, n, m)

	default:
		for _, op := range []*matrix.Dense{a, b} {
			if err := matrix.ValidateSquare(op); err != nil {
				return nil, fmt.Errorf("%w: operands %dx%d * %dx%d (padding=%s): %w",
					ErrInvalidSize, n, p, p, m, e.opts.padding, err)
			}
		}
		if err := checkHalvable(n, leaf); err != nil {
			return nil, err
		}

		return strassenSquare(a, b, leaf)
	}
}

// checkHalvable verifies that halving n repeatedly stays even until the order
// drops to the leaf threshold.
func checkHalvable(n, leaf int) error {
	for size := n; size > leaf; size /= 2 {
		if size%2 != 0 {
			return fmt.Errorf("%w: order %d reaches odd size %d above leaf threshold %d; use pow2 padding",
				ErrInvalidSize, n, size, leaf)
		}
	}

	return nil
}

// nextPowerOfTwo returns the smallest power of two ≥ n (n ≥ 1).
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}

// embed copies m into the top-left corner of a zero s×s matrix.
func embed(m *matrix.Dense, s int) (*matrix.Dense, error) {
	out, err := matrix.NewZeros(s, s)
	if err != nil {
		return nil, err
	}
	if err = out.SetBlock(0, 0, m); err != nil {
		return nil, err
	}

	return out, nil
}

// strassenSquare recurses on square operands of order n, which the caller has
// verified to stay even down to the leaf.
//
//	M1 = (A11 + A22)(B11 + B22)    C11 = M1 + M4 − M5 + M7
//	M2 = (A21 + A22) B11           C12 = M3 + M5
//	M3 = A11 (B12 − B22)           C21 = M2 + M4
//	M4 = A22 (B21 − B11)           C22 = M1 − M2 + M3 + M6
//	M5 = (A11 + A12) B22
//	M6 = (A21 − A11)(B11 + B12)
//	M7 = (A12 − A22)(B21 + B22)
func strassenSquare(a, b *matrix.Dense, leaf int) (*matrix.Dense, error) {
	n := a.Rows()
	if n <= leaf {
		return reference(a, b)
	}
	h := n / 2

	q := quadOps{leaf: leaf}
	a11, a12, a21, a22 := q.split(a, h)
	b11, b12, b21, b22 := q.split(b, h)

	m1 := q.mul(q.add(a11, a22), q.add(b11, b22))
	m2 := q.mul(q.add(a21, a22), b11)
	m3 := q.mul(a11, q.sub(b12, b22))
	m4 := q.mul(a22, q.sub(b21, b11))
	m5 := q.mul(q.add(a11, a12), b22)
	m6 := q.mul(q.sub(a21, a11), q.add(b11, b12))
	m7 := q.mul(q.sub(a12, a22), q.add(b21, b22))

	c11 := q.add(q.sub(q.add(m1, m4), m5), m7)
	c12 := q.add(m3, m5)
	c21 := q.add(m2, m4)
	c22 := q.add(q.add(q.sub(m1, m2), m3), m6)
	if q.err != nil {
		return nil, q.err
	}

	c, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	q.join(c, h, c11, c12, c21, c22)
	if q.err != nil {
		return nil, q.err
	}

	return c, nil
}

// quadOps carries the first error of a chain of quadrant operations; once set,
// every further step is a no-op returning nil.
type quadOps struct {
	leaf int
	err  error
}

func (q *quadOps) split(m *matrix.Dense, h int) (x11, x12, x21, x22 *matrix.Dense) {
	return q.block(m, 0, 0, h), q.block(m, 0, h, h), q.block(m, h, 0, h), q.block(m, h, h, h)
}

func (q *quadOps) block(m *matrix.Dense, r0, c0, h int) *matrix.Dense {
	if q.err != nil {
		return nil
	}
	var out *matrix.Dense
	out, q.err = m.Block(r0, c0, h, h)

	return out
}

func (q *quadOps) add(x, y *matrix.Dense) *matrix.Dense {
	if q.err != nil {
		return nil
	}
	var out *matrix.Dense
	out, q.err = matrix.Add(x, y)

	return out
}

func (q *quadOps) sub(x, y *matrix.Dense) *matrix.Dense {
	if q.err != nil {
		return nil
	}
	var out *matrix.Dense
	out, q.err = matrix.Sub(x, y)

	return out
}

func (q *quadOps) mul(x, y *matrix.Dense) *matrix.Dense {
	if q.err != nil {
		return nil
	}
	var out *matrix.Dense
	out, q.err = strassenSquare(x, y, q.leaf)

	return out
}

func (q *quadOps) join(c *matrix.Dense, h int, c11, c12, c21, c22 *matrix.Dense) {
	for _, part := range []struct {
		r0, c0 int
		src    *matrix.Dense
	}{{0, 0, c11}, {0, h, c12}, {h, 0, c21}, {h, h, c22}} {
		if q.err != nil {
			return
		}
		q.err = c.SetBlock(part.r0, part.c0, part.src)
	}
}
