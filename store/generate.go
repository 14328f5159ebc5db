// SPDX-License-Identifier: MIT

package store

import (
	"fmt"

	"github.com/katalvlaran/mmbench/matrix"
	"golang.org/x/sync/errgroup"
)

// DefaultSeed is the generation seed of the stock matrix files.
const DefaultSeed int64 = 2025

// Generate draws the n×n operand pair for seed.
//
// Implementation:
//   - Stage 1: validate n ≥ 1.
//   - Stage 2: fill A (stream 0) and B (stream 1) concurrently; each goroutine
//     owns its generator and its buffer.
//
// Errors:
//   - matrix.ErrInvalidDimensions when n < 1.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Generate(n int, seed int64) (a, b *matrix.Dense, err error) {
	if n < 1 {
		return nil, nil, fmt.Errorf("store.Generate(n=%d): %w", n, matrix.ErrInvalidDimensions)
	}

	var g errgroup.Group
	g.Go(func() (gerr error) {
		a, gerr = normal(n, seed, streamA)
		return gerr
	})
	g.Go(func() (gerr error) {
		b, gerr = normal(n, seed, streamB)
		return gerr
	})
	if err = g.Wait(); err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// normal fills an n×n matrix with N(0,1) draws from one stream.
func normal(n int, seed int64, stream uint64) (*matrix.Dense, error) {
	rng := newStream(seed, stream)
	data := make([]float64, n*n)
	for i := range data {
		data[i] = rng.NormFloat64()
	}

	return matrix.NewDenseFrom(n, n, data)
}
