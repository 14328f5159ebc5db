// SPDX-License-Identifier: MIT

// Package store generates, persists and reloads the square operand pairs that
// every benchmark run multiplies.
//
// What:
//   - Generate(n, seed) draws A and B with standard-normal entries. A comes
//     from stream 0 and B from stream 1 of a seed-derived family, so the pair
//     is bit-identical for identical (n, seed) on every platform.
//   - Save / Load dispatch on the file extension:
//     .bin  canonical binary encoding (gonum mat.Dense wire format);
//     .csv  text fallback, one comma-separated row per line.
//   - Paths(dir, n) names the pair as A_<n>.<ext>, B_<n>.<ext>; LoadPair
//     prefers the binary files and falls back to CSV.
//
// Errors:
//   - ErrNotFound  neither encoding exists for a requested matrix.
//   - ErrFormat    unknown extension or malformed payload.
//   - ErrShape     the payload is not the requested n×n.
//
// Concurrency:
//   - Generate fills A and B on two goroutines (errgroup). Everything else
//     is sequential and blocking.
package store
