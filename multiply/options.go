// SPDX-License-Identifier: MIT

// Package multiply: functional configuration for the Engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies options in order.
//
// Design goals:
//   - Deterministic behavior: no global state; block size and leaf threshold
//     travel with the Engine instead of living in process-wide constants.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package multiply

import (
	"fmt"
	"strings"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultBlockSize is the tile edge of the Blocked strategy.
	DefaultBlockSize = 64

	// DefaultLeafThreshold is the order at or below which Strassen stops
	// recursing and multiplies directly with the Reference kernel.
	DefaultLeafThreshold = 64

	// DefaultPadding keeps Strassen fail-fast on sizes it cannot halve.
	DefaultPadding = PadNone
)

// Padding selects how Strassen handles orders that are not halvable down to
// the leaf threshold.
type Padding int

const (
	// PadNone rejects such sizes with ErrInvalidSize.
	PadNone Padding = iota
	// PadPowerOfTwo zero-embeds operands into the next power-of-two square.
	PadPowerOfTwo
)

var paddingNames = [...]string{
	PadNone:       "none",
	PadPowerOfTwo: "pow2",
}

// String returns the configuration label of p.
func (p Padding) String() string {
	if p < PadNone || int(p) >= len(paddingNames) {
		return fmt.Sprintf("padding(%d)", int(p))
	}

	return paddingNames[p]
}

// ParsePadding resolves "none" or "pow2" (case-insensitive).
func ParsePadding(s string) (Padding, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range paddingNames {
		if name == key {
			return Padding(i), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown padding %q", ErrInvalidConfiguration, s)
}

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicBlockSizeInvalid     = "multiply: WithBlockSize: size must be >= 1"
	panicLeafThresholdInvalid = "multiply: WithLeafThreshold: threshold must be >= 1"
	panicPaddingInvalid       = "multiply: WithPadding: unknown padding policy"
)

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; read them through the accessors.
type Options struct {
	blockSize     int     // >= 1; DefaultBlockSize
	leafThreshold int     // >= 1; DefaultLeafThreshold
	padding       Padding // DefaultPadding
}

// WithBlockSize sets the Blocked tile edge. Panics if size < 1.
func WithBlockSize(size int) Option {
	if size < 1 {
		panic(panicBlockSizeInvalid)
	}

	return func(o *Options) { o.blockSize = size }
}

// WithLeafThreshold sets the Strassen recursion cutoff. Panics if threshold < 1.
func WithLeafThreshold(threshold int) Option {
	if threshold < 1 {
		panic(panicLeafThresholdInvalid)
	}

	return func(o *Options) { o.leafThreshold = threshold }
}

// WithPadding sets the Strassen size policy. Panics on an undeclared value.
func WithPadding(p Padding) Option {
	if p != PadNone && p != PadPowerOfTwo {
		panic(panicPaddingInvalid)
	}

	return func(o *Options) { o.padding = p }
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		blockSize:     DefaultBlockSize,
		leafThreshold: DefaultLeafThreshold,
		padding:       DefaultPadding,
	}
}

// gatherOptions applies opts over the defaults, in order.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// BlockSize returns the Blocked tile edge.
func (o Options) BlockSize() int { return o.blockSize }

// LeafThreshold returns the Strassen recursion cutoff.
func (o Options) LeafThreshold() int { return o.leafThreshold }

// Padding returns the Strassen size policy.
func (o Options) Padding() Padding { return o.padding }
