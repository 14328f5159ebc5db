// SPDX-License-Identifier: MIT

package multiply

import (
	"fmt"
	"strings"
)

// Algorithm tags a multiplication strategy. The String form is the label
// written to the results log.
type Algorithm int

const (
	// Naive is the i→j→k triple loop; ground truth for correctness.
	Naive Algorithm = iota
	// Blocked is the cache-tiled triple loop.
	Blocked
	// Strassen is the recursive 7-product decomposition.
	Strassen
	// Reference delegates to an optimized BLAS dgemm.
	Reference
)

// algorithmNames is indexed by Algorithm; order matches the constants above.
var algorithmNames = [...]string{
	Naive:     "naive",
	Blocked:   "blocked",
	Strassen:  "strassen",
	Reference: "reference",
}

// legacyAliases maps labels used by older result logs onto current tags.
var legacyAliases = map[string]Algorithm{
	"blas": Reference,
}

// Algorithms returns every known algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{Naive, Blocked, Strassen, Reference}
}

// Valid reports whether a is one of the declared algorithms.
func (a Algorithm) Valid() bool {
	return a >= Naive && int(a) < len(algorithmNames)
}

// String returns the lower-case label, or "algorithm(N)" for unknown values.
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// ParseAlgorithm resolves a label (case-insensitive, surrounding spaces ignored).
// The legacy label "blas" resolves to Reference.
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range algorithmNames {
		if name == key {
			return Algorithm(i), nil
		}
	}
	if alg, ok := legacyAliases[key]; ok {
		return alg, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}
