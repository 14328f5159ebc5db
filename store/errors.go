// SPDX-License-Identifier: MIT

package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates that no file holds the requested matrix.
	ErrNotFound = errors.New("store: matrix file not found")

	// ErrFormat indicates an unsupported extension or a malformed payload.
	ErrFormat = errors.New("store: malformed matrix file")

	// ErrShape indicates a well-formed payload whose shape differs from the request.
	ErrShape = errors.New("store: unexpected matrix shape")
)

// storeErrorf prefixes err with the operation tag and the file it concerns.
func storeErrorf(op, path string, err error) error {
	return fmt.Errorf("store.%s(%s): %w", op, path, err)
}
