// SPDX-License-Identifier: MIT

package bench

import "errors"

var (
	// ErrInvalidJob indicates a Job that cannot be run (no reps, nil operands, ...).
	ErrInvalidJob = errors.New("bench: invalid job")

	// ErrBadLog indicates a results log whose header or rows cannot be parsed.
	ErrBadLog = errors.New("bench: malformed results log")
)
