// SPDX-License-Identifier: MIT

package schedule

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyDomain indicates a domain with no environments, no algorithms,
	// an empty name or reps < 1.
	ErrEmptyDomain = errors.New("schedule: empty domain")

	// ErrDuplicate indicates a repeated environment or algorithm in a domain.
	ErrDuplicate = errors.New("schedule: duplicate domain value")

	// ErrNoUnit indicates that no unit serves an (environment, algorithm) pair.
	ErrNoUnit = errors.New("schedule: no unit for entry")

	// ErrBadCommand indicates an argv template that cannot be expanded.
	ErrBadCommand = errors.New("schedule: bad command template")

	// ErrUnitFailed is matched by every *UnitError.
	ErrUnitFailed = errors.New("schedule: unit failed")
)

// NoExitCode marks a UnitError whose cause carries no process exit status.
const NoExitCode = -1

// UnitError reports the run that stopped an experiment.
type UnitError struct {
	Entry    Entry
	Command  []string // argv (or in-process description) of the failed unit
	ExitCode int      // process exit status, NoExitCode if none
	TimedOut bool     // the per-unit deadline expired
	Err      error    // underlying cause
}

// Error formats as "schedule: run 7 (go/strassen rep 2) failed: exit status 3 [cmd ...]".
func (e *UnitError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "schedule: run %d (%s/%s rep %d) failed", e.Entry.RunID, e.Entry.Environment, e.Entry.Algorithm, e.Entry.Rep)
	if e.TimedOut {
		sb.WriteString(" after deadline")
	}
	if e.Err != nil {
		fmt.Fprintf(&sb, ": %v", e.Err)
	}
	if len(e.Command) > 0 {
		fmt.Fprintf(&sb, " [%s]", strings.Join(e.Command, " "))
	}

	return sb.String()
}

// Unwrap exposes both ErrUnitFailed and the underlying cause to errors.Is/As.
func (e *UnitError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUnitFailed}
	}

	return []error{ErrUnitFailed, e.Err}
}
