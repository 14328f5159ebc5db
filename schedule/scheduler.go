// SPDX-License-Identifier: MIT

package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

const (
	panicNegativeTimeout = "schedule: WithTimeout: negative timeout"
	panicNilLogger       = "schedule: WithLogger: nil logger"
)

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithTimeout bounds every unit; 0 disables the bound. Panics if d < 0.
func WithTimeout(d time.Duration) Option {
	if d < 0 {
		panic(panicNegativeTimeout)
	}

	return func(s *Scheduler) { s.timeout = d }
}

// WithLogger sets the progress logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(s *Scheduler) { s.logger = l }
}

// Scheduler dispatches planned entries one at a time.
type Scheduler struct {
	resolver Resolver
	csvPath  string
	timeout  time.Duration
	logger   *slog.Logger
}

// New returns a Scheduler that resolves units through r and hands csvPath to
// every invocation.
func New(r Resolver, csvPath string, opts ...Option) *Scheduler {
	s := &Scheduler{resolver: r, csvPath: csvPath, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s
}

// Run executes entries in order and stops at the first failure.
//
// Implementation:
//   - Stage 1: resolve every entry up front so a missing unit fails before
//     anything runs.
//   - Stage 2: for each entry log the progress line, run the unit with
//     Reps=1 under the optional deadline, and convert a failure into
//     *UnitError. A unit that returns after its deadline has expired is a
//     timed-out failure even when it reports success.
//
// Errors:
//   - ErrNoUnit (wrapped) from the resolver.
//   - *UnitError (errors.Is ErrUnitFailed) for the first failed run.
//   - ctx.Err() when ctx ends between runs.
func (s *Scheduler) Run(ctx context.Context, entries []Entry) error {
	units := make([]Unit, len(entries))
	for i, e := range entries {
		u, err := s.resolver.Resolve(e.Environment, e.Algorithm)
		if err != nil {
			return fmt.Errorf("schedule: run %d: %w", e.RunID, err)
		}
		units[i] = u
	}

	s.logger.Info("schedule created", "runs", len(entries), "csv", s.csvPath)
	for i, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.dispatch(ctx, units[i], e, len(entries)); err != nil {
			return err
		}
	}
	s.logger.Info("all runs completed", "runs", len(entries))

	return nil
}

func (s *Scheduler) dispatch(ctx context.Context, u Unit, e Entry, total int) error {
	inv := Invocation{Entry: e, CSVPath: s.csvPath, Reps: 1}
	argv, err := u.Command(inv)
	if err != nil {
		return &UnitError{Entry: e, ExitCode: NoExitCode, Err: err}
	}
	s.logger.Info("run",
		"id", fmt.Sprintf("%03d/%d", e.RunID, total),
		"language", e.Environment,
		"algorithm", e.Algorithm.String(),
		"replicate", e.Rep,
		"command", strings.Join(argv, " "),
	)

	runCtx, cancel := ctx, context.CancelFunc(func() {})
	if s.timeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, s.timeout)
	}
	defer cancel()

	start := time.Now()
	err = u.Run(runCtx, inv)
	elapsed := time.Since(start)
	// A unit that ignores its context may return nil after the deadline.
	timedOut := s.timeout > 0 && errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil
	if err == nil && !timedOut {
		s.logger.Debug("run done", "id", e.RunID, "elapsed", elapsed)
		return nil
	}

	ue := &UnitError{Entry: e, Command: argv, ExitCode: NoExitCode, Err: err}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		ue.ExitCode = exitErr.ExitCode()
	}
	if timedOut {
		ue.TimedOut = true
		if err == nil {
			ue.Err = fmt.Errorf("%w (timeout %s, returned after %s)", context.DeadlineExceeded, s.timeout, elapsed)
		} else {
			ue.Err = fmt.Errorf("%w (timeout %s): %w", context.DeadlineExceeded, s.timeout, err)
		}
	}
	s.logger.Error("run failed", "id", e.RunID, "exit_code", ue.ExitCode, "err", ue.Err)

	return ue
}
