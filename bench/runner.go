// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/mmbench/matrix"
	"github.com/katalvlaran/mmbench/multiply"
)

const (
	panicNilClock  = "bench: WithClock: nil clock"
	panicNilLogger = "bench: WithLogger: nil logger"
)

// Job describes one (environment, algorithm) cell on a loaded operand pair.
type Job struct {
	Environment string
	Algorithm   multiply.Algorithm
	Reps        int // timed repetitions, ≥ 1
	Warmup      int // untimed repetitions before the first timed one, ≥ 0
	A, B        matrix.Matrix
}

// Result is what a successful Run produced.
type Result struct {
	Records []RunRecord
	Summary Summary
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithClock replaces the system clock. Panics on nil.
func WithClock(c Clock) RunnerOption {
	if c == nil {
		panic(panicNilClock)
	}

	return func(r *Runner) { r.clock = c }
}

// WithLogger attaches a logger for per-rep and summary lines. Panics on nil.
func WithLogger(l *slog.Logger) RunnerOption {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(r *Runner) { r.logger = l }
}

// Runner times Engine.Multiply and appends the measurements to a ResultsLog.
type Runner struct {
	engine *multiply.Engine
	log    *ResultsLog // nil: measurements are returned but not persisted
	clock  Clock
	logger *slog.Logger
}

// NewRunner binds engine and results log. A nil engine means multiply.New().
func NewRunner(engine *multiply.Engine, log *ResultsLog, opts ...RunnerOption) *Runner {
	if engine == nil {
		engine = multiply.New()
	}
	r := &Runner{
		engine: engine,
		log:    log,
		clock:  SystemClock{},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	return r
}

// Run executes job and, on success, appends its records.
//
// Implementation:
//   - Stage 1: validate the job.
//   - Stage 2: Warmup untimed multiplies.
//   - Stage 3: Reps timed multiplies; ctx is checked before and after each
//     one, so a repetition that outlives its deadline is not recorded.
//   - Stage 4: single append of all records, then summary log line.
//
// Errors:
//   - ErrInvalidJob for bad reps/warmup, empty environment or nil operands.
//   - ctx.Err() on cancellation before or during a repetition.
//   - Any multiply error (dimension mismatch, strassen size policy, ...).
//   - I/O errors from ResultsLog.Append.
//
// In every error case nothing is appended.
func (r *Runner) Run(ctx context.Context, job Job) (Result, error) {
	if err := validateJob(job); err != nil {
		return Result{}, err
	}
	alg := job.Algorithm.String()
	n := job.A.Rows()
	log := r.logger.With("language", job.Environment, "algorithm", alg, "n", n)

	for i := 0; i < job.Warmup; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if _, err := r.engine.Multiply(job.A, job.B, job.Algorithm); err != nil {
			return Result{}, err
		}
	}

	records := make([]RunRecord, 0, job.Reps)
	durations := make([]time.Duration, 0, job.Reps)
	for rep := 1; rep <= job.Reps; rep++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		start := r.clock.Now()
		_, err := r.engine.Multiply(job.A, job.B, job.Algorithm)
		elapsed := r.clock.Since(start)
		if err != nil {
			return Result{}, err
		}
		if err = ctx.Err(); err != nil {
			return Result{}, err
		}
		log.Debug("rep done", "rep", rep, "time_s", elapsed.Seconds())
		records = append(records, RunRecord{
			Environment: job.Environment,
			Algorithm:   alg,
			N:           n,
			Rep:         rep,
			Elapsed:     elapsed,
		})
		durations = append(durations, elapsed)
	}

	if r.log != nil {
		if err := r.log.Append(records...); err != nil {
			return Result{}, err
		}
	}
	sum := Summarize(durations)
	log.Info("job done", "reps", sum.N, "mean_s", sum.Mean, "sd_s", sum.StdDev, "min_s", sum.Min, "max_s", sum.Max)

	return Result{Records: records, Summary: sum}, nil
}

func validateJob(job Job) error {
	switch {
	case job.Reps < 1:
		return fmt.Errorf("%w: reps=%d", ErrInvalidJob, job.Reps)
	case job.Warmup < 0:
		return fmt.Errorf("%w: warmup=%d", ErrInvalidJob, job.Warmup)
	case job.Environment == "":
		return fmt.Errorf("%w: empty environment", ErrInvalidJob)
	case !job.Algorithm.Valid():
		return fmt.Errorf("%w: %w", ErrInvalidJob, multiply.ErrUnknownAlgorithm)
	}
	if err := matrix.ValidateNotNil(job.A); err != nil {
		return fmt.Errorf("%w: A: %w", ErrInvalidJob, err)
	}
	if err := matrix.ValidateNotNil(job.B); err != nil {
		return fmt.Errorf("%w: B: %w", ErrInvalidJob, err)
	}

	return nil
}
