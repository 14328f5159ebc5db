// SPDX-License-Identifier: MIT

// Package bench times repeated multiplications and persists one row per
// repetition to a CSV results log.
//
// What:
//   - Runner.Run executes Job.Warmup untimed products, then Job.Reps timed
//     ones, each measured with a monotonic clock around a single call to
//     multiply.Engine.Multiply. Matrix loading happens before Run.
//   - On success every record of the job is appended to the ResultsLog with a
//     single write; a failed job appends nothing.
//   - Summary (count, mean, sample standard deviation, min, max) is computed
//     and logged, never persisted.
//
// Results log:
//
//	language,algorithm,n,rep,time_s
//	go,blocked,1024,1,0.8312
//
// The header is written only when the file is created. Parent directories
// are created on first append. ReadLog and Aggregate turn a log back into
// per-cell summaries.
//
// Concurrency:
//   - Runner is not safe for concurrent Run calls sharing one ResultsLog;
//     the scheduler dispatches strictly sequentially.
package bench
