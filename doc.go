// Package mmbench is a reproducible benchmark of dense matrix multiplication.
//
// It times four strategies on the same seeded operands, across several
// execution environments, and appends one CSV row per repetition:
//
//	language,algorithm,n,rep,time_s
//
// Layout:
//
//	matrix/            — Dense row-major float64 storage, validators, Add/Sub, quadrant copies
//	multiply/          — Engine with naive, blocked, strassen and reference (BLAS) kernels
//	store/             — seeded operand generation, binary (.bin) and CSV (.csv) files
//	bench/             — Runner timing repetitions, ResultsLog, Summary statistics
//	schedule/          — Build/Shuffle/Plan of the experiment and sequential dispatch
//	config/            — YAML experiment file over built-in defaults
//	internal/hostinfo/ — host and CPU feature snapshot for logs
//	cmd/mmbench/       — CLI: generate, run, experiment, verify, summarize
//
// Quick start:
//
//	mmbench generate --size 1024
//	mmbench verify
//	mmbench experiment --seed 42
//	mmbench summarize --csv results_experiment.csv
//
// Guarantees:
//   - A fixed seed yields the same operands and the same run order on every
//     machine.
//   - Each run appends its rows with a single write; the experiment stops at
//     the first failing run and reports its exit status.
//   - Multiplication never mutates its operands and always allocates the result.
package mmbench
