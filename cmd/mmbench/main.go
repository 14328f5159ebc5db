// SPDX-License-Identifier: MIT

// Command mmbench benchmarks dense matrix multiplication strategies.
//
//	mmbench generate --size 1024 --seed 2025
//	mmbench run --algorithm blocked --reps 5
//	mmbench experiment --csv results_experiment.csv --seed 42
//	mmbench summarize --csv results_experiment.csv
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/mmbench/schedule"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "mmbench: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode propagates the status of the first failed sub-run; 1 otherwise.
func exitCode(err error) int {
	var ue *schedule.UnitError
	if errors.As(err, &ue) && ue.ExitCode > 0 {
		return ue.ExitCode
	}

	return 1
}
