// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mmbench/bench"
	"github.com/katalvlaran/mmbench/config"
	"github.com/katalvlaran/mmbench/multiply"
	"github.com/katalvlaran/mmbench/store"
	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		algorithm string
		reps      int
		csvPath   string
		language  string
		size      int
		dir       string
		warmup    int
		ef        engineFlags
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Time one algorithm on the stored matrices and append the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			alg, err := multiply.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}
			opts, err := ef.options()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("csv") {
				csvPath = fmt.Sprintf("results_%s.csv", language)
			}

			A, B, err := store.LoadPair(dir, size)
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("%w (run `mmbench generate --size %d --dir %s` first)", err, size, dir)
			}
			if err != nil {
				return err
			}

			runner := bench.NewRunner(multiply.New(opts...), bench.NewResultsLog(csvPath), bench.WithLogger(a.logger))
			res, err := runner.Run(cmd.Context(), bench.Job{
				Environment: language, Algorithm: alg, Reps: reps, Warmup: warmup, A: A, B: B,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s n=%d: %s (excluding %d warm-up) -> %s\n",
				language, alg, size, res.Summary, warmup, csvPath)

			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&algorithm, "algorithm", "", "naive|blocked|strassen|reference")
	f.IntVar(&reps, "reps", 5, "timed repetitions")
	f.StringVar(&csvPath, "csv", "results_<language>.csv", "results log to append to")
	f.StringVar(&language, "language", "go", "environment label written to the language column")
	f.IntVar(&size, "size", config.DefaultSize, "matrix order")
	f.StringVar(&dir, "dir", ".", "directory holding A_<n> and B_<n>")
	f.IntVar(&warmup, "warmup", 0, "untimed repetitions before timing")
	ef.register(f)
	_ = cmd.MarkFlagRequired("algorithm")

	return cmd
}
