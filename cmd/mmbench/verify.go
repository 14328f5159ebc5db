// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/katalvlaran/mmbench/matrix"
	"github.com/katalvlaran/mmbench/multiply"
	"github.com/katalvlaran/mmbench/store"
	"github.com/spf13/cobra"
)

var errDisagree = errors.New("algorithms disagree with naive")

func newVerifyCmd(a *app) *cobra.Command {
	var (
		size int
		seed int64
		tol  float64
		ef   engineFlags
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every algorithm against naive on a seeded pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := ef.options()
			if err != nil {
				return err
			}
			A, B, err := store.Generate(size, seed)
			if err != nil {
				return err
			}
			eng := multiply.New(opts...)
			want, err := eng.Multiply(A, B, multiply.Naive)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "algorithm\tmax_rel_diff\tstatus")
			var bad []string
			for _, alg := range multiply.Algorithms() {
				got, err := eng.Multiply(A, B, alg)
				if err != nil {
					return err
				}
				d, err := matrix.MaxRelDiff(got, want)
				if err != nil {
					return err
				}
				status := "ok"
				if d > tol {
					status = "FAIL"
					bad = append(bad, alg.String())
				}
				fmt.Fprintf(tw, "%s\t%.3g\t%s\n", alg, d, status)
				a.logger.Debug("verified", "algorithm", alg.String(), "max_rel_diff", d)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if len(bad) > 0 {
				return fmt.Errorf("%w: %v (tol %g)", errDisagree, bad, tol)
			}

			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&size, "size", 128, "matrix order")
	f.Int64Var(&seed, "seed", 7, "generation seed")
	f.Float64Var(&tol, "tol", 1e-9, "maximum normwise relative difference")
	ef.register(f)

	return cmd
}
