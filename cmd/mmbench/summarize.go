// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/katalvlaran/mmbench/bench"
	"github.com/spf13/cobra"
)

func newSummarizeCmd(a *app) *cobra.Command {
	var csvPath string
	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Print per-cell statistics of a results log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := bench.ReadLog(csvPath)
			if err != nil {
				return err
			}
			cells := bench.Aggregate(records)
			a.logger.Debug("summarized", "records", len(records), "cells", len(cells))

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "language\talgorithm\tn\treps\tmean_s\tsd_s\tmin_s\tmax_s\t")
			for _, c := range cells {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.6g\t%.3g\t%.6g\t%.6g\t\n",
					c.Cell.Environment, c.Cell.Algorithm, c.Cell.N, c.Summary.N, c.Summary.Mean, c.Summary.StdDev, c.Summary.Min, c.Summary.Max)
			}

			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&csvPath, "csv", "results_experiment.csv", "results log to read")

	return cmd
}
