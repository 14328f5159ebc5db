// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/mmbench/config"
	"github.com/katalvlaran/mmbench/store"
	"github.com/spf13/cobra"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		size    int
		seed    int64
		dir     string
		formats string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the seeded A_<n>/B_<n> operand pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fs, err := store.ParseFormats(formats)
			if err != nil {
				return err
			}
			A, B, err := store.Generate(size, seed)
			if err != nil {
				return err
			}
			written, err := store.SavePair(dir, A, B, fs...)
			if err != nil {
				return err
			}
			a.logger.Debug("matrices generated", "n", size, "seed", seed)
			for _, p := range written {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}

			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&size, "size", config.DefaultSize, "matrix order")
	f.Int64Var(&seed, "seed", store.DefaultSeed, "generation seed")
	f.StringVar(&dir, "dir", ".", "output directory")
	f.StringVar(&formats, "formats", "bin,csv", "comma-separated encodings: bin,csv")

	return cmd
}
