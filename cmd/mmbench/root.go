// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/mmbench/multiply"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app carries state shared by the subcommands.
type app struct {
	logLevel string
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "mmbench",
		Short:         "Reproducible dense matrix multiplication benchmark",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var lvl slog.Level
			if err := lvl.UnmarshalText([]byte(strings.ToUpper(a.logLevel))); err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level: debug|info|warn|error")

	root.AddCommand(
		newRunCmd(a),
		newExperimentCmd(a),
		newGenerateCmd(a),
		newVerifyCmd(a),
		newSummarizeCmd(a),
	)

	return root
}

// engineFlags are the kernel knobs shared by run and verify.
type engineFlags struct {
	blockSize     int
	leafThreshold int
	padding       string
}

func (f *engineFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&f.blockSize, "block-size", multiply.DefaultBlockSize, "tile edge of the blocked kernel")
	fs.IntVar(&f.leafThreshold, "leaf-threshold", multiply.DefaultLeafThreshold, "order at which strassen stops recursing")
	fs.StringVar(&f.padding, "padding", multiply.DefaultPadding.String(), "strassen size policy: none|pow2")
}

// options validates the flags before building options, which panic on bad values.
func (f *engineFlags) options() ([]multiply.Option, error) {
	if f.blockSize < 1 {
		return nil, fmt.Errorf("--block-size must be >= 1, got %d", f.blockSize)
	}
	if f.leafThreshold < 1 {
		return nil, fmt.Errorf("--leaf-threshold must be >= 1, got %d", f.leafThreshold)
	}
	pad, err := multiply.ParsePadding(f.padding)
	if err != nil {
		return nil, fmt.Errorf("--padding: %w", err)
	}

	return []multiply.Option{
		multiply.WithBlockSize(f.blockSize),
		multiply.WithLeafThreshold(f.leafThreshold),
		multiply.WithPadding(pad),
	}, nil
}
