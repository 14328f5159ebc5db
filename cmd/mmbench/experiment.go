// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/katalvlaran/mmbench/bench"
	"github.com/katalvlaran/mmbench/config"
	"github.com/katalvlaran/mmbench/internal/hostinfo"
	"github.com/katalvlaran/mmbench/matrix"
	"github.com/katalvlaran/mmbench/multiply"
	"github.com/katalvlaran/mmbench/schedule"
	"github.com/katalvlaran/mmbench/store"
	"github.com/spf13/cobra"
)

func newExperimentCmd(a *app) *cobra.Command {
	var (
		csvPath    string
		seed       int64
		configPath string
		timeout    time.Duration
		dryRun     bool
	)
	cmd := &cobra.Command{
		Use:   "experiment",
		Short: "Run the shuffled environments × algorithms × reps schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("timeout") {
				if timeout < 0 {
					return fmt.Errorf("--timeout must be >= 0, got %s", timeout)
				}
				cfg.Timeout = timeout
			}
			algs, err := cfg.ParsedAlgorithms()
			if err != nil {
				return err
			}
			plan, err := schedule.Plan(schedule.Domain{
				Environments: cfg.EnvironmentNames(),
				Algorithms:   algs,
				Reps:         cfg.RepsPerCell,
			}, seed)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Experiment schedule created with %d runs.\n", len(plan))
			fmt.Fprintf(out, "Results will be appended to: %s\n", csvPath)
			fmt.Fprintf(out, "Random seed: %d\n\n", seed)
			if dryRun {
				printPlan(out, plan)
				return nil
			}

			if err := os.MkdirAll(filepath.Dir(csvPath), 0o755); err != nil {
				return err
			}
			self, err := os.Executable()
			if err != nil {
				return err
			}
			a.logger.Info("experiment start", "host", hostinfo.Collect(), "seed", seed, "size", cfg.Size)
			A, B, err := loadOrGenerate(cfg, a)
			if err != nil {
				return err
			}

			table := buildTable(cfg, self, seed, A, B, a, out, cmd.ErrOrStderr())
			sched := schedule.New(table, csvPath, schedule.WithTimeout(cfg.Timeout), schedule.WithLogger(a.logger))
			if err := sched.Run(cmd.Context(), plan); err != nil {
				return err
			}
			fmt.Fprintln(out, "\nAll runs completed.")

			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&csvPath, "csv", "results_experiment.csv", "results log shared by every run")
	f.Int64Var(&seed, "seed", 42, "shuffle seed")
	f.StringVar(&configPath, "config", "", "YAML experiment file (defaults when empty)")
	f.DurationVar(&timeout, "timeout", 0, "per-run deadline, 0 disables (overrides the config file)")
	f.BoolVar(&dryRun, "dry-run", false, "print the schedule without running it")

	return cmd
}

func printPlan(w io.Writer, plan []schedule.Entry) {
	for _, e := range plan {
		fmt.Fprintf(w, "=== Global run %03d | language=%s | algorithm=%s | replicate=%d ===\n",
			e.RunID, e.Environment, e.Algorithm, e.Rep)
	}
}

// buildTable maps every configured environment to its unit.
func buildTable(cfg config.Config, self string, seed int64, A, B *matrix.Dense, a *app, stdout, stderr io.Writer) schedule.Table {
	table := make(schedule.Table, len(cfg.Environments))
	vars := cfg.Vars(self, seed)
	for _, env := range cfg.Environments {
		if env.InProcess {
			table[env.Name] = inProcessUnit(cfg, A, B, a)
			continue
		}
		table[env.Name] = &schedule.CommandUnit{
			Args:     env.Command,
			Programs: env.CanonicalPrograms(),
			Vars:     vars,
			Stdout:   stdout,
			Stderr:   stderr,
		}
	}

	return table
}

// inProcessUnit runs cells through bench.Runner in this process.
func inProcessUnit(cfg config.Config, A, B *matrix.Dense, a *app) schedule.FuncUnit {
	engine := multiply.New(cfg.EngineOptions()...)

	return func(ctx context.Context, inv schedule.Invocation) error {
		runner := bench.NewRunner(engine, bench.NewResultsLog(inv.CSVPath), bench.WithLogger(a.logger))
		_, err := runner.Run(ctx, bench.Job{
			Environment: inv.Entry.Environment,
			Algorithm:   inv.Entry.Algorithm,
			Reps:        inv.Reps,
			Warmup:      cfg.Warmup,
			A:           A,
			B:           B,
		})

		return err
	}
}

// loadOrGenerate returns the configured operand pair, generating and saving
// it in both encodings when no file exists yet, so subprocess environments
// find it too.
func loadOrGenerate(cfg config.Config, a *app) (*matrix.Dense, *matrix.Dense, error) {
	A, B, err := store.LoadPair(cfg.MatricesDir, cfg.Size)
	if !errors.Is(err, store.ErrNotFound) {
		return A, B, err
	}
	if A, B, err = store.Generate(cfg.Size, cfg.MatrixSeed); err != nil {
		return nil, nil, err
	}
	written, err := store.SavePair(cfg.MatricesDir, A, B, store.Binary, store.Text)
	if err != nil {
		return nil, nil, err
	}
	a.logger.Info("generated matrices", "n", cfg.Size, "seed", cfg.MatrixSeed, "files", written)

	return A, B, nil
}
