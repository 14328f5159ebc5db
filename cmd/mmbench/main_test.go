// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/mmbench/bench"
	"github.com/katalvlaran/mmbench/schedule"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func TestGenerateRunSummarize(t *testing.T) {
	dir := t.TempDir()
	csv := filepath.Join(dir, "logs", "results_go.csv")

	out, err := execute(t, "generate", "--size", "16", "--seed", "3", "--dir", dir)
	require.NoError(t, err)
	require.Contains(t, out, "A_16.bin")
	require.Contains(t, out, "B_16.csv")

	_, err = execute(t, "run", "--algorithm", "strassen", "--leaf-threshold", "4",
		"--reps", "3", "--size", "16", "--dir", dir, "--csv", csv)
	require.NoError(t, err)
	_, err = execute(t, "run", "--algorithm", "blas", "--reps", "2", "--size", "16", "--dir", dir, "--csv", csv)
	require.NoError(t, err)

	recs, err := bench.ReadLog(csv)
	require.NoError(t, err)
	require.Len(t, recs, 5)
	require.Equal(t, "reference", recs[4].Algorithm)

	out, err = execute(t, "summarize", "--csv", csv)
	require.NoError(t, err)
	require.Contains(t, out, "strassen")
	require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)
}

func TestRunMissingMatrices(t *testing.T) {
	_, err := execute(t, "run", "--algorithm", "naive", "--size", "8", "--dir", t.TempDir())
	require.ErrorContains(t, err, "mmbench generate")
}

func TestRunRejectsBadFlags(t *testing.T) {
	_, err := execute(t, "run", "--algorithm", "winograd")
	require.Error(t, err)
	_, err = execute(t, "run", "--algorithm", "naive", "--block-size", "0")
	require.ErrorContains(t, err, "--block-size")
	_, err = execute(t, "run")
	require.Error(t, err)
}

func TestVerify(t *testing.T) {
	out, err := execute(t, "verify", "--size", "32", "--leaf-threshold", "8")
	require.NoError(t, err)
	require.Equal(t, 4, strings.Count(out, " ok"))
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "exp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestExperimentInProcess(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, `
size: 8
matrices_dir: `+filepath.Join(dir, "mats")+`
reps_per_cell: 2
algorithms: [naive, blocked]
environments:
  - name: go
    in_process: true
`)
	csv := filepath.Join(dir, "out", "results_experiment.csv")

	out, err := execute(t, "experiment", "--config", cfg, "--csv", csv, "--seed", "5")
	require.NoError(t, err)
	require.Contains(t, out, "Experiment schedule created with 4 runs.")
	require.Contains(t, out, "All runs completed.")

	recs, err := bench.ReadLog(csv)
	require.NoError(t, err)
	require.Len(t, recs, 4)
	for _, r := range recs {
		require.Equal(t, 1, r.Rep)
		require.Equal(t, 8, r.N)
	}
	_, err = os.Stat(filepath.Join(dir, "mats", "A_8.bin"))
	require.NoError(t, err)
}

func TestExperimentDryRun(t *testing.T) {
	out, err := execute(t, "experiment", "--dry-run", "--seed", "42")
	require.NoError(t, err)
	require.Contains(t, out, "Experiment schedule created with 80 runs.")
	require.Equal(t, 80, strings.Count(out, "=== Global run"))
	require.Contains(t, out, "=== Global run 001 |")
}

func TestExperimentPropagatesExitCode(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, `
size: 4
matrices_dir: `+dir+`
algorithms: [naive]
reps_per_cell: 1
environments:
  - name: broken
    command: ["sh", "-c", "exit 3"]
`)
	_, err := execute(t, "experiment", "--config", cfg, "--csv", filepath.Join(dir, "r.csv"))
	require.ErrorIs(t, err, schedule.ErrUnitFailed)
	require.Equal(t, 3, exitCode(err))
}

func TestBadLogLevel(t *testing.T) {
	root := newRootCmd()
	root.SetOut(new(bytes.Buffer))
	root.SetArgs([]string{"--log-level", "loud", "verify", "--size", "4"})
	require.ErrorContains(t, root.Execute(), "--log-level")
}
