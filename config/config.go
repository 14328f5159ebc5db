// SPDX-License-Identifier: MIT

// Package config holds the experiment configuration threaded from the
// scheduler through the runner to the multiplication engine.
//
// A YAML file overlays the defaults; every field is optional:
//
//	size: 1024
//	matrix_seed: 2025
//	reps_per_cell: 10
//	timeout: 5m
//	algorithms: [naive, blocked, strassen, reference]
//	environments:
//	  - name: go
//	    in_process: true
//	  - name: python
//	    command: ["python3", "python/{program}", "--reps", "{reps}", "--csv", "{csv}"]
//	    programs: {naive: python_naive.py, reference: python_blas.py}
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/katalvlaran/mmbench/multiply"
	"github.com/katalvlaran/mmbench/store"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation and decoding failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Defaults of the stock experiment.
const (
	DefaultSize        = 1024
	DefaultRepsPerCell = 10
)

// SelfCommand re-invokes this binary's run command for one cell.
var SelfCommand = []string{
	"{self}", "run",
	"--language", "{env}",
	"--algorithm", "{algorithm}",
	"--reps", "{reps}",
	"--csv", "{csv}",
	"--size", "{n}",
	"--dir", "{dir}",
	"--block-size", "{block_size}",
	"--leaf-threshold", "{leaf_threshold}",
	"--padding", "{padding}",
	"--warmup", "{warmup}",
}

// Environment is one execution environment of the experiment.
type Environment struct {
	Name      string            `yaml:"name"`
	InProcess bool              `yaml:"in_process,omitempty"`
	Command   []string          `yaml:"command,omitempty"`
	Programs  map[string]string `yaml:"programs,omitempty"`
}

// CanonicalPrograms returns Programs keyed by canonical algorithm labels, so
// a "blas" entry serves the reference algorithm. Unknown labels are dropped;
// Validate reports them.
func (e Environment) CanonicalPrograms() map[string]string {
	if len(e.Programs) == 0 {
		return nil
	}
	out := make(map[string]string, len(e.Programs))
	for label, prog := range e.Programs {
		if alg, err := multiply.ParseAlgorithm(label); err == nil {
			out[alg.String()] = prog
		}
	}

	return out
}

// Config is the experiment description.
type Config struct {
	Size          int           `yaml:"size"`
	MatrixSeed    int64         `yaml:"matrix_seed"`
	MatricesDir   string        `yaml:"matrices_dir"`
	BlockSize     int           `yaml:"block_size"`
	LeafThreshold int           `yaml:"leaf_threshold"`
	Padding       string        `yaml:"padding"`
	RepsPerCell   int           `yaml:"reps_per_cell"`
	Warmup        int           `yaml:"warmup"`
	Timeout       time.Duration `yaml:"timeout"`
	Algorithms    []string      `yaml:"algorithms"`
	Environments  []Environment `yaml:"environments"`
}

// Default returns the stock configuration: the four algorithms on the
// in-process "go" environment and on "go-exec", which runs every cell as a
// subprocess of this binary.
func Default() Config {
	return Config{
		Size:          DefaultSize,
		MatrixSeed:    store.DefaultSeed,
		MatricesDir:   ".",
		BlockSize:     multiply.DefaultBlockSize,
		LeafThreshold: multiply.DefaultLeafThreshold,
		Padding:       multiply.DefaultPadding.String(),
		RepsPerCell:   DefaultRepsPerCell,
		Algorithms:    lo.Map(multiply.Algorithms(), func(a multiply.Algorithm, _ int) string { return a.String() }),
		Environments: []Environment{
			{Name: "go", InProcess: true},
			{Name: "go-exec", Command: append([]string(nil), SelfCommand...)},
		},
	}
}

// Load overlays the YAML file at path on Default and validates the result.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config.Load(%s): %w", path, err)
	}
	cfg, err := Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("config.Load(%s): %w", path, err)
	}

	return cfg, nil
}

// Parse decodes a YAML document over Default and validates it.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks sizes, algorithm labels, padding and environments.
func (c Config) Validate() error {
	switch {
	case c.Size < 1:
		return invalidf("size=%d", c.Size)
	case c.BlockSize < 1:
		return invalidf("block_size=%d", c.BlockSize)
	case c.LeafThreshold < 1:
		return invalidf("leaf_threshold=%d", c.LeafThreshold)
	case c.RepsPerCell < 1:
		return invalidf("reps_per_cell=%d", c.RepsPerCell)
	case c.Warmup < 0:
		return invalidf("warmup=%d", c.Warmup)
	case c.Timeout < 0:
		return invalidf("timeout=%s", c.Timeout)
	case len(c.Algorithms) == 0:
		return invalidf("no algorithms")
	case len(c.Environments) == 0:
		return invalidf("no environments")
	}
	if _, err := multiply.ParsePadding(c.Padding); err != nil {
		return invalidf("%v", err)
	}
	if _, err := c.ParsedAlgorithms(); err != nil {
		return err
	}
	if dup := lo.FindDuplicates(lo.Map(c.Environments, func(e Environment, _ int) string { return e.Name })); len(dup) > 0 {
		return invalidf("duplicate environments %v", dup)
	}
	for _, e := range c.Environments {
		switch {
		case e.Name == "":
			return invalidf("environment without name")
		case e.InProcess == (len(e.Command) > 0):
			return invalidf("environment %q: exactly one of in_process and command is required", e.Name)
		case e.InProcess && len(e.Programs) > 0:
			return invalidf("environment %q: programs need a command", e.Name)
		}
		for label := range e.Programs {
			if _, err := multiply.ParseAlgorithm(label); err != nil {
				return invalidf("environment %q: program for %v", e.Name, err)
			}
		}
	}

	return nil
}

// ParsedAlgorithms converts the labels, accepting the "blas" alias.
// Duplicates after alias resolution are rejected.
func (c Config) ParsedAlgorithms() ([]multiply.Algorithm, error) {
	out := make([]multiply.Algorithm, 0, len(c.Algorithms))
	for _, label := range c.Algorithms {
		alg, err := multiply.ParseAlgorithm(label)
		if err != nil {
			return nil, invalidf("%v", err)
		}
		out = append(out, alg)
	}
	if dup := lo.FindDuplicates(out); len(dup) > 0 {
		return nil, invalidf("duplicate algorithms %v", dup)
	}

	return out, nil
}

// EnvironmentNames lists the environments in file order.
func (c Config) EnvironmentNames() []string {
	return lo.Map(c.Environments, func(e Environment, _ int) string { return e.Name })
}

// EngineOptions converts the kernel knobs to multiply options.
// The config must have passed Validate.
func (c Config) EngineOptions() []multiply.Option {
	pad, _ := multiply.ParsePadding(c.Padding)

	return []multiply.Option{
		multiply.WithBlockSize(c.BlockSize),
		multiply.WithLeafThreshold(c.LeafThreshold),
		multiply.WithPadding(pad),
	}
}

// Vars returns the static command placeholders; self is the path of the
// running binary and seed the schedule seed.
func (c Config) Vars(self string, seed int64) map[string]string {
	return map[string]string{
		"self":           self,
		"n":              strconv.Itoa(c.Size),
		"dir":            c.MatricesDir,
		"block_size":     strconv.Itoa(c.BlockSize),
		"leaf_threshold": strconv.Itoa(c.LeafThreshold),
		"padding":        c.Padding,
		"seed":           strconv.FormatInt(seed, 10),
		"warmup":         strconv.Itoa(c.Warmup),
	}
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
