// SPDX-License-Identifier: MIT

package schedule

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/mmbench/multiply"
)

// Invocation is what a Unit receives for one scheduled run.
type Invocation struct {
	Entry   Entry
	CSVPath string // shared results log
	Reps    int    // always 1 under Scheduler.Run
}

// Unit executes one run.
type Unit interface {
	// Run executes inv and blocks until it finishes.
	Run(ctx context.Context, inv Invocation) error
	// Command describes inv for progress lines and error reports.
	Command(inv Invocation) ([]string, error)
}

// Resolver maps an (environment, algorithm) pair to its Unit.
type Resolver interface {
	Resolve(env string, alg multiply.Algorithm) (Unit, error)
}

// supporter is implemented by units that only serve some algorithms.
type supporter interface {
	Supports(alg multiply.Algorithm) bool
}

// Table is a Resolver keyed by environment name.
type Table map[string]Unit

// Resolve returns the unit of env.
//
// Errors:
//   - ErrNoUnit when env is unknown or its unit does not serve alg.
func (t Table) Resolve(env string, alg multiply.Algorithm) (Unit, error) {
	u, ok := t[env]
	if !ok || u == nil {
		return nil, fmt.Errorf("%w: environment %q", ErrNoUnit, env)
	}
	if s, ok := u.(supporter); ok && !s.Supports(alg) {
		return nil, fmt.Errorf("%w: environment %q has no %s program", ErrNoUnit, env, alg)
	}

	return u, nil
}

// FuncUnit adapts an in-process function to Unit.
type FuncUnit func(ctx context.Context, inv Invocation) error

// Run calls f.
func (f FuncUnit) Run(ctx context.Context, inv Invocation) error { return f(ctx, inv) }

// Command describes the in-process call.
func (f FuncUnit) Command(inv Invocation) ([]string, error) {
	return []string{"in-process", inv.Entry.Environment, inv.Entry.Algorithm.String()}, nil
}

// Placeholder names expanded by CommandUnit per invocation. Static values such
// as {self}, {n}, {dir}, {block_size}, {leaf_threshold}, {padding} and {seed}
// come from CommandUnit.Vars.
const (
	VarEnv       = "env"
	VarAlgorithm = "algorithm"
	VarProgram   = "program"
	VarCSV       = "csv"
	VarReps      = "reps"
)

var placeholderRE = regexp.MustCompile(`\{[a-z_]+\}`)

// CommandUnit runs an external program built from an argv template.
//
// Every "{name}" in Args is replaced by the value of name: first the
// per-invocation variables (VarEnv, VarAlgorithm, VarProgram, VarCSV,
// VarReps), then Vars. {program} is Programs[algorithm label]. A
// placeholder left unresolved is an ErrBadCommand.
type CommandUnit struct {
	Args     []string
	Programs map[string]string // algorithm label → program; empty serves every algorithm
	Vars     map[string]string // static placeholders without braces
	Dir      string            // working directory; empty = current
	Stdout   io.Writer         // nil = os.Stdout
	Stderr   io.Writer         // nil = os.Stderr
}

// Supports reports whether alg has a program (always true without Programs).
func (u *CommandUnit) Supports(alg multiply.Algorithm) bool {
	if len(u.Programs) == 0 {
		return true
	}
	_, ok := u.Programs[alg.String()]

	return ok
}

// Command expands the template for inv. Placeholders are checked on the
// template itself, so substituted values may contain braces.
//
// Errors:
//   - ErrBadCommand for an empty template or unresolved placeholders.
func (u *CommandUnit) Command(inv Invocation) ([]string, error) {
	if len(u.Args) == 0 {
		return nil, fmt.Errorf("%w: empty argv", ErrBadCommand)
	}
	alg := inv.Entry.Algorithm.String()
	values := map[string]string{
		VarEnv:       inv.Entry.Environment,
		VarAlgorithm: alg,
		VarCSV:       inv.CSVPath,
		VarReps:      strconv.Itoa(inv.Reps),
	}
	if prog, ok := u.Programs[alg]; ok {
		values[VarProgram] = prog
	}
	for k, v := range u.Vars {
		if _, ok := values[k]; !ok {
			values[k] = v
		}
	}

	pairs := make([]string, 0, 2*len(values))
	for k, v := range values {
		pairs = append(pairs, "{"+k+"}", v)
	}
	rep := strings.NewReplacer(pairs...)

	argv := make([]string, len(u.Args))
	for i, a := range u.Args {
		for _, ph := range placeholderRE.FindAllString(a, -1) {
			if _, ok := values[ph[1:len(ph)-1]]; !ok {
				return nil, fmt.Errorf("%w: unresolved %s in %q", ErrBadCommand, ph, a)
			}
		}
		argv[i] = rep.Replace(a)
	}

	return argv, nil
}

// Run expands the template and executes it, forwarding stdout and stderr.
// A non-zero exit surfaces as *exec.ExitError.
func (u *CommandUnit) Run(ctx context.Context, inv Invocation) error {
	argv, err := u.Command(inv)
	if err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = u.Dir
	cmd.Stdout, cmd.Stderr = u.Stdout, u.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	return cmd.Run()
}
