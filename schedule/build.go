// SPDX-License-Identifier: MIT

package schedule

import (
	"fmt"

	"github.com/katalvlaran/mmbench/multiply"
	"github.com/samber/lo"
)

// Domain is the experiment design: every environment runs every algorithm
// Reps times.
type Domain struct {
	Environments []string
	Algorithms   []multiply.Algorithm
	Reps         int
}

// Size returns |Environments|·|Algorithms|·Reps.
func (d Domain) Size() int { return len(d.Environments) * len(d.Algorithms) * d.Reps }

// Validate checks the domain is non-empty and free of duplicates.
//
// Errors:
//   - ErrEmptyDomain, ErrDuplicate, multiply.ErrUnknownAlgorithm.
func (d Domain) Validate() error {
	switch {
	case len(d.Environments) == 0:
		return fmt.Errorf("%w: no environments", ErrEmptyDomain)
	case len(d.Algorithms) == 0:
		return fmt.Errorf("%w: no algorithms", ErrEmptyDomain)
	case d.Reps < 1:
		return fmt.Errorf("%w: reps=%d", ErrEmptyDomain, d.Reps)
	case lo.Contains(d.Environments, ""):
		return fmt.Errorf("%w: empty environment name", ErrEmptyDomain)
	}
	if dup := lo.FindDuplicates(d.Environments); len(dup) > 0 {
		return fmt.Errorf("%w: environments %v", ErrDuplicate, dup)
	}
	if dup := lo.FindDuplicates(d.Algorithms); len(dup) > 0 {
		return fmt.Errorf("%w: algorithms %v", ErrDuplicate, dup)
	}
	if bad, ok := lo.Find(d.Algorithms, func(a multiply.Algorithm) bool { return !a.Valid() }); ok {
		return fmt.Errorf("schedule: %w: %v", multiply.ErrUnknownAlgorithm, bad)
	}

	return nil
}

// Entry is one scheduled run.
type Entry struct {
	RunID       int // 1-based position after shuffling; 0 before Plan
	Environment string
	Algorithm   multiply.Algorithm
	Rep         int // 1-based replicate within its cell
}

// Build returns the ordered cross product environments → algorithms → reps.
//
// Errors:
//   - as Domain.Validate.
//
// Complexity: O(Size) time and space.
func Build(d Domain) ([]Entry, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	out := make([]Entry, 0, d.Size())
	for _, env := range d.Environments {
		for _, alg := range d.Algorithms {
			for rep := 1; rep <= d.Reps; rep++ {
				out = append(out, Entry{Environment: env, Algorithm: alg, Rep: rep})
			}
		}
	}

	return out, nil
}

// Shuffle permutes entries in place with a source seeded by seed.
func Shuffle(entries []Entry, seed int64) {
	shuffleInPlace(entries, rngFromSeed(seed))
}

// Plan builds, shuffles and numbers the schedule of d.
func Plan(d Domain, seed int64) ([]Entry, error) {
	entries, err := Build(d)
	if err != nil {
		return nil, err
	}
	Shuffle(entries, seed)
	for i := range entries {
		entries[i].RunID = i + 1
	}

	return entries, nil
}
