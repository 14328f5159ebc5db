// SPDX-License-Identifier: MIT
package schedule_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/mmbench/multiply"
	"github.com/katalvlaran/mmbench/schedule"
	"github.com/stretchr/testify/require"
)

func experimentDomain() schedule.Domain {
	return schedule.Domain{
		Environments: []string{"cpp", "python", "r"},
		Algorithms:   multiply.Algorithms(),
		Reps:         10,
	}
}

func TestBuildOrder(t *testing.T) {
	d := schedule.Domain{Environments: []string{"a", "b"}, Algorithms: []multiply.Algorithm{multiply.Naive, multiply.Reference}, Reps: 2}
	got, err := schedule.Build(d)
	require.NoError(t, err)

	want := []schedule.Entry{
		{Environment: "a", Algorithm: multiply.Naive, Rep: 1},
		{Environment: "a", Algorithm: multiply.Naive, Rep: 2},
		{Environment: "a", Algorithm: multiply.Reference, Rep: 1},
		{Environment: "a", Algorithm: multiply.Reference, Rep: 2},
		{Environment: "b", Algorithm: multiply.Naive, Rep: 1},
		{Environment: "b", Algorithm: multiply.Naive, Rep: 2},
		{Environment: "b", Algorithm: multiply.Reference, Rep: 1},
		{Environment: "b", Algorithm: multiply.Reference, Rep: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Build mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildRejects(t *testing.T) {
	base := experimentDomain()
	cases := map[string]struct {
		mut  func(*schedule.Domain)
		want error
	}{
		"no envs":   {func(d *schedule.Domain) { d.Environments = nil }, schedule.ErrEmptyDomain},
		"no algs":   {func(d *schedule.Domain) { d.Algorithms = nil }, schedule.ErrEmptyDomain},
		"zero reps": {func(d *schedule.Domain) { d.Reps = 0 }, schedule.ErrEmptyDomain},
		"blank env": {func(d *schedule.Domain) { d.Environments = []string{"go", ""} }, schedule.ErrEmptyDomain},
		"dup env":   {func(d *schedule.Domain) { d.Environments = []string{"go", "go"} }, schedule.ErrDuplicate},
		"dup alg": {func(d *schedule.Domain) {
			d.Algorithms = []multiply.Algorithm{multiply.Naive, multiply.Naive}
		}, schedule.ErrDuplicate},
		"bad alg": {func(d *schedule.Domain) {
			d.Algorithms = []multiply.Algorithm{multiply.Algorithm(11)}
		}, multiply.ErrUnknownAlgorithm},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			d := base
			tc.mut(&d)
			_, err := schedule.Build(d)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestPlanDeterministic: same seed ⇒ identical plan, RunIDs 1..N.
func TestPlanDeterministic(t *testing.T) {
	d := experimentDomain()
	p1, err := schedule.Plan(d, 42)
	require.NoError(t, err)
	p2, err := schedule.Plan(d, 42)
	require.NoError(t, err)
	require.Len(t, p1, 120)
	if diff := cmp.Diff(p1, p2); diff != "" {
		t.Fatalf("plans differ for one seed:\n%s", diff)
	}
	for i, e := range p1 {
		require.Equal(t, i+1, e.RunID)
	}
}

// TestPlanSeedsPermute: different seeds ⇒ different order over the same multiset.
func TestPlanSeedsPermute(t *testing.T) {
	d := experimentDomain()
	built, err := schedule.Build(d)
	require.NoError(t, err)

	p42, err := schedule.Plan(d, 42)
	require.NoError(t, err)
	p7, err := schedule.Plan(d, 7)
	require.NoError(t, err)

	ignoreID := cmpopts.IgnoreFields(schedule.Entry{}, "RunID")
	require.False(t, cmp.Equal(p42, p7, ignoreID), "seeds 42 and 7 gave the same order")
	require.False(t, cmp.Equal(built, p42, ignoreID), "shuffle left the build order intact")

	less := func(a, b schedule.Entry) bool {
		if a.Environment != b.Environment {
			return a.Environment < b.Environment
		}
		if a.Algorithm != b.Algorithm {
			return a.Algorithm < b.Algorithm
		}
		return a.Rep < b.Rep
	}
	sorted := cmpopts.SortSlices(less)
	require.True(t, cmp.Equal(built, p42, ignoreID, sorted))
	require.True(t, cmp.Equal(built, p7, ignoreID, sorted))
}

func TestShuffleSmall(t *testing.T) {
	var none []schedule.Entry
	schedule.Shuffle(none, 1)
	require.Empty(t, none)

	one := []schedule.Entry{{Environment: "go", Rep: 1}}
	schedule.Shuffle(one, 1)
	require.Equal(t, "go", one[0].Environment)
}
