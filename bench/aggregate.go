// SPDX-License-Identifier: MIT

package bench

import (
	"cmp"
	"slices"
	"time"

	"github.com/samber/lo"
)

// Cell identifies one (environment, algorithm, order) combination.
type Cell struct {
	Environment string
	Algorithm   string
	N           int
}

// CellSummary pairs a cell with the statistics of its records.
type CellSummary struct {
	Cell    Cell
	Summary Summary
}

// Aggregate groups records by cell and summarizes each group. The result is
// ordered by environment, algorithm, then order.
func Aggregate(records []RunRecord) []CellSummary {
	groups := lo.GroupBy(records, func(r RunRecord) Cell {
		return Cell{Environment: r.Environment, Algorithm: r.Algorithm, N: r.N}
	})
	cells := lo.Keys(groups)
	slices.SortFunc(cells, func(a, b Cell) int {
		return cmp.Or(
			cmp.Compare(a.Environment, b.Environment),
			cmp.Compare(a.Algorithm, b.Algorithm),
			cmp.Compare(a.N, b.N),
		)
	})

	return lo.Map(cells, func(c Cell, _ int) CellSummary {
		durations := lo.Map(groups[c], func(r RunRecord, _ int) time.Duration { return r.Elapsed })
		return CellSummary{Cell: c, Summary: Summarize(durations)}
	})
}
