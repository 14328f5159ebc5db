// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Header is the first line of every results log.
var Header = []string{"language", "algorithm", "n", "rep", "time_s"}

// RunRecord is one timed repetition of one cell.
type RunRecord struct {
	Environment string        // "language" column
	Algorithm   string        // CSV label of the multiply.Algorithm
	N           int           // matrix order
	Rep         int           // 1-based repetition within the job
	Elapsed     time.Duration // wall time of the multiply call
}

// Seconds returns Elapsed as float seconds.
func (r RunRecord) Seconds() float64 { return r.Elapsed.Seconds() }

// fields renders the record as CSV cells, seconds in shortest round-trip form.
func (r RunRecord) fields() []string {
	return []string{
		r.Environment,
		r.Algorithm,
		strconv.Itoa(r.N),
		strconv.Itoa(r.Rep),
		strconv.FormatFloat(r.Seconds(), 'g', -1, 64),
	}
}

// parseRecord is the inverse of fields.
func parseRecord(cells []string) (RunRecord, error) {
	if len(cells) != len(Header) {
		return RunRecord{}, fmt.Errorf("%w: %d fields, want %d", ErrBadLog, len(cells), len(Header))
	}
	n, err := strconv.Atoi(cells[2])
	if err != nil {
		return RunRecord{}, fmt.Errorf("%w: n %q", ErrBadLog, cells[2])
	}
	rep, err := strconv.Atoi(cells[3])
	if err != nil {
		return RunRecord{}, fmt.Errorf("%w: rep %q", ErrBadLog, cells[3])
	}
	secs, err := strconv.ParseFloat(cells[4], 64)
	if err != nil {
		return RunRecord{}, fmt.Errorf("%w: time_s %q", ErrBadLog, cells[4])
	}

	return RunRecord{
		Environment: cells[0],
		Algorithm:   cells[1],
		N:           n,
		Rep:         rep,
		Elapsed:     time.Duration(math.Round(secs * float64(time.Second))),
	}, nil
}
