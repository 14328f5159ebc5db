// SPDX-License-Identifier: MIT

package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/mmbench/matrix"
)

// writeText writes one comma-separated row per line using the shortest
// representation that round-trips a float64.
func writeText(w io.Writer, m *matrix.Dense) error {
	r, c := m.Shape()
	data := m.RawData()
	cw := csv.NewWriter(w)
	record := make([]string, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			record[j] = strconv.FormatFloat(data[i*c+j], 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// readText parses the text fallback. All rows must have the column count of
// the first row.
//
// Errors:
//   - ErrFormat for empty input, ragged rows and unparsable or non-finite cells.
func readText(r io.Reader) (*matrix.Dense, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	var (
		data       []float64
		rows, cols int
	)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		if rows == 0 {
			cols = len(record)
		}
		for j, cell := range record {
			v, perr := strconv.ParseFloat(cell, 64)
			if perr != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: row %d col %d: %q", ErrFormat, rows, j, cell)
			}
			data = append(data, v)
		}
		rows++
	}
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ErrFormat)
	}

	return matrix.NewDenseFrom(rows, cols, data)
}
