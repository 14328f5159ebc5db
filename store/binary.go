// SPDX-License-Identifier: MIT

package store

import (
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/mmbench/matrix"
	"gonum.org/v1/gonum/mat"
)

// writeBinary encodes m in the gonum mat.Dense binary format. The gonum view
// shares m's buffer; nothing is copied before encoding.
func writeBinary(w io.Writer, m *matrix.Dense) error {
	r, c := m.Shape()
	if _, err := mat.NewDense(r, c, m.RawData()).MarshalBinaryTo(w); err != nil {
		return err
	}

	return nil
}

// readBinary decodes one gonum mat.Dense payload into a fresh matrix.Dense.
//
// Errors:
//   - ErrFormat for truncated or corrupt payloads and non-finite entries.
func readBinary(r io.Reader) (*matrix.Dense, error) {
	var md mat.Dense
	if _, err := md.UnmarshalBinaryFrom(r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	rows, cols := md.Dims()
	data := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		copy(data[i*cols:(i+1)*cols], md.RawRowView(i))
	}
	for idx, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: non-finite value at (%d,%d)", ErrFormat, idx/cols, idx%cols)
		}
	}

	return matrix.NewDenseFrom(rows, cols, data)
}
