// SPDX-License-Identifier: MIT

package bench

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// ResultsLog is an append-only CSV file of RunRecords.
type ResultsLog struct {
	path string
}

// NewResultsLog returns a log bound to path. Nothing touches the disk until
// the first Append.
func NewResultsLog(path string) *ResultsLog {
	return &ResultsLog{path: path}
}

// Path returns the file the log appends to.
func (l *ResultsLog) Path() string { return l.path }

// Append writes records with one Write call, preceded by the header only when
// the file does not exist yet. Parent directories are created.
// Appending zero records is a no-op.
func (l *ResultsLog) Append(records ...RunRecord) error {
	if len(records) == 0 {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("bench.Append(%s): %w", l.path, err)
	}
	_, statErr := os.Stat(l.path)
	needHeader := errors.Is(statErr, fs.ErrNotExist)

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if needHeader {
		_ = cw.Write(Header)
	}
	for _, r := range records {
		_ = cw.Write(r.fields())
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("bench.Append(%s): %w", l.path, err)
	}

	f, err := os.OpenFile(l.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("bench.Append(%s): %w", l.path, err)
	}
	_, err = f.Write(buf.Bytes())
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("bench.Append(%s): %w", l.path, err)
	}

	return nil
}

// ReadLog parses the log at path.
//
// Errors:
//   - fs.ErrNotExist (wrapped) when the file is missing.
//   - ErrBadLog for a wrong header or unparsable rows.
func ReadLog(path string) ([]RunRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bench.ReadLog(%s): %w", path, err)
	}
	defer f.Close()

	records, err := readRecords(f)
	if err != nil {
		return nil, fmt.Errorf("bench.ReadLog(%s): %w", path, err)
	}

	return records, nil
}

func readRecords(r io.Reader) ([]RunRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)
	head, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadLog, err)
	}
	if !slices.Equal(head, Header) {
		return nil, fmt.Errorf("%w: header %v", ErrBadLog, head)
	}

	var out []RunRecord
	for line := 2; ; line++ {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadLog, err)
		}
		rec, err := parseRecord(cells)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, rec)
	}
}
