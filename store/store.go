// SPDX-License-Identifier: MIT

package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/mmbench/matrix"
)

// Format selects a file encoding.
type Format int

const (
	// Binary is the canonical gonum mat.Dense encoding (.bin).
	Binary Format = iota
	// Text is the comma-separated fallback (.csv).
	Text
)

var formatExt = [...]string{
	Binary: ".bin",
	Text:   ".csv",
}

// Ext returns the file extension of f, including the dot.
func (f Format) Ext() string {
	if f < Binary || int(f) >= len(formatExt) {
		return ""
	}

	return formatExt[f]
}

// String returns the extension without the dot ("bin", "csv").
func (f Format) String() string {
	if ext := f.Ext(); ext != "" {
		return ext[1:]
	}

	return fmt.Sprintf("format(%d)", int(f))
}

// ParseFormats parses a comma-separated list such as "bin,csv".
// Duplicates are collapsed; order is preserved.
func ParseFormats(s string) ([]Format, error) {
	var out []Format
	seen := make(map[Format]bool, len(formatExt))
	for _, tok := range strings.Split(s, ",") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok == "" {
			continue
		}
		f, ok := formatOf("." + tok)
		if !ok {
			return nil, fmt.Errorf("%w: unknown format %q", ErrFormat, tok)
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no formats in %q", ErrFormat, s)
	}

	return out, nil
}

func formatOf(ext string) (Format, bool) {
	for i, e := range formatExt {
		if strings.EqualFold(e, ext) {
			return Format(i), true
		}
	}

	return 0, false
}

// Paths returns the file names of the n×n pair in dir for format f.
func Paths(dir string, n int, f Format) (a, b string) {
	return filepath.Join(dir, fmt.Sprintf("A_%d%s", n, f.Ext())),
		filepath.Join(dir, fmt.Sprintf("B_%d%s", n, f.Ext()))
}

// Save writes m to path, choosing the encoding from the extension. Parent
// directories are created; an existing file is replaced.
//
// Errors:
//   - ErrFormat for an unknown extension; I/O errors as returned by os.
func Save(path string, m *matrix.Dense) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return storeErrorf("Save", path, err)
	}
	f, ok := formatOf(filepath.Ext(path))
	if !ok {
		return storeErrorf("Save", path, ErrFormat)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return storeErrorf("Save", path, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return storeErrorf("Save", path, err)
	}
	w := bufio.NewWriter(file)
	switch f {
	case Binary:
		err = writeBinary(w, m)
	default:
		err = writeText(w, m)
	}
	if err == nil {
		err = w.Flush()
	}
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return storeErrorf("Save", path, err)
	}

	return nil
}

// SavePair writes A and B of order n into dir in every requested format and
// returns the written paths.
func SavePair(dir string, a, b *matrix.Dense, formats ...Format) ([]string, error) {
	var written []string
	for _, f := range formats {
		pa, pb := Paths(dir, a.Rows(), f)
		if err := Save(pa, a); err != nil {
			return written, err
		}
		if err := Save(pb, b); err != nil {
			return append(written, pa), err
		}
		written = append(written, pa, pb)
	}

	return written, nil
}

// Load reads a matrix from path, choosing the decoder from the extension.
//
// Errors:
//   - ErrNotFound when the file does not exist.
//   - ErrFormat for an unknown extension or a malformed payload.
func Load(path string) (*matrix.Dense, error) {
	f, ok := formatOf(filepath.Ext(path))
	if !ok {
		return nil, storeErrorf("Load", path, ErrFormat)
	}
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, storeErrorf("Load", path, ErrNotFound)
	}
	if err != nil {
		return nil, storeErrorf("Load", path, err)
	}
	defer file.Close()

	var (
		r io.Reader = bufio.NewReader(file)
		m *matrix.Dense
	)
	switch f {
	case Binary:
		m, err = readBinary(r)
	default:
		m, err = readText(r)
	}
	if err != nil {
		return nil, storeErrorf("Load", path, err)
	}

	return m, nil
}

// LoadPair loads A_<n> and B_<n> from dir, preferring the binary encoding
// and falling back to CSV per matrix.
//
// Errors:
//   - ErrNotFound when neither encoding exists.
//   - ErrShape when a payload is not n×n.
//   - ErrFormat as surfaced by Load.
func LoadPair(dir string, n int) (a, b *matrix.Dense, err error) {
	binA, binB := Paths(dir, n, Binary)
	csvA, csvB := Paths(dir, n, Text)
	if a, err = loadSquare(n, binA, csvA); err != nil {
		return nil, nil, err
	}
	if b, err = loadSquare(n, binB, csvB); err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

func loadSquare(n int, paths ...string) (*matrix.Dense, error) {
	var (
		m   *matrix.Dense
		err error
	)
	for _, p := range paths {
		m, err = Load(p)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if r, c := m.Shape(); r != n || c != n {
			return nil, storeErrorf("LoadPair", p, fmt.Errorf("%w: got %dx%d, want %dx%d", ErrShape, r, c, n, n))
		}

		return m, nil
	}

	return nil, err
}
