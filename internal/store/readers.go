// SPDX-License-Identifier: MIT

package store

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/ntwrk/matrix"
	"github.com/katalvlaran/ntwrk/network"
	"github.com/katalvlaran/ntwrk/rhythm"
)

// ErrMalformed marks an input row that cannot be decoded.
var ErrMalformed = errors.New("store: malformed input")

// ReadRhythmDictionary reads label,cell rows. A first row whose cell does
// not parse is taken as a header and skipped; any later bad row is an error.
func ReadRhythmDictionary(r io.Reader, opts ...rhythm.Option) ([]network.RhythmEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	var out []network.RhythmEntry
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		cell, err := rhythm.Parse(rec[1], opts...)
		if err != nil {
			if line == 1 {
				continue
			}
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, line, err)
		}
		out = append(out, network.RhythmEntry{Label: rec[0], Cell: cell})
	}

	return out, nil
}

// ReadFeatures reads label,f1,...,fk rows into labels and a feature matrix.
// A first row with a non-numeric feature is taken as a header.
func ReadFeatures(r io.Reader) ([]string, *matrix.Dense, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	var (
		labels []string
		rows   [][]float64
	)
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if len(rec) < 2 {
			return nil, nil, fmt.Errorf("%w: line %d: need a label and at least one feature", ErrMalformed, line)
		}
		row, err := parseFloats(rec[1:])
		if err != nil {
			if line == 1 {
				continue
			}
			return nil, nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, line, err)
		}
		labels = append(labels, rec[0])
		rows = append(rows, row)
	}

	X, err := matrix.FromRows(rows)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return labels, X, nil
}

// ReadVectors reads one integer vector per line, separated by spaces or
// commas. Blank lines and lines starting with '#' are skipped.
func ReadVectors(r io.Reader) ([][]int, error) {
	sc := bufio.NewScanner(r)
	var out [][]int
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(c rune) bool { return c == ',' || c == ' ' || c == '\t' })
		vec := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, line, err)
			}
			vec[i] = v
		}
		out = append(out, vec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read vectors: %w", err)
	}

	return out, nil
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}
