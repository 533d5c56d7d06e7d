// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/ntwrk/network"
)

// File names written by CSVSink.
const (
	NodesFile = "nodes.csv"
	EdgesFile = "edges.csv"
	RunFile   = "run.csv"
)

// CSVSink writes nodes.csv, edges.csv and run.csv into a directory. Each
// Write replaces the previous files; run.csv records the run id returned
// by Write.
type CSVSink struct {
	dir string
}

// NewCSVSink creates dir if needed.
func NewCSVSink(dir string) (*CSVSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	return &CSVSink{dir: dir}, nil
}

// Write stores t and returns the id recorded in run.csv.
func (s *CSVSink) Write(ctx context.Context, kind string, t *network.Table) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	nodes := make([][]string, 0, len(t.Nodes)+1)
	nodes = append(nodes, []string{"Label"})
	for _, l := range t.Nodes {
		nodes = append(nodes, []string{l})
	}
	if err := writeCSV(filepath.Join(s.dir, NodesFile), nodes); err != nil {
		return "", err
	}

	edges := make([][]string, 0, len(t.Edges)+1)
	edges = append(edges, []string{"Source", "Target", "Weight"})
	for _, e := range t.Edges {
		edges = append(edges, []string{
			strconv.Itoa(e.Source),
			strconv.Itoa(e.Target),
			strconv.FormatFloat(e.Weight, 'g', -1, 64),
		})
	}
	if err := writeCSV(filepath.Join(s.dir, EdgesFile), edges); err != nil {
		return "", err
	}

	id := uuid.NewString()
	run := [][]string{
		{"ID", "Kind", "Nodes", "Edges", "CreatedAt"},
		{id, kind, strconv.Itoa(len(t.Nodes)), strconv.Itoa(len(t.Edges)), time.Now().UTC().Format(time.RFC3339Nano)},
	}
	if err := writeCSV(filepath.Join(s.dir, RunFile), run); err != nil {
		return "", err
	}

	return id, nil
}

// ReadCSVRun reads the run.csv written by CSVSink in dir.
func ReadCSVRun(dir string) (Run, error) {
	f, err := os.Open(filepath.Join(dir, RunFile))
	if err != nil {
		return Run{}, fmt.Errorf("open %s: %w", RunFile, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return Run{}, fmt.Errorf("read %s: %w", RunFile, err)
	}
	if len(rows) != 2 || len(rows[1]) != 5 {
		return Run{}, fmt.Errorf("%s: %w", RunFile, ErrMalformed)
	}

	rec := rows[1]
	r := Run{ID: rec[0], Kind: rec[1]}
	if r.Nodes, err = strconv.Atoi(rec[2]); err != nil {
		return Run{}, fmt.Errorf("%s nodes: %w", RunFile, ErrMalformed)
	}
	if r.Edges, err = strconv.Atoi(rec[3]); err != nil {
		return Run{}, fmt.Errorf("%s edges: %w", RunFile, ErrMalformed)
	}
	if r.CreatedAt, err = time.Parse(time.RFC3339Nano, rec[4]); err != nil {
		return Run{}, fmt.Errorf("%s created_at: %w", RunFile, ErrMalformed)
	}

	return r, nil
}

// Close is a no-op.
func (s *CSVSink) Close() error { return nil }

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}

	return f.Close()
}
