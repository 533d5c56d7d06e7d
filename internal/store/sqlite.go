// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/ntwrk/network"
)

// ErrRunNotFound is returned by SQLiteSink.Table for an unknown run id.
var ErrRunNotFound = errors.New("store: run not found")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	kind TEXT NOT NULL,
	nodes INTEGER NOT NULL,
	edges INTEGER NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS nodes (
	run_id TEXT NOT NULL REFERENCES runs(id),
	id INTEGER NOT NULL,
	label TEXT NOT NULL,
	PRIMARY KEY (run_id, id)
);
CREATE TABLE IF NOT EXISTS edges (
	run_id TEXT NOT NULL REFERENCES runs(id),
	seq INTEGER NOT NULL,
	source INTEGER NOT NULL,
	target INTEGER NOT NULL,
	weight REAL NOT NULL,
	PRIMARY KEY (run_id, seq)
);
`

// Run describes one stored table.
type Run struct {
	ID        string
	Kind      string
	Nodes     int
	Edges     int
	CreatedAt time.Time
}

// SQLiteSink stores every table as a run in one SQLite database.
type SQLiteSink struct {
	db *sql.DB
}

// NewSQLiteSink opens (or creates) the database at path and migrates the
// schema. ":memory:" is accepted for tests.
func NewSQLiteSink(path string) (*SQLiteSink, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// one connection: ":memory:" is per connection and SQLite has one writer
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &SQLiteSink{db: db}, nil
}

// Write stores t in one transaction under a fresh run id. Edge order is
// kept, so sequential tables read back step by step.
func (s *SQLiteSink) Write(ctx context.Context, kind string, t *network.Table) (string, error) {
	id := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, kind, nodes, edges, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, kind, len(t.Nodes), len(t.Edges), time.Now().UTC().Format(time.RFC3339Nano)); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	nodeStmt, err := tx.PrepareContext(ctx, `INSERT INTO nodes (run_id, id, label) VALUES (?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare nodes: %w", err)
	}
	defer nodeStmt.Close()
	for i, l := range t.Nodes {
		if _, err := nodeStmt.ExecContext(ctx, id, i, l); err != nil {
			return "", fmt.Errorf("insert node %d: %w", i, err)
		}
	}

	edgeStmt, err := tx.PrepareContext(ctx, `INSERT INTO edges (run_id, seq, source, target, weight) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare edges: %w", err)
	}
	defer edgeStmt.Close()
	for i, e := range t.Edges {
		if _, err := edgeStmt.ExecContext(ctx, id, i, e.Source, e.Target, e.Weight); err != nil {
			return "", fmt.Errorf("insert edge (%d,%d): %w", e.Source, e.Target, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}

	return id, nil
}

// Runs lists stored runs, oldest first.
func (s *SQLiteSink) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, kind, nodes, edges, created_at FROM runs ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			r  Run
			ts string
		)
		if err := rows.Scan(&r.ID, &r.Kind, &r.Nodes, &r.Edges, &ts); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339Nano, ts)
		out = append(out, r)
	}

	return out, rows.Err()
}

// Table loads a stored run back into a network.Table.
func (s *SQLiteSink) Table(ctx context.Context, runID string) (*network.Table, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT nodes FROM runs WHERE id = ?`, runID).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return nil, fmt.Errorf("query run: %w", err)
	}

	t := &network.Table{Nodes: make([]string, n)}
	rows, err := s.db.QueryContext(ctx, `SELECT id, label FROM nodes WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("query nodes: %w", err)
	}
	for rows.Next() {
		var (
			id    int
			label string
		)
		if err := rows.Scan(&id, &label); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan node: %w", err)
		}
		if id >= 0 && id < n {
			t.Nodes[id] = label
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.db.QueryContext(ctx, `SELECT source, target, weight FROM edges WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("query edges: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var e network.Edge
		if err := rows.Scan(&e.Source, &e.Target, &e.Weight); err != nil {
			return nil, fmt.Errorf("scan edge: %w", err)
		}
		t.Edges = append(t.Edges, e)
	}

	return t, rows.Err()
}

// Close closes the database.
func (s *SQLiteSink) Close() error { return s.db.Close() }
