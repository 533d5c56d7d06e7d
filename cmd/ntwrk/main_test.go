// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ntwrk/internal/store"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NTWRK_CONFIG", "")
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestPCS(t *testing.T) {
	out, err := run(t, "pcs", "7", "0", "4")
	require.NoError(t, err)
	assert.Equal(t, "normal: [0 4 7]\nprime:  [0 3 7]\nicv:    [0 0 1 1 1 0]\nforte:  [3-11]\n", out)

	out, err = run(t, "pcs", "--modulus", "19", "0", "5", "11")
	require.NoError(t, err)
	assert.Contains(t, out, "forte:  -")

	_, err = run(t, "pcs", "0", "x")
	assert.ErrorContains(t, err, "not an integer")
}

func TestLead(t *testing.T) {
	out, err := run(t, "lead", "0,4,7", "[11,2,5]")
	require.NoError(t, err)
	assert.Equal(t, "cost:    3\nleading: [-1 2 5]\n", out)

	_, err = run(t, "lead", "0,4,7", "0,4")
	assert.Error(t, err)
}

func TestLeadNetwork_CSV(t *testing.T) {
	in := writeFile(t, "triads.txt", "0 4 7\n0 3 8\n2 5 9\n7 4 0\n")
	dir := t.TempDir()

	out, err := run(t, "lead-network", in, "--out", dir, "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "nodes=3 edges=3")

	nodes, err := os.ReadFile(filepath.Join(dir, store.NodesFile))
	require.NoError(t, err)
	assert.Equal(t, "Label\n\"[0,4,7]\"\n\"[0,3,8]\"\n\"[2,5,9]\"\n", string(nodes))

	edges, err := os.ReadFile(filepath.Join(dir, store.EdgesFile))
	require.NoError(t, err)
	assert.Equal(t, "Source,Target,Weight\n0,1,1.4142135623730951\n0,2,3\n1,2,3\n", string(edges))

	rec, err := store.ReadCSVRun(dir)
	require.NoError(t, err)
	assert.Equal(t, "lead", rec.Kind)
	assert.Contains(t, out, "run="+rec.ID+" ")
}

func TestMetricsFile(t *testing.T) {
	in := writeFile(t, "triads.txt", "0 4 7\n0 3 8\n2 5 9\n")
	metrics := filepath.Join(t.TempDir(), "ntwrk.prom")

	_, err := run(t, "lead-network", in, "--out", t.TempDir(), "--metrics-file", metrics)
	require.NoError(t, err)

	body, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(body), `ntwrk_network_builds_total{mode="pairwise",result="ok"}`)
	assert.Contains(t, string(body), "ntwrk_network_pairs_scanned_total")
	assert.Contains(t, string(body), `ntwrk_network_edges_total{mode="pairwise"}`)
}

func TestPCSNetwork_SQLite(t *testing.T) {
	in := writeFile(t, "sets.txt", "0 4 7\n0 3 8\n5 6 7\n")
	db := filepath.Join(t.TempDir(), "runs.db")

	out, err := run(t, "pcs-network", in, "--format", "sqlite", "--sqlite", db)
	require.NoError(t, err)
	assert.Contains(t, out, "nodes=2 edges=1")

	sink, err := store.NewSQLiteSink(db)
	require.NoError(t, err)
	defer sink.Close()
	runs, err := sink.Runs(context.Background())
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "pcs", runs[0].Kind)
}

func TestSequenceNetwork(t *testing.T) {
	in := writeFile(t, "seq.txt", "0 4 7\n0 3 8\n0 4 7\n")
	out, err := run(t, "sequence-network", in, "--out", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "nodes=2 edges=2")
}

func TestRhythmNetwork(t *testing.T) {
	in := writeFile(t, "dict.csv", "Label,Cell\na,1/4 1/4\nb,1/8 3/8\nc,1/4 1/4\n")
	out, err := run(t, "rhythm-network", in, "--metric", "cityblock", "--out", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "nodes=3 edges=2")
}

func TestTimbralNetwork(t *testing.T) {
	in := writeFile(t, "mfcc.csv", "name,c0,c1\ns1,0,0\ns2,3,4\ns3,0,1\n")
	out, err := run(t, "timbral-network", in, "--out", t.TempDir(), "--full-scan", "--workers", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "nodes=3 edges=3")

	out, err = run(t, "timbral-network", in, "--out", t.TempDir(), "--scale", "zscore")
	require.NoError(t, err)
	assert.Contains(t, out, "nodes=3")

	_, err = run(t, "timbral-network", in, "--scale", "log")
	assert.ErrorContains(t, err, "unknown scaling")
}

func TestBadOverride(t *testing.T) {
	_, err := run(t, "pcs", "--prob", "2", "0", "4", "7")
	assert.Error(t, err)
}
