// SPDX-License-Identifier: MIT

package store_test

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ntwrk/internal/store"
	"github.com/katalvlaran/ntwrk/network"
)

func sampleTable() *network.Table {
	return &network.Table{
		Nodes: []string{"[0,4,7]", "[0,3,8]", "[2,5,9]"},
		Edges: []network.Edge{
			{Source: 0, Target: 1, Weight: 1.4142135623730951},
			{Source: 0, Target: 2, Weight: 3},
		},
	}
}

func readAll(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVSink(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	sink, err := store.NewCSVSink(dir)
	require.NoError(t, err)
	defer sink.Close()

	id, err := sink.Write(context.Background(), "pitch", sampleTable())
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)

	run, err := store.ReadCSVRun(dir)
	require.NoError(t, err)
	assert.Equal(t, id, run.ID)
	assert.Equal(t, "pitch", run.Kind)
	assert.Equal(t, 3, run.Nodes)
	assert.Equal(t, 2, run.Edges)
	assert.False(t, run.CreatedAt.IsZero())

	assert.Equal(t, [][]string{{"Label"}, {"[0,4,7]"}, {"[0,3,8]"}, {"[2,5,9]"}},
		readAll(t, filepath.Join(dir, store.NodesFile)))
	assert.Equal(t, [][]string{
		{"Source", "Target", "Weight"},
		{"0", "1", "1.4142135623730951"},
		{"0", "2", "3"},
	}, readAll(t, filepath.Join(dir, store.EdgesFile)))
}

func TestReadCSVRun_Errors(t *testing.T) {
	_, err := store.ReadCSVRun(t.TempDir())
	assert.Error(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, store.RunFile), []byte("ID,Kind,Nodes,Edges,CreatedAt\nx,pitch,many,0,now\n"), 0o644))
	_, err = store.ReadCSVRun(dir)
	assert.ErrorIs(t, err, store.ErrMalformed)
}

func TestSQLiteSink_RoundTrip(t *testing.T) {
	sink, err := store.NewSQLiteSink(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { sink.Close() })
	ctx := context.Background()

	want := sampleTable()
	id, err := sink.Write(ctx, "pitch", want)
	require.NoError(t, err)

	got, err := sink.Table(ctx, id)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip (-want +got):\n%s", diff)
	}

	seq := &network.Table{
		Nodes: []string{"x", "y"},
		Edges: []network.Edge{{Source: 0, Target: 1, Weight: 1.1}, {Source: 1, Target: 0, Weight: 1.1}, {Source: 0, Target: 1, Weight: 2.1}},
	}
	id2, err := sink.Write(ctx, "sequence", seq)
	require.NoError(t, err)
	got, err = sink.Table(ctx, id2)
	require.NoError(t, err)
	assert.Equal(t, seq, got)

	runs, err := sink.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	kinds := []string{runs[0].Kind, runs[1].Kind}
	assert.ElementsMatch(t, []string{"pitch", "sequence"}, kinds)
	for _, r := range runs {
		assert.False(t, r.CreatedAt.IsZero())
	}

	_, err = sink.Table(ctx, "nope")
	assert.ErrorIs(t, err, store.ErrRunNotFound)
}

func TestSQLiteSink_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db", "ntwrk.db")
	sink, err := store.NewSQLiteSink(path)
	require.NoError(t, err)
	_, err = sink.Write(context.Background(), "pitch", sampleTable())
	require.NoError(t, err)
	require.NoError(t, sink.Close())

	reopened, err := store.NewSQLiteSink(path)
	require.NoError(t, err)
	defer reopened.Close()
	runs, err := reopened.Runs(context.Background())
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestReadRhythmDictionary(t *testing.T) {
	in := "Label,Cell\nr1,1/4 1/8 1/8\nr2, 1/2 1/4 1/4\n"
	dict, err := store.ReadRhythmDictionary(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, dict, 2)
	assert.Equal(t, "r1", dict[0].Label)
	assert.Equal(t, "1/4 1/8 1/8", dict[0].Cell.String())
	assert.Equal(t, "1/2 1/4 1/4", dict[1].Cell.String())

	_, err = store.ReadRhythmDictionary(strings.NewReader("r1,1/4\nr2,x/4\n"))
	assert.ErrorIs(t, err, store.ErrMalformed)

	_, err = store.ReadRhythmDictionary(strings.NewReader("r1,1/4,extra\n"))
	assert.ErrorIs(t, err, store.ErrMalformed)
}

func TestReadFeatures(t *testing.T) {
	in := "name,c0,c1\nsnd1,0,0\nsnd2,3,4\n"
	labels, X, err := store.ReadFeatures(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"snd1", "snd2"}, labels)
	assert.Equal(t, 2, X.Rows())
	assert.Equal(t, 2, X.Cols())
	v, _ := X.At(1, 1)
	assert.Equal(t, 4.0, v)

	_, _, err = store.ReadFeatures(strings.NewReader("a,1\nb,zz\n"))
	assert.ErrorIs(t, err, store.ErrMalformed)

	_, _, err = store.ReadFeatures(strings.NewReader("a\n"))
	assert.ErrorIs(t, err, store.ErrMalformed)

	_, _, err = store.ReadFeatures(strings.NewReader(""))
	assert.ErrorIs(t, err, store.ErrMalformed)
}

func TestReadVectors(t *testing.T) {
	in := "# triads\n0 4 7\n\n0,3,8\n 2, 5 ,9 \n"
	got, err := store.ReadVectors(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 4, 7}, {0, 3, 8}, {2, 5, 9}}, got)

	_, err = store.ReadVectors(strings.NewReader("0 4 x\n"))
	assert.ErrorIs(t, err, store.ErrMalformed)
}
