// SPDX-License-Identifier: MIT

package network_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/ntwrk/network"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

// line places instances on a number line; distance is |x_i - x_j|.
func line(pos []float64) network.PairFunc {
	return func(i, j int) (float64, error) {
		return math.Abs(pos[i] - pos[j]), nil
	}
}

// thresholdFixture: five distinct labels plus one duplicate instance whose
// position must be ignored (first occurrence represents the node).
func thresholdFixture() ([]string, network.PairFunc) {
	labels := []string{"a", "b", "c", "a", "d", "e"}
	pos := []float64{0, 0.1, 3, 99, 10, 20}
	return labels, line(pos)
}

func TestNodes_Dedup(t *testing.T) {
	nodes, ids := network.Dedup([]string{"x", "y", "x", "z", "y"})
	assert.Equal(t, []int{0, 1, 0, 2, 1}, ids)
	assert.Equal(t, []string{"x", "y", "z"}, nodes.Labels())
	assert.Equal(t, 3, nodes.Len())
	assert.Equal(t, 3, nodes.Representative(2))

	id, ok := nodes.ID("y")
	assert.True(t, ok)
	assert.Equal(t, 1, id)
	_, ok = nodes.ID("w")
	assert.False(t, ok)

	assert.Equal(t, 3, nodes.Add("w"))
	assert.Equal(t, 5, nodes.Representative(3))
}

// TestBuildPairwise_Thresholds keeps exactly the pairs with 0.1 < d < 10.
func TestBuildPairwise_Thresholds(t *testing.T) {
	defer goleak.VerifyNone(t)

	labels, dist := thresholdFixture()
	got, err := network.BuildPairwise(context.Background(), labels, dist)
	require.NoError(t, err)

	want := &network.Table{
		Nodes: []string{"a", "b", "c", "d", "e"},
		Edges: []network.Edge{
			{Source: 0, Target: 2, Weight: 3},
			{Source: 1, Target: 2, Weight: 2.9},
			{Source: 1, Target: 3, Weight: 9.9},
			{Source: 2, Target: 3, Weight: 7},
		},
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("table mismatch (-want +got):\n%s", diff)
	}

	seen := map[[2]int]bool{}
	for _, e := range got.Edges {
		assert.Less(t, e.Source, e.Target, "no self pairs, canonical order")
		k := [2]int{e.Source, e.Target}
		assert.False(t, seen[k], "duplicate %v", k)
		seen[k] = true
	}
}

// TestBuildPairwise_WorkerInvariance checks that worker count and scan
// direction never change the table.
func TestBuildPairwise_WorkerInvariance(t *testing.T) {
	defer goleak.VerifyNone(t)

	labels, dist := thresholdFixture()
	base, err := network.BuildPairwise(context.Background(), labels, dist)
	require.NoError(t, err)

	for _, w := range []int{1, 2, 3, 5, 8} {
		for _, full := range []bool{false, true} {
			t.Run(fmt.Sprintf("workers=%d/full=%v", w, full), func(t *testing.T) {
				opts := []network.Option{network.WithWorkers(w), network.WithLogger(zaptest.NewLogger(t))}
				if full {
					opts = append(opts, network.WithFullScan())
				}
				got, err := network.BuildPairwise(context.Background(), labels, dist, opts...)
				require.NoError(t, err)
				if diff := cmp.Diff(base, got); diff != "" {
					t.Fatalf("mismatch (-base +got):\n%s", diff)
				}
			})
		}
	}
}

// TestBuildPairwise_Retention thins edges reproducibly.
func TestBuildPairwise_Retention(t *testing.T) {
	labels := make([]string, 30)
	pos := make([]float64, 30)
	for i := range labels {
		labels[i] = fmt.Sprintf("n%02d", i)
		pos[i] = float64(i) * 0.25
	}
	dist := line(pos)
	ctx := context.Background()

	all, err := network.BuildPairwise(ctx, labels, dist)
	require.NoError(t, err)

	one, err := network.BuildPairwise(ctx, labels, dist, network.WithProbability(0.5), network.WithSeed(7))
	require.NoError(t, err)
	many, err := network.BuildPairwise(ctx, labels, dist,
		network.WithProbability(0.5), network.WithSeed(7), network.WithWorkers(4), network.WithFullScan())
	require.NoError(t, err)

	assert.Equal(t, one, many)
	assert.Less(t, len(one.Edges), len(all.Edges))
	assert.NotEmpty(t, one.Edges)

	full := map[network.Edge]bool{}
	for _, e := range all.Edges {
		full[e] = true
	}
	for _, e := range one.Edges {
		assert.True(t, full[e], "retained edge %v must pass the threshold", e)
	}

	// seed 0 is the fixed default
	z1, err := network.BuildPairwise(ctx, labels, dist, network.WithProbability(0.3), network.WithSeed(0))
	require.NoError(t, err)
	z2, err := network.BuildPairwise(ctx, labels, dist, network.WithProbability(0.3))
	require.NoError(t, err)
	assert.Equal(t, z1, z2)
}

func TestBuildPairwise_Weights(t *testing.T) {
	labels, dist := thresholdFixture()
	ctx := context.Background()

	inv, err := network.BuildPairwise(ctx, labels, dist, network.WithWeight(network.WeightInverse))
	require.NoError(t, err)
	require.Len(t, inv.Edges, 4)
	assert.InDelta(t, 1.0/3, inv.Edges[0].Weight, 1e-12)

	off, err := network.BuildPairwise(ctx, labels, dist, network.WithWeight(network.WeightOffset), network.WithOffset(1))
	require.NoError(t, err)
	assert.InDelta(t, 4.0, off.Edges[0].Weight, 1e-12)

	_, err = network.BuildPairwise(ctx, []string{"a", "b"}, func(i, j int) (float64, error) { return 0, nil },
		network.WithThresholds(-1, 1), network.WithWeight(network.WeightInverse))
	assert.ErrorIs(t, err, network.ErrZeroDistance)
}

func TestBuildPairwise_Validation(t *testing.T) {
	ctx := context.Background()
	labels, dist := thresholdFixture()

	_, err := network.BuildPairwise(ctx, labels, dist, network.WithThresholds(5, 5))
	assert.ErrorIs(t, err, network.ErrBadThreshold)
	_, err = network.BuildPairwise(ctx, labels, dist, network.WithThresholds(math.NaN(), 5))
	assert.ErrorIs(t, err, network.ErrBadThreshold)

	for _, p := range []float64{0, -0.1, 1.5, math.NaN()} {
		_, err = network.BuildPairwise(ctx, labels, dist, network.WithProbability(p))
		assert.ErrorIs(t, err, network.ErrBadProbability, "p=%g", p)
	}

	_, err = network.BuildPairwise(ctx, labels, nil)
	assert.ErrorIs(t, err, network.ErrNilDistance)

	assert.Panics(t, func() { network.WithWorkers(0) })
	assert.Panics(t, func() { network.WithRand(nil) })
	assert.Panics(t, func() { network.WithLogger(nil) })
	assert.Panics(t, func() { network.WithModulus(0) })

	empty, err := network.BuildPairwise(ctx, nil, dist)
	require.NoError(t, err)
	assert.Empty(t, empty.Nodes)
	assert.Empty(t, empty.Edges)
}

// TestBuildPairwise_WorkerFailure reports the failing range and no table.
func TestBuildPairwise_WorkerFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	boom := errors.New("boom")
	labels, base := thresholdFixture()
	dist := func(i, j int) (float64, error) {
		if i == 4 || j == 4 {
			return 0, boom
		}
		return base(i, j)
	}

	got, err := network.BuildPairwise(context.Background(), labels, dist, network.WithWorkers(3))
	assert.Nil(t, got)
	require.Error(t, err)
	assert.ErrorIs(t, err, network.ErrWorkerFailed)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, network.ErrMergeConflict)

	var we *network.WorkerError
	require.ErrorAs(t, err, &we)
	assert.Less(t, we.Lo, we.Hi)
}

// TestBuildPairwise_MergeConflict feeds an asymmetric distance to a full
// scan, so both directions of a pair disagree.
func TestBuildPairwise_MergeConflict(t *testing.T) {
	dist := func(i, j int) (float64, error) { return float64(i) + 0.5, nil }

	_, err := network.BuildPairwise(context.Background(), []string{"a", "b", "c"}, dist,
		network.WithFullScan(), network.WithWorkers(2))
	require.Error(t, err)
	assert.ErrorIs(t, err, network.ErrMergeConflict)
	assert.NotErrorIs(t, err, network.ErrWorkerFailed)

	var me *network.MergeError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, 0, me.Source)
	assert.Equal(t, 1, me.Target)
}

func TestBuildPairwise_Cancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	labels, dist := thresholdFixture()

	_, err := network.BuildPairwise(ctx, labels, dist, network.WithWorkers(2))
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, network.ErrWorkerFailed)
}

func TestBuildSequential(t *testing.T) {
	labels := []string{"x", "y", "x", "x"}
	steps := []float64{2, 3, 0}
	dist := func(i, j int) (float64, error) {
		require.Equal(t, i+1, j)
		return steps[i], nil
	}

	got, err := network.BuildSequential(labels, dist)
	require.NoError(t, err)
	want := &network.Table{
		Nodes: []string{"x", "y"},
		Edges: []network.Edge{
			{Source: 0, Target: 1, Weight: 2.1},
			{Source: 1, Target: 0, Weight: 3.1},
			{Source: 0, Target: 0, Weight: 0.1},
		},
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	raw, err := network.BuildSequential(labels, dist, network.WithWeight(network.WeightRaw))
	require.NoError(t, err)
	assert.Equal(t, 2.0, raw.Edges[0].Weight)

	_, err = network.BuildSequential(labels, dist, network.WithWeight(network.WeightInverse))
	assert.ErrorIs(t, err, network.ErrZeroDistance)

	single, err := network.BuildSequential([]string{"x"}, dist)
	require.NoError(t, err)
	assert.Empty(t, single.Edges)

	_, err = network.BuildSequential(labels, nil)
	assert.ErrorIs(t, err, network.ErrNilDistance)
}
