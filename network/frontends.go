// SPDX-License-Identifier: MIT

package network

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/ntwrk/leading"
	"github.com/katalvlaran/ntwrk/matrix"
	"github.com/katalvlaran/ntwrk/pcset"
	"github.com/katalvlaran/ntwrk/rhythm"
)

// RhythmEntry is one row of a rhythm dictionary.
type RhythmEntry struct {
	Label string
	Cell  *rhythm.Sequence
}

// PitchLeadingNetwork connects pitch vectors by their minimal voice-leading
// cost (leading.MinimalDistance under WithModulus and WithMetric). Each
// vector is labelled by its sorted form, so permutations share a node.
func PitchLeadingNetwork(ctx context.Context, sets [][]int, opts ...Option) (*Table, error) {
	cfg := newConfig(opts)
	labels := make([]string, len(sets))
	for i, s := range sets {
		labels[i] = pcset.Label(sortedInts(s))
	}
	lopts := []leading.Option{leading.WithModulus(cfg.modulus), leading.WithMetric(cfg.metric)}

	return runPairwise(ctx, labels, func(i, j int) (float64, error) {
		res, err := leading.MinimalDistance(sets[i], sets[j], lopts...)
		return res.Cost, err
	}, cfg)
}

// PrimeFormNetwork collapses sets onto their prime forms: all members of a
// set class share one node, and edges measure the minimal voice leading
// between prime forms.
func PrimeFormNetwork(ctx context.Context, sets []*pcset.ResidueSet, opts ...Option) (*Table, error) {
	cfg := newConfig(opts)
	primes := make([][]int, len(sets))
	labels := make([]string, len(sets))
	for i, s := range sets {
		if s == nil {
			return nil, fmt.Errorf("PrimeFormNetwork: set %d: %w", i, pcset.ErrEmptySet)
		}
		primes[i] = s.PrimeForm()
		labels[i] = pcset.Label(primes[i])
	}

	return runPairwise(ctx, labels, func(i, j int) (float64, error) {
		res, err := leading.MinimalDistance(primes[i], primes[j],
			leading.WithModulus(sets[i].Modulus()), leading.WithMetric(cfg.metric))
		return res.Cost, err
	}, cfg)
}

// RhythmNetwork connects the cells of a rhythm dictionary by
// leading.RhythmDistance under metric.
func RhythmNetwork(ctx context.Context, dict []RhythmEntry, metric leading.Metric, opts ...Option) (*Table, error) {
	cfg := newConfig(opts)
	labels := make([]string, len(dict))
	for i, e := range dict {
		if e.Cell == nil {
			return nil, fmt.Errorf("RhythmNetwork: entry %d (%q): %w", i, e.Label, rhythm.ErrEmptySequence)
		}
		labels[i] = e.Label
	}

	return runPairwise(ctx, labels, func(i, j int) (float64, error) {
		return leading.RhythmDistance(dict[i].Cell, dict[j].Cell, metric)
	}, cfg)
}

// TimbralNetwork connects instances by the distance between their feature
// rows (WithMetric, Euclidean by default). The weight defaults to 1/d, so
// close timbres get heavy edges.
func TimbralNetwork(ctx context.Context, labels []string, X *matrix.Dense, opts ...Option) (*Table, error) {
	if X == nil {
		return nil, fmt.Errorf("TimbralNetwork: %w", matrix.ErrNilMatrix)
	}
	if len(labels) != X.Rows() {
		return nil, fmt.Errorf("TimbralNetwork: %d labels, %d rows: %w", len(labels), X.Rows(), ErrLengthMismatch)
	}
	cfg := newConfig(append([]Option{WithWeight(WeightInverse)}, opts...))
	rows := make([][]float64, X.Rows())
	for i := range rows {
		row, err := X.Row(i)
		if err != nil {
			return nil, fmt.Errorf("TimbralNetwork: %w", err)
		}
		rows[i] = row
	}

	return runPairwise(ctx, labels, func(i, j int) (float64, error) {
		return leading.PointDistance(rows[i], rows[j], cfg.metric)
	}, cfg)
}

// OrchestralNetwork links consecutive vectors of a sequence (orchestration
// or pitch vectors) with weight = minimal distance + offset. Vectors are
// labelled as given, since position carries meaning.
func OrchestralNetwork(seq [][]int, opts ...Option) (*Table, error) {
	cfg := newConfig(opts)
	labels := make([]string, len(seq))
	for i, v := range seq {
		labels[i] = pcset.Label(v)
	}
	lopts := []leading.Option{leading.WithModulus(cfg.modulus), leading.WithMetric(cfg.metric)}

	return runSequential(labels, func(i, j int) (float64, error) {
		res, err := leading.MinimalDistance(seq[i], seq[j], lopts...)
		return res.Cost, err
	}, cfg)
}

func sortedInts(xs []int) []int {
	out := make([]int, len(xs))
	copy(out, xs)
	sort.Ints(out)

	return out
}
