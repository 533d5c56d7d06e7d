// SPDX-License-Identifier: MIT

package network

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	modePairwise   = "pairwise"
	modeSequential = "sequential"
)

// BuildPairwise builds a thresholded network over every unordered pair of
// distinct labels.
//
// Stage 1 (Validate): thresholds, probability, non-nil dist.
// Stage 2 (Dedup): labels collapse to nodes; dist is called with the
// instance index of each node's first occurrence.
// Stage 3 (Scan): workers own contiguous row ranges and keep pairs with
// low < d < high, then apply retention and the weight transform.
// Stage 4 (Merge): after every worker returns, partials are put in
// (min,max) order, exact duplicates dropped, and edges sorted.
//
// A failing worker aborts the build with a *WorkerError; no partial table
// is returned. Cancelling ctx stops workers between rows.
//
// Complexity: O(n²) distance calls (2× under WithFullScan).
func BuildPairwise(ctx context.Context, labels []string, dist PairFunc, opts ...Option) (*Table, error) {
	return runPairwise(ctx, labels, dist, newConfig(opts))
}

func runPairwise(ctx context.Context, labels []string, dist PairFunc, cfg *config) (*Table, error) {
	start := time.Now()
	t, err := buildPairwise(ctx, labels, dist, cfg)
	buildDuration.WithLabelValues(modePairwise).Observe(time.Since(start).Seconds())
	observeResult(modePairwise, err)
	if err == nil {
		edgesKept.WithLabelValues(modePairwise).Add(float64(len(t.Edges)))
	}

	return t, err
}

func buildPairwise(ctx context.Context, labels []string, dist PairFunc, cfg *config) (*Table, error) {
	if err := cfg.validate("BuildPairwise"); err != nil {
		return nil, err
	}
	if dist == nil {
		return nil, fmt.Errorf("BuildPairwise: %w", ErrNilDistance)
	}

	nodes, _ := Dedup(labels)
	n := nodes.Len()
	mode := cfg.weight
	if mode == WeightDefault {
		mode = WeightRaw
	}

	var key int64
	if cfg.probability < 1 {
		key = cfg.rng.Int63()
	}

	ranges := partition(n, cfg.workers)
	partials := make([][]Edge, len(ranges))
	g, gctx := errgroup.WithContext(ctx)
	for w, r := range ranges {
		w, r := w, r
		g.Go(func() error {
			edges, scanned, err := scanRange(gctx, nodes, dist, cfg, mode, key, r)
			pairsScanned.Add(float64(scanned))
			if err != nil {
				return &WorkerError{Worker: w, Lo: r.lo, Hi: r.hi, Err: err}
			}
			cfg.logger.Debug("worker done",
				zap.Int("worker", w),
				zap.Int("lo", r.lo),
				zap.Int("hi", r.hi),
				zap.Int("edges", len(edges)))
			partials[w] = edges
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	edges, dropped, err := merge(partials)
	if err != nil {
		return nil, fmt.Errorf("BuildPairwise: %w", err)
	}
	duplicatesDropped.Add(float64(dropped))
	cfg.logger.Debug("pairwise merge",
		zap.Int("nodes", n),
		zap.Int("instances", len(labels)),
		zap.Int("workers", len(ranges)),
		zap.Int("edges", len(edges)),
		zap.Int("duplicates", dropped))

	return &Table{Nodes: nodes.Labels(), Edges: edges}, nil
}

// scanRange evaluates rows [r.lo, r.hi) and returns the kept edges with the
// number of distance calls made.
func scanRange(ctx context.Context, nodes *Nodes, dist PairFunc, cfg *config, mode WeightMode, key int64, r rowRange) ([]Edge, int, error) {
	n := nodes.Len()
	var (
		edges   []Edge
		scanned int
	)
	for i := r.lo; i < r.hi; i++ {
		if err := ctx.Err(); err != nil {
			return nil, scanned, err
		}
		j0 := i + 1
		if cfg.fullScan {
			j0 = 0
		}
		for j := j0; j < n; j++ {
			if j == i {
				continue
			}
			d, err := dist(nodes.Representative(i), nodes.Representative(j))
			scanned++
			if err != nil {
				return nil, scanned, fmt.Errorf("pair (%d,%d): %w", i, j, err)
			}
			if !(d > cfg.low && d < cfg.high) {
				continue
			}
			if cfg.probability < 1 && pairUniform(key, i, j) >= cfg.probability {
				continue
			}
			w, err := weigh(mode, d, cfg.offset)
			if err != nil {
				return nil, scanned, fmt.Errorf("pair (%d,%d): %w", i, j, err)
			}
			edges = append(edges, Edge{Source: i, Target: j, Weight: w})
		}
	}

	return edges, scanned, nil
}

// merge concatenates partials in worker order, orders every pair as
// (min,max), drops exact duplicates and sorts by (Source, Target).
// It returns the number of dropped duplicates.
func merge(partials [][]Edge) ([]Edge, int, error) {
	seen := make(map[[2]int]float64)
	var (
		out     []Edge
		dropped int
	)
	for _, part := range partials {
		for _, e := range part {
			s, t := e.Source, e.Target
			if s > t {
				s, t = t, s
			}
			k := [2]int{s, t}
			if w, ok := seen[k]; ok {
				if w != e.Weight {
					return nil, dropped, &MergeError{Source: s, Target: t, First: w, Second: e.Weight}
				}
				dropped++
				continue
			}
			seen[k] = e.Weight
			out = append(out, Edge{Source: s, Target: t, Weight: e.Weight})
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Source != out[b].Source {
			return out[a].Source < out[b].Source
		}
		return out[a].Target < out[b].Target
	})

	return out, dropped, nil
}
