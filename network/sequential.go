// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// BuildSequential links every instance to the next one, in input order.
// Edges are unconditional: thresholds and retention do not apply. The
// weight defaults to d + offset (WithOffset, default 0.1), so a repeated
// label still produces a non-zero self-loop.
//
// Complexity: O(n) distance calls.
func BuildSequential(labels []string, dist PairFunc, opts ...Option) (*Table, error) {
	return runSequential(labels, dist, newConfig(opts))
}

func runSequential(labels []string, dist PairFunc, cfg *config) (*Table, error) {
	start := time.Now()
	t, err := buildSequential(labels, dist, cfg)
	buildDuration.WithLabelValues(modeSequential).Observe(time.Since(start).Seconds())
	observeResult(modeSequential, err)
	if err == nil {
		edgesKept.WithLabelValues(modeSequential).Add(float64(len(t.Edges)))
	}

	return t, err
}

func buildSequential(labels []string, dist PairFunc, cfg *config) (*Table, error) {
	if dist == nil {
		return nil, fmt.Errorf("BuildSequential: %w", ErrNilDistance)
	}
	mode := cfg.weight
	if mode == WeightDefault {
		mode = WeightOffset
	}

	nodes, ids := Dedup(labels)
	edges := make([]Edge, 0, max(len(labels)-1, 0))
	for i := 0; i+1 < len(labels); i++ {
		d, err := dist(i, i+1)
		if err != nil {
			return nil, fmt.Errorf("BuildSequential: step %d: %w", i, err)
		}
		w, err := weigh(mode, d, cfg.offset)
		if err != nil {
			return nil, fmt.Errorf("BuildSequential: step %d: %w", i, err)
		}
		edges = append(edges, Edge{Source: ids[i], Target: ids[i+1], Weight: w})
	}
	cfg.logger.Debug("sequential build",
		zap.Int("nodes", nodes.Len()),
		zap.Int("edges", len(edges)))

	return &Table{Nodes: nodes.Labels(), Edges: edges}, nil
}
