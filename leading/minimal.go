// SPDX-License-Identifier: MIT

package leading

import (
	"math"
	"sort"
)

// MinimalDistance searches for the cheapest voice leading from a to b.
//
// Stage 1 (Validate): both non-empty, equal cardinality, positional metric.
// Stage 2 (Enumerate): for k = 0..n-1 the candidate with b[k]-m, then for
// k = 0..n-1 the candidate with b[k]+m, then b unchanged. Each is sorted.
// Stage 3 (Select): the first candidate with the smallest finite cost.
//
// Inputs are not modified. Result.Leading is a fresh slice.
// Complexity: O(n² log n).
func MinimalDistance(a, b []int, opts ...Option) (Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(a) == 0 || len(b) == 0 {
		return Result{}, leadErrorf("MinimalDistance", ErrEmptySequence, "len(a)=%d len(b)=%d", len(a), len(b))
	}
	if len(a) != len(b) {
		return Result{}, leadErrorf("MinimalDistance", ErrCardinalityMismatch, "len(a)=%d len(b)=%d", len(a), len(b))
	}
	if o.metric == DTW {
		return Result{}, leadErrorf("MinimalDistance", ErrUnsupportedMetric, "metric=%s", o.metric)
	}

	n := len(b)
	src := make([]float64, n)
	for i, v := range sortedCopy(a) {
		src[i] = float64(v)
	}

	var (
		best     []int
		bestCost = math.Inf(1)
		cand     = make([]int, n)
		fcand    = make([]float64, n)
	)
	try := func(k, shift int) error {
		copy(cand, b)
		if k >= 0 {
			cand[k] += shift
		}
		sort.Ints(cand)
		for i, v := range cand {
			fcand[i] = float64(v)
		}
		cost, err := PointDistance(src, fcand, o.metric)
		if err != nil {
			return err
		}
		if cost < bestCost {
			bestCost = cost
			best = append(best[:0], cand...)
		}
		return nil
	}

	for _, shift := range [2]int{-o.modulus, o.modulus} {
		for k := 0; k < n; k++ {
			if err := try(k, shift); err != nil {
				return Result{}, err
			}
		}
	}
	if err := try(-1, 0); err != nil {
		return Result{}, err
	}

	if best == nil {
		return Result{}, leadErrorf("MinimalDistance", ErrNoCandidate, "candidates=%d", 2*n+1)
	}

	return Result{Cost: bestCost, Leading: best}, nil
}

func sortedCopy(xs []int) []int {
	out := make([]int, len(xs))
	copy(out, xs)
	sort.Ints(out)

	return out
}
