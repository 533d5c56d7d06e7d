// SPDX-License-Identifier: MIT

package leading

import "math"

// PointDistance returns metric m between a and b.
//
// Every metric except DTW requires len(a) == len(b).
// Complexity: O(n) for positional metrics, O(n·m) for DTW.
func PointDistance(a, b []float64, m Metric) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, leadErrorf("PointDistance", ErrEmptySequence, "len(a)=%d len(b)=%d", len(a), len(b))
	}
	if m == DTW {
		return dtw(a, b), nil
	}
	if len(a) != len(b) {
		return 0, leadErrorf("PointDistance", ErrCardinalityMismatch, "len(a)=%d len(b)=%d", len(a), len(b))
	}

	var acc float64
	switch m {
	case Euclidean, SquaredEuclidean:
		for i := range a {
			d := a[i] - b[i]
			acc += d * d
		}
		if m == Euclidean {
			acc = math.Sqrt(acc)
		}
	case Cityblock:
		for i := range a {
			acc += math.Abs(a[i] - b[i])
		}
	case Chebyshev:
		for i := range a {
			if d := math.Abs(a[i] - b[i]); d > acc {
				acc = d
			}
		}
	default:
		return 0, leadErrorf("PointDistance", ErrUnknownMetric, "metric=%d", int(m))
	}

	return acc, nil
}

// dtw is the rolling-array dynamic time warping distance with local cost
// |a[i]-b[j]| and no window or slope penalty. Both inputs are non-empty.
//
//	D[0][0] = 0, D[i][0] = D[0][j] = +∞
//	D[i][j] = |a[i-1]-b[j-1]| + min(D[i-1][j], D[i][j-1], D[i-1][j-1])
//
// Complexity: O(n·m) time, O(m) memory.
func dtw(a, b []float64) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			curr[j] = math.Abs(a[i-1]-b[j-1]) + min(prev[j], curr[j-1], prev[j-1])
		}
		prev, curr = curr, prev
	}

	return prev[m]
}
