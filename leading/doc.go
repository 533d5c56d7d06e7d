// SPDX-License-Identifier: MIT

// Package leading measures how far apart two pitch collections or two
// rhythm cells are.
//
// 🚀 What is in here?
//
//	Metric            Euclidean (default), SquaredEuclidean, Cityblock,
//	                  Chebyshev and DTW.
//	PointDistance     one metric between two float vectors.
//	MinimalDistance   bounded voice-leading search between two pitch vectors
//	                  of equal cardinality.
//	RhythmDistance    distance between two rhythm cells over their absolute
//	                  durations.
//
// 🔍 MinimalDistance is a heuristic, not an exhaustive search. For b of size
// n it scores 2n+1 candidates: each single element of b moved down one
// modulus, then each moved up one modulus, then b itself. Every candidate is
// sorted before it is compared with sort(a). The first candidate with the
// lowest cost wins, so ties resolve in enumeration order.
//
// ⚙️ Usage:
//
//	res, err := leading.MinimalDistance([]int{0, 4, 7}, []int{0, 3, 8})
//	// res.Cost == √2, res.Leading == [0 3 8]
//
// DTW is the only metric that accepts sequences of different lengths. It
// is a rolling-array dynamic time warping over absolute values.
//
// Complexity: MinimalDistance is O(n² log n); DTW is O(n·m) time and
// O(m) memory.
package leading
