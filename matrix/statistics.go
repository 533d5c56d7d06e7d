// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column transforms applied to feature matrices before pairwise distances,
//     so that no single feature dominates a Euclidean metric by scale alone.
//
// Exposed API:
//   - Standardize(X) -> (Z, means, stds)  // z-score per column, sample std
//   - MinMax(X)      -> (Y, mins, ranges) // per-column rescale into [0,1]
//
// Determinism:
//   - Fixed i→j traversal; results do not depend on anything but X.

package matrix

import "math"

const (
	opStandardize = "Standardize"
	opMinMax      = "MinMax"
)

// Standardize returns a z-scored copy of X together with the column means
// and sample standard deviations.
//
// Stage 1 (Validate): X non-nil with at least two rows.
// Stage 2 (Center): column means over the flat buffer.
// Stage 3 (Scale): std[j] = sqrt(Σ_i (X[i,j]-mean[j])² / (r-1)); a degenerate
// column (std == 0) becomes all zeros instead of NaN.
//
// Complexity: O(r*c) time, O(r*c) space for the copy.
func Standardize(X *Dense) (*Dense, []float64, []float64, error) {
	if X == nil {
		return nil, nil, nil, matrixErrorf(opStandardize, ErrNilMatrix)
	}
	r, c := X.r, X.c
	if r < 2 {
		return nil, nil, nil, matrixErrorf(opStandardize, ErrTooFewRows)
	}

	means := make([]float64, c)
	var i, j int
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			means[j] += X.data[base+j]
		}
	}
	for j = 0; j < c; j++ {
		means[j] /= float64(r)
	}

	Z := X.Clone()
	sumsq := make([]float64, c)
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			v := Z.data[base+j] - means[j]
			Z.data[base+j] = v
			sumsq[j] += v * v
		}
	}

	stds := make([]float64, c)
	invStd := make([]float64, c)
	for j = 0; j < c; j++ {
		stds[j] = math.Sqrt(sumsq[j] / float64(r-1))
		if stds[j] > 0 {
			invStd[j] = 1.0 / stds[j]
		}
	}
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			Z.data[base+j] *= invStd[j]
		}
	}

	return Z, means, stds, nil
}

// MinMax rescales every column of X into [0,1] and returns the column
// minima and ranges. Constant columns (range 0) become zeros.
// Complexity: O(r*c).
func MinMax(X *Dense) (*Dense, []float64, []float64, error) {
	if X == nil {
		return nil, nil, nil, matrixErrorf(opMinMax, ErrNilMatrix)
	}
	r, c := X.r, X.c
	mins := make([]float64, c)
	maxs := make([]float64, c)
	copy(mins, X.data[:c])
	copy(maxs, X.data[:c])

	var i, j int
	for i = 1; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			v := X.data[base+j]
			if v < mins[j] {
				mins[j] = v
			}
			if v > maxs[j] {
				maxs[j] = v
			}
		}
	}

	ranges := make([]float64, c)
	for j = 0; j < c; j++ {
		ranges[j] = maxs[j] - mins[j]
	}

	Y := X.Clone()
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			if ranges[j] == 0 {
				Y.data[base+j] = 0
				continue
			}
			Y.data[base+j] = (Y.data[base+j] - mins[j]) / ranges[j]
		}
	}

	return Y, mins, ranges, nil
}
