// SPDX-License-Identifier: MIT

// Package matrix holds feature matrices: one row per instance (a sound, a
// chord, a cell), one column per feature (an MFCC coefficient, a spectral
// statistic, ...).
//
// Dense is row-major over a flat []float64. Rows are the unit the network
// builder works on, so Row hands out a copy of one feature vector.
//
// Column transforms:
//
//	Standardize   z-score per column (sample std); constant columns become 0.
//	MinMax        rescale each column into [0,1]; constant columns become 0.
//
// All indexers bounds-check and return ErrOutOfRange instead of panicking.
package matrix
