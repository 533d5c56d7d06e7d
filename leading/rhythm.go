// SPDX-License-Identifier: MIT

package leading

import (
	"math/big"

	"github.com/katalvlaran/ntwrk/rhythm"
)

// RhythmDistance compares two rhythm cells over their absolute durations
// (duration × unit), pairing them by position.
//
// Cityblock is summed exactly in rationals and converted once at the end.
// DTW accepts cells of different lengths; every other metric returns
// ErrCardinalityMismatch for them.
// Complexity: O(n), or O(n·m) for DTW.
func RhythmDistance(a, b *rhythm.Sequence, m Metric) (float64, error) {
	if a == nil || b == nil {
		return 0, leadErrorf("RhythmDistance", ErrEmptySequence, "nil sequence")
	}
	if m != DTW && a.Len() != b.Len() {
		return 0, leadErrorf("RhythmDistance", ErrCardinalityMismatch, "len(a)=%d len(b)=%d", a.Len(), b.Len())
	}

	if m == Cityblock {
		ra, rb := a.Absolute(), b.Absolute()
		sum := new(big.Rat)
		diff := new(big.Rat)
		for i := range ra {
			diff.Sub(ra[i], rb[i])
			sum.Add(sum, diff.Abs(diff))
		}
		f, _ := sum.Float64()

		return f, nil
	}

	return PointDistance(a.Floats(), b.Floats(), m)
}
