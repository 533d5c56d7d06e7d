// SPDX-License-Identifier: MIT

package leading_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ntwrk/leading"
	"github.com/katalvlaran/ntwrk/rhythm"
)

const eps = 1e-12

func TestParseMetric(t *testing.T) {
	for _, m := range []leading.Metric{leading.Euclidean, leading.SquaredEuclidean, leading.Cityblock, leading.Chebyshev, leading.DTW} {
		got, err := leading.ParseMetric(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := leading.ParseMetric("  Cityblock ")
	require.NoError(t, err)
	assert.Equal(t, leading.Cityblock, got)

	got, err = leading.ParseMetric("")
	require.NoError(t, err)
	assert.Equal(t, leading.Euclidean, got)

	_, err = leading.ParseMetric("cosine")
	assert.ErrorIs(t, err, leading.ErrUnknownMetric)
	assert.Equal(t, "Metric(42)", leading.Metric(42).String())
}

func TestPointDistance(t *testing.T) {
	a := []float64{0, 4, 7}
	b := []float64{1, 2, 7}

	cases := []struct {
		m    leading.Metric
		want float64
	}{
		{leading.Euclidean, math.Sqrt(5)},
		{leading.SquaredEuclidean, 5},
		{leading.Cityblock, 3},
		{leading.Chebyshev, 2},
		{leading.DTW, 3},
	}
	for _, tc := range cases {
		t.Run(tc.m.String(), func(t *testing.T) {
			got, err := leading.PointDistance(a, b, tc.m)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, eps)

			back, err := leading.PointDistance(b, a, tc.m)
			require.NoError(t, err)
			assert.InDelta(t, got, back, eps, "symmetric")

			self, err := leading.PointDistance(a, a, tc.m)
			require.NoError(t, err)
			assert.Zero(t, self)
		})
	}

	_, err := leading.PointDistance(a, []float64{1}, leading.Euclidean)
	assert.ErrorIs(t, err, leading.ErrCardinalityMismatch)
	_, err = leading.PointDistance(nil, a, leading.DTW)
	assert.ErrorIs(t, err, leading.ErrEmptySequence)
	_, err = leading.PointDistance(a, b, leading.Metric(9))
	assert.ErrorIs(t, err, leading.ErrUnknownMetric)
}

// TestPointDistance_DTWWarps checks that a stretched copy costs nothing.
func TestPointDistance_DTWWarps(t *testing.T) {
	got, err := leading.PointDistance([]float64{1, 2, 3}, []float64{1, 1, 2, 2, 3}, leading.DTW)
	require.NoError(t, err)
	assert.Zero(t, got)

	got, err = leading.PointDistance([]float64{0}, []float64{1, 2}, leading.DTW)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, got, eps)
}

// TestMinimalDistance_MajorToMinor scores [0,4,7] against [0,3,8]; the
// unshifted candidate wins with cost √2.
func TestMinimalDistance_MajorToMinor(t *testing.T) {
	res, err := leading.MinimalDistance([]int{0, 4, 7}, []int{0, 3, 8})
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, res.Cost, eps)
	assert.Equal(t, []int{0, 3, 8}, res.Leading)

	// every one of the 2n+1 candidates is at least as expensive
	for _, cand := range [][]float64{
		{-12, 3, 8}, {-9, 0, 8}, {-4, 0, 3},
		{3, 8, 12}, {0, 8, 15}, {0, 3, 20},
	} {
		c, err := leading.PointDistance([]float64{0, 4, 7}, cand, leading.Euclidean)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, c, res.Cost)
	}
}

// TestMinimalDistance_ShiftWins moves one element across the octave.
func TestMinimalDistance_ShiftWins(t *testing.T) {
	res, err := leading.MinimalDistance([]int{7, 0, 4}, []int{11, 2, 5})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, res.Cost, eps)
	assert.Equal(t, []int{-1, 2, 5}, res.Leading)

	res, err = leading.MinimalDistance([]int{7, 0, 4}, []int{11, 2, 5}, leading.WithMetric(leading.Cityblock))
	require.NoError(t, err)
	assert.InDelta(t, 5.0, res.Cost, eps)
	assert.Equal(t, []int{-1, 2, 5}, res.Leading)
}

// TestMinimalDistance_Properties checks d(a,a) = 0 and d(a,b) = d(b,a)
// under every positional metric.
func TestMinimalDistance_Properties(t *testing.T) {
	sets := [][]int{{0, 4, 7}, {0, 3, 8}, {2, 5, 9}, {1, 6, 11}, {0, 1, 2}}
	metrics := []leading.Metric{leading.Euclidean, leading.SquaredEuclidean, leading.Cityblock, leading.Chebyshev}
	for _, m := range metrics {
		for _, a := range sets {
			self, err := leading.MinimalDistance(a, a, leading.WithMetric(m))
			require.NoError(t, err)
			assert.Zero(t, self.Cost, "%s %v", m, a)
			assert.Equal(t, a, self.Leading)

			for _, b := range sets {
				ab, err := leading.MinimalDistance(a, b, leading.WithMetric(m))
				require.NoError(t, err)
				assert.True(t, isSorted(ab.Leading))
				assert.Len(t, ab.Leading, len(b))

				ba, err := leading.MinimalDistance(b, a, leading.WithMetric(m))
				require.NoError(t, err)
				assert.InDelta(t, ab.Cost, ba.Cost, eps, "%s %v %v", m, a, b)
			}
		}
	}
}

func TestMinimalDistance_Modulus(t *testing.T) {
	res, err := leading.MinimalDistance([]int{0}, []int{6}, leading.WithModulus(7))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.Cost, eps)
	assert.Equal(t, []int{-1}, res.Leading)

	assert.Panics(t, func() { leading.WithModulus(0) })
}

func TestMinimalDistance_Errors(t *testing.T) {
	_, err := leading.MinimalDistance(nil, []int{1})
	assert.ErrorIs(t, err, leading.ErrEmptySequence)

	_, err = leading.MinimalDistance([]int{0, 4, 7}, []int{0, 4})
	assert.ErrorIs(t, err, leading.ErrCardinalityMismatch)
	assert.Contains(t, err.Error(), "len(a)=3 len(b)=2")

	_, err = leading.MinimalDistance([]int{0}, []int{1}, leading.WithMetric(leading.DTW))
	assert.ErrorIs(t, err, leading.ErrUnsupportedMetric)
}

func TestMinimalDistance_DoesNotMutate(t *testing.T) {
	a, b := []int{7, 0, 4}, []int{11, 2, 5}
	_, err := leading.MinimalDistance(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 0, 4}, a)
	assert.Equal(t, []int{11, 2, 5}, b)
}

func TestRhythmDistance(t *testing.T) {
	a := rhythm.MustParse("1/4 1/8 1/8")
	b := rhythm.MustParse("1/8 1/8 1/4")

	d, err := leading.RhythmDistance(a, b, leading.Cityblock)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, d, eps)

	d, err = leading.RhythmDistance(a, b, leading.Chebyshev)
	require.NoError(t, err)
	assert.InDelta(t, 0.125, d, eps)

	d, err = leading.RhythmDistance(a, a, leading.Euclidean)
	require.NoError(t, err)
	assert.Zero(t, d)

	_, err = leading.RhythmDistance(a, rhythm.MustParse("1/4"), leading.Euclidean)
	assert.ErrorIs(t, err, leading.ErrCardinalityMismatch)

	_, err = leading.RhythmDistance(nil, a, leading.Euclidean)
	assert.ErrorIs(t, err, leading.ErrEmptySequence)
}

func TestRhythmDistance_Symmetric(t *testing.T) {
	cells := []*rhythm.Sequence{
		rhythm.MustParse("1/4 1/8 1/8"),
		rhythm.MustParse("1/8 1/8 1/4"),
		rhythm.MustParse("1/2 1/4 1/4"),
		rhythm.MustParse("1/16 3/16 1/4"),
	}
	metrics := []leading.Metric{leading.Euclidean, leading.SquaredEuclidean, leading.Cityblock, leading.Chebyshev, leading.DTW}
	for _, m := range metrics {
		for _, a := range cells {
			self, err := leading.RhythmDistance(a, a, m)
			require.NoError(t, err)
			assert.Zero(t, self, "%s %s", m, a)

			for _, b := range cells {
				ab, err := leading.RhythmDistance(a, b, m)
				require.NoError(t, err)
				ba, err := leading.RhythmDistance(b, a, m)
				require.NoError(t, err)
				assert.InDelta(t, ab, ba, eps, "%s %s %s", m, a, b)
			}
		}
	}

	short := rhythm.MustParse("1/4 1/4")
	ab, err := leading.RhythmDistance(cells[2], short, leading.DTW)
	require.NoError(t, err)
	ba, err := leading.RhythmDistance(short, cells[2], leading.DTW)
	require.NoError(t, err)
	assert.InDelta(t, ab, ba, eps)
}

// TestRhythmDistance_Units compares cells written against different units.
func TestRhythmDistance_Units(t *testing.T) {
	quarters := rhythm.MustParse("1 1/2", rhythm.WithUnit(big.NewRat(1, 4)))
	wholes := rhythm.MustParse("1/4 1/8")

	d, err := leading.RhythmDistance(quarters, wholes, leading.Cityblock)
	require.NoError(t, err)
	assert.Zero(t, d)

	d, err = leading.RhythmDistance(rhythm.MustParse("1/4 1/4"), rhythm.MustParse("1/4"), leading.DTW)
	require.NoError(t, err)
	assert.Zero(t, d)
}

func isSorted(xs []int) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] < xs[i-1] {
			return false
		}
	}
	return true
}
