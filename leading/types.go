// SPDX-License-Identifier: MIT

package leading

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/ntwrk/pcset"
)

var (
	// ErrEmptySequence indicates one or both inputs are empty.
	ErrEmptySequence = errors.New("leading: input sequences must be non-empty")

	// ErrCardinalityMismatch indicates inputs of different sizes for a metric
	// that pairs elements positionally.
	ErrCardinalityMismatch = errors.New("leading: cardinality mismatch")

	// ErrNoCandidate indicates every candidate produced a non-finite cost.
	ErrNoCandidate = errors.New("leading: no finite candidate")

	// ErrUnknownMetric indicates a metric name or value that is not supported.
	ErrUnknownMetric = errors.New("leading: unknown metric")

	// ErrUnsupportedMetric indicates a known metric used where it has no meaning.
	ErrUnsupportedMetric = errors.New("leading: metric not supported here")
)

// leadErrorf wraps err with the calling function's name and context.
func leadErrorf(fn string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", fn, fmt.Sprintf(format, args...), err)
}

// Metric selects a point-to-point distance.
type Metric int

const (
	// Euclidean is sqrt(Σ (a_i-b_i)²).
	Euclidean Metric = iota
	// SquaredEuclidean is Σ (a_i-b_i)².
	SquaredEuclidean
	// Cityblock is Σ |a_i-b_i|.
	Cityblock
	// Chebyshev is max |a_i-b_i|.
	Chebyshev
	// DTW is dynamic time warping with |a_i-b_j| local cost.
	DTW
)

var metricNames = [...]string{
	Euclidean:        "euclidean",
	SquaredEuclidean: "sqeuclidean",
	Cityblock:        "cityblock",
	Chebyshev:        "chebyshev",
	DTW:              "dtw",
}

// String returns the lowercase name accepted by ParseMetric.
func (m Metric) String() string {
	if m < 0 || int(m) >= len(metricNames) {
		return fmt.Sprintf("Metric(%d)", int(m))
	}

	return metricNames[m]
}

// ParseMetric maps a configuration name to a Metric. Matching ignores case
// and surrounding space; "" selects Euclidean.
func ParseMetric(name string) (Metric, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Euclidean, nil
	}
	for i, n := range metricNames {
		if n == key {
			return Metric(i), nil
		}
	}

	return 0, leadErrorf("ParseMetric", ErrUnknownMetric, "name=%q", name)
}

// Result is the outcome of MinimalDistance.
type Result struct {
	// Cost is the metric value of the winning candidate.
	Cost float64

	// Leading is the winning candidate, sorted ascending. Its values may lie
	// one modulus outside [0, m).
	Leading []int
}

// Option configures MinimalDistance.
type Option func(*options)

type options struct {
	modulus int
	metric  Metric
}

func defaultOptions() options {
	return options{modulus: pcset.DefaultModulus, metric: Euclidean}
}

// WithModulus sets the shift applied to candidate elements.
// Panics if m <= 0.
func WithModulus(m int) Option {
	if m <= 0 {
		panic(fmt.Sprintf("leading: WithModulus(%d): modulus must be > 0", m))
	}

	return func(o *options) { o.modulus = m }
}

// WithMetric selects the candidate cost. DTW is rejected by MinimalDistance.
func WithMetric(m Metric) Option {
	return func(o *options) { o.metric = m }
}
