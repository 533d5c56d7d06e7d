// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/ntwrk/leading"
	"github.com/katalvlaran/ntwrk/pcset"
)

// Defaults shared by every builder.
const (
	DefaultLow    = 0.1
	DefaultHigh   = 10.0
	DefaultOffset = 0.1
)

// Option customizes a build. Constructors panic on values that can never
// be valid (nil logger, zero workers); thresholds and probability are
// checked by the builders and surface as errors.
type Option func(*config)

type config struct {
	low, high   float64
	probability float64
	rng         *rand.Rand
	workers     int
	weight      WeightMode
	offset      float64
	fullScan    bool
	logger      *zap.Logger
	modulus     int
	metric      leading.Metric
}

func newConfig(opts []Option) *config {
	c := &config{
		low:         DefaultLow,
		high:        DefaultHigh,
		probability: 1,
		workers:     1,
		offset:      DefaultOffset,
		logger:      zap.NewNop(),
		modulus:     pcset.DefaultModulus,
		metric:      leading.Euclidean,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rngFromSeed(0)
	}

	return c
}

// validate checks the run-time parameters.
func (c *config) validate(method string) error {
	if math.IsNaN(c.low) || math.IsNaN(c.high) || c.low >= c.high {
		return fmt.Errorf("%s: low=%g high=%g: %w", method, c.low, c.high, ErrBadThreshold)
	}
	if !(c.probability > 0 && c.probability <= 1) {
		return fmt.Errorf("%s: p=%g: %w", method, c.probability, ErrBadProbability)
	}

	return nil
}

// WithThresholds keeps pairs with low < d < high.
func WithThresholds(low, high float64) Option {
	return func(c *config) { c.low, c.high = low, high }
}

// WithProbability keeps each in-range pair with probability p.
func WithProbability(p float64) Option {
	return func(c *config) { c.probability = p }
}

// WithSeed seeds the retention generator; 0 selects the fixed default.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rngFromSeed(seed) }
}

// WithRand supplies the retention generator. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("network: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithTimeSeed seeds the retention generator from the wall clock.
// Results are not reproducible.
func WithTimeSeed() Option {
	return func(c *config) { c.rng = rngFromSeed(time.Now().UnixNano()) }
}

// WithWorkers sets the number of row-range workers. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("network: WithWorkers(%d)", n))
	}

	return func(c *config) { c.workers = n }
}

// WithWeight selects the distance-to-weight transform.
func WithWeight(m WeightMode) Option {
	return func(c *config) { c.weight = m }
}

// WithOffset sets the epsilon added under WeightOffset.
func WithOffset(eps float64) Option {
	return func(c *config) { c.offset = eps }
}

// WithFullScan makes workers scan every ordered pair instead of i < j.
// Each pair is then seen twice and collapsed by the merge; use it only
// with symmetric distances.
func WithFullScan() Option {
	return func(c *config) { c.fullScan = true }
}

// WithLogger routes debug output to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("network: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}

// WithModulus sets the modulus used by the pitch front-ends. Panics if m <= 0.
func WithModulus(m int) Option {
	if m <= 0 {
		panic(fmt.Sprintf("network: WithModulus(%d)", m))
	}

	return func(c *config) { c.modulus = m }
}

// WithMetric sets the distance metric used by the pitch and timbral front-ends.
func WithMetric(m leading.Metric) Option {
	return func(c *config) { c.metric = m }
}
