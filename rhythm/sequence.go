// SPDX-License-Identifier: MIT

package rhythm

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
)

// DefaultResolution is the grid used by FromFloats: 48 subdivisions of 1
// hold sixteenths, triplets and their dotted forms exactly.
const DefaultResolution = 48

// Sentinel errors for sequence construction.
var (
	// ErrEmptySequence indicates a sequence with no durations.
	ErrEmptySequence = errors.New("rhythm: empty sequence")

	// ErrNonPositiveDuration indicates a duration <= 0 (after snapping for floats).
	ErrNonPositiveDuration = errors.New("rhythm: duration must be > 0")

	// ErrBadToken indicates a token that does not parse as a rational.
	ErrBadToken = errors.New("rhythm: bad duration token")

	// ErrBadUnit indicates a nil or non-positive reference unit.
	ErrBadUnit = errors.New("rhythm: reference unit must be > 0")

	// ErrBadResolution indicates a non-positive float grid.
	ErrBadResolution = errors.New("rhythm: resolution must be > 0")

	// ErrDurationRange indicates a float duration whose grid step count
	// does not fit in an int64.
	ErrDurationRange = errors.New("rhythm: duration out of range")

	// ErrBadFactor indicates a nil or non-positive scaling factor.
	ErrBadFactor = errors.New("rhythm: factor must be > 0")
)

// Sequence is an ordered, immutable rhythm cell.
type Sequence struct {
	durations []*big.Rat
	unit      *big.Rat
}

type config struct {
	unit       *big.Rat
	resolution int64
}

// Option configures sequence construction.
type Option func(*config)

// WithUnit sets the reference unit. Validation happens in the constructors.
func WithUnit(u *big.Rat) Option {
	return func(c *config) { c.unit = u }
}

// WithResolution sets the FromFloats grid (values snap to k/resolution).
func WithResolution(r int64) Option {
	return func(c *config) { c.resolution = r }
}

func resolve(opts []Option) (config, error) {
	c := config{unit: big.NewRat(1, 1), resolution: DefaultResolution}
	for _, opt := range opts {
		opt(&c)
	}
	if c.unit == nil || c.unit.Sign() <= 0 {
		return c, ErrBadUnit
	}
	if c.resolution <= 0 {
		return c, fmt.Errorf("resolution=%d: %w", c.resolution, ErrBadResolution)
	}

	return c, nil
}

// New builds a Sequence from rational durations. Inputs are copied.
// Complexity: O(n).
func New(durs []*big.Rat, opts ...Option) (*Sequence, error) {
	c, err := resolve(opts)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if len(durs) == 0 {
		return nil, fmt.Errorf("New: %w", ErrEmptySequence)
	}
	out := make([]*big.Rat, len(durs))
	for i, d := range durs {
		if d == nil || d.Sign() <= 0 {
			return nil, fmt.Errorf("New: index %d: %w", i, ErrNonPositiveDuration)
		}
		out[i] = new(big.Rat).Set(d)
	}

	return &Sequence{durations: out, unit: new(big.Rat).Set(c.unit)}, nil
}

// FromFloats snaps every value to the nearest multiple of 1/resolution.
// A value that snaps to zero or below is rejected, as are NaN and ±Inf.
// Values whose step count exceeds int64 return ErrDurationRange.
// Complexity: O(n).
func FromFloats(vals []float64, opts ...Option) (*Sequence, error) {
	c, err := resolve(opts)
	if err != nil {
		return nil, fmt.Errorf("FromFloats: %w", err)
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("FromFloats: %w", ErrEmptySequence)
	}
	durs := make([]*big.Rat, len(vals))
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("FromFloats: index %d value %v: %w", i, v, ErrNonPositiveDuration)
		}
		scaled := math.Round(v * float64(c.resolution))
		if math.Abs(scaled) >= math.MaxInt64 {
			return nil, fmt.Errorf("FromFloats: index %d value %v: %w", i, v, ErrDurationRange)
		}
		steps := int64(scaled)
		if steps <= 0 {
			return nil, fmt.Errorf("FromFloats: index %d value %v: %w", i, v, ErrNonPositiveDuration)
		}
		durs[i] = big.NewRat(steps, c.resolution)
	}

	return &Sequence{durations: durs, unit: new(big.Rat).Set(c.unit)}, nil
}

// Parse reads whitespace-separated rational tokens ("3/8", "1", "0.25").
// Each token parses independently; the first bad one is reported by index.
// Complexity: O(len(s)).
func Parse(s string, opts ...Option) (*Sequence, error) {
	tokens := strings.Fields(s)
	durs := make([]*big.Rat, len(tokens))
	for i, tok := range tokens {
		r, ok := new(big.Rat).SetString(tok)
		if !ok {
			return nil, fmt.Errorf("Parse: token %d %q: %w", i, tok, ErrBadToken)
		}
		durs[i] = r
	}

	seq, err := New(durs, opts...)
	if err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}

	return seq, nil
}

// MustParse is Parse for literals; it panics on error.
func MustParse(s string, opts ...Option) *Sequence {
	seq, err := Parse(s, opts...)
	if err != nil {
		panic(err)
	}

	return seq
}

// Len returns the number of durations.
func (s *Sequence) Len() int { return len(s.durations) }

// Unit returns a copy of the reference unit.
func (s *Sequence) Unit() *big.Rat { return new(big.Rat).Set(s.unit) }

// At returns a copy of the i-th duration. It panics on an out-of-range
// index, like a slice access.
func (s *Sequence) At(i int) *big.Rat { return new(big.Rat).Set(s.durations[i]) }

// Durations returns copies of all durations in order.
func (s *Sequence) Durations() []*big.Rat {
	out := make([]*big.Rat, len(s.durations))
	for i, d := range s.durations {
		out[i] = new(big.Rat).Set(d)
	}

	return out
}

// Absolute returns duration × unit for every position.
func (s *Sequence) Absolute() []*big.Rat {
	out := make([]*big.Rat, len(s.durations))
	for i, d := range s.durations {
		out[i] = new(big.Rat).Mul(d, s.unit)
	}

	return out
}

// Floats returns Absolute() converted to float64.
func (s *Sequence) Floats() []float64 {
	abs := s.Absolute()
	out := make([]float64, len(abs))
	for i, r := range abs {
		out[i], _ = r.Float64()
	}

	return out
}

// Total returns the sum of the durations in the sequence's own unit.
func (s *Sequence) Total() *big.Rat {
	sum := new(big.Rat)
	for _, d := range s.durations {
		sum.Add(sum, d)
	}

	return sum
}

// String renders the durations as space-separated tokens, e.g. "1/4 1/8 1".
// Parse(s.String()) reproduces the durations.
func (s *Sequence) String() string {
	parts := make([]string, len(s.durations))
	for i, d := range s.durations {
		parts[i] = d.RatString()
	}

	return strings.Join(parts, " ")
}
