// SPDX-License-Identifier: MIT

package rhythm

import (
	"fmt"
	"math/big"
)

// Retrograde returns the cell read backwards.
func (s *Sequence) Retrograde() *Sequence {
	n := len(s.durations)
	out := make([]*big.Rat, n)
	for i, d := range s.durations {
		out[n-1-i] = new(big.Rat).Set(d)
	}

	return &Sequence{durations: out, unit: s.Unit()}
}

// Rotate returns the cell rotated left by k positions; negative k rotates right.
func (s *Sequence) Rotate(k int) *Sequence {
	n := len(s.durations)
	k = ((k % n) + n) % n
	out := make([]*big.Rat, n)
	for i := range out {
		out[i] = new(big.Rat).Set(s.durations[(i+k)%n])
	}

	return &Sequence{durations: out, unit: s.Unit()}
}

// Augment multiplies every duration by k (k > 0).
func (s *Sequence) Augment(k *big.Rat) (*Sequence, error) {
	if k == nil || k.Sign() <= 0 {
		return nil, fmt.Errorf("Augment: %w", ErrBadFactor)
	}
	out := make([]*big.Rat, len(s.durations))
	for i, d := range s.durations {
		out[i] = new(big.Rat).Mul(d, k)
	}

	return &Sequence{durations: out, unit: s.Unit()}, nil
}

// Diminish divides every duration by k (k > 0).
func (s *Sequence) Diminish(k *big.Rat) (*Sequence, error) {
	if k == nil || k.Sign() <= 0 {
		return nil, fmt.Errorf("Diminish: %w", ErrBadFactor)
	}

	return s.Augment(new(big.Rat).Inv(k))
}

// IsRetrograde reports whether the cell reads the same backwards.
func (s *Sequence) IsRetrograde() bool {
	n := len(s.durations)
	for i := 0; i < n/2; i++ {
		if s.durations[i].Cmp(s.durations[n-1-i]) != 0 {
			return false
		}
	}

	return true
}
