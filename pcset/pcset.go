// SPDX-License-Identifier: MIT

package pcset

import (
	"sort"
	"strconv"
	"strings"
)

// New builds a ResidueSet from any integer collection.
//
// Stage 1 (Validate): non-empty input, modulus > 0.
// Stage 2 (Prepare): reduce every element mod m, drop duplicates, sort.
// Stage 3 (Finalize): return the set; the input slice is not retained.
//
// Complexity: O(n log n).
func New(elems []int, opts ...Option) (*ResidueSet, error) {
	s := &ResidueSet{modulus: DefaultModulus}
	for _, opt := range opts {
		opt(s)
	}
	if s.modulus <= 0 {
		return nil, pcsErrorf("New", ErrBadModulus, "modulus=%d", s.modulus)
	}
	if len(elems) == 0 {
		return nil, pcsErrorf("New", ErrEmptySet, "size=0 modulus=%d", s.modulus)
	}
	s.elements = uniqueSorted(elems, s.modulus)

	return s, nil
}

// MustNew is New for literals in tests and examples; it panics on error.
func MustNew(elems []int, opts ...Option) *ResidueSet {
	s, err := New(elems, opts...)
	if err != nil {
		panic(err)
	}

	return s
}

// Modulus returns the modulus of the set.
func (s *ResidueSet) Modulus() int { return s.modulus }

// Transposition returns the on-demand transposition offset.
func (s *ResidueSet) Transposition() int { return s.transposition }

// Cardinality returns the number of distinct residues.
func (s *ResidueSet) Cardinality() int { return len(s.elements) }

// Elements returns the residues with the transposition offset applied,
// sorted ascending. The result is a fresh slice.
// Complexity: O(n log n).
func (s *ResidueSet) Elements() []int {
	if s.transposition == 0 {
		out := make([]int, len(s.elements))
		copy(out, s.elements)
		return out
	}
	shifted := make([]int, len(s.elements))
	for i, e := range s.elements {
		shifted[i] = e + s.transposition
	}

	return uniqueSorted(shifted, s.modulus)
}

// Transpose returns a new set holding every residue shifted by t.
// The offset is folded into the elements of the result.
func (s *ResidueSet) Transpose(t int) *ResidueSet {
	cur := s.Elements()
	for i := range cur {
		cur[i] += t
	}

	return &ResidueSet{elements: uniqueSorted(cur, s.modulus), modulus: s.modulus}
}

// Inverse returns a new set holding -x mod m for every residue x.
func (s *ResidueSet) Inverse() *ResidueSet {
	cur := s.Elements()
	for i := range cur {
		cur[i] = -cur[i]
	}

	return &ResidueSet{elements: uniqueSorted(cur, s.modulus), modulus: s.modulus}
}

// String renders the current residues as a label, e.g. "[0,4,7]".
func (s *ResidueSet) String() string { return Label(s.Elements()) }

// Label renders a residue sequence as a bracketed, comma-separated string.
// Node tables use it as the deduplication key.
func Label(forms []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range forms {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')

	return b.String()
}

// Canonicalize computes every derived invariant of s in one call.
// A Forte miss leaves HasForte false; the diagnostic is dropped here, use
// ForteClass directly to inspect it.
func Canonicalize(s *ResidueSet) Canonical {
	c := Canonical{
		NormalOrder:    s.NormalOrder(),
		PrimeForm:      s.PrimeForm(),
		IntervalVector: s.IntervalVector(),
	}
	if label, err := s.ForteClass(); err == nil {
		c.Forte, c.HasForte = label, true
	}

	return c
}

// mod returns the non-negative residue of x modulo m.
func mod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}

	return r
}

// uniqueSorted reduces xs mod m into a fresh sorted slice without duplicates.
func uniqueSorted(xs []int, m int) []int {
	seen := make(map[int]struct{}, len(xs))
	out := make([]int, 0, len(xs))
	for _, x := range xs {
		r := mod(x, m)
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	sort.Ints(out)

	return out
}
