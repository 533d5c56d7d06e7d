// SPDX-License-Identifier: MIT

package pcset

import (
	"errors"
	"fmt"
)

// DefaultModulus is the number of pitch classes in twelve-tone equal temperament.
const DefaultModulus = 12

// Sentinel errors for residue-set construction and lookups.
var (
	// ErrEmptySet indicates a ResidueSet was requested from an empty collection.
	ErrEmptySet = errors.New("pcset: empty residue set")

	// ErrBadModulus indicates a non-positive modulus.
	ErrBadModulus = errors.New("pcset: modulus must be > 0")

	// ErrForteModulus is the diagnostic returned by ForteClass for m != 12.
	// It is not fatal: the label is simply absent.
	ErrForteModulus = errors.New("pcset: forte class defined only for 12-TET")

	// ErrForteNotFound is the diagnostic returned by ForteClass when the prime
	// form has no entry in the catalog. It is not fatal.
	ErrForteNotFound = errors.New("pcset: forte class not found")
)

// pcsErrorf prefixes err with the method name and formatted context,
// keeping err reachable through errors.Is.
func pcsErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}

// ResidueSet is a set of integers taken modulo a fixed modulus.
//
// elements holds the distinct residues in ascending order (already reduced).
// transposition is added to every element when the set is read, so a
// transposed view shares no state with its source.
type ResidueSet struct {
	elements      []int
	modulus       int
	transposition int
}

// Option configures a ResidueSet at construction time.
type Option func(*ResidueSet)

// WithModulus sets the modulus. Validation happens in New, so a bad value
// surfaces as ErrBadModulus instead of a panic.
func WithModulus(m int) Option {
	return func(s *ResidueSet) { s.modulus = m }
}

// WithTransposition sets the on-demand transposition offset.
func WithTransposition(t int) Option {
	return func(s *ResidueSet) { s.transposition = t }
}

// Canonical bundles the derived invariants of a ResidueSet.
type Canonical struct {
	// NormalOrder is the most compact rotation of the residues.
	NormalOrder []int

	// PrimeForm is the transposition-normalized normal order of the more
	// compact of {set, inversion}.
	PrimeForm []int

	// IntervalVector counts interval classes 1..floor(m/2).
	IntervalVector []int

	// Forte is the catalog label, empty when HasForte is false.
	Forte string

	// HasForte reports whether the lookup succeeded.
	HasForte bool
}
