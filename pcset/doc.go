// SPDX-License-Identifier: MIT

// Package pcset classifies finite sets of residues modulo a fixed modulus
// (pitch-class sets in 12-TET, or any other equal division of the octave).
//
// 🚀 What is in here?
//
//	ResidueSet        a deduplicated set of integers mod m with an on-demand
//	                  transposition offset.
//	NormalOrder       the most compact rotation of the sorted residues.
//	PrimeForm         the normal order of {set, inversion} with the smaller
//	                  residue sum, transposed to start at 0.
//	IntervalVector    histogram of unordered interval classes, floor(m/2) bins.
//	ForteClass        published Forte label for 12-TET prime forms.
//
// ✨ Guarantees:
//   - Canonicalization never mutates the receiver; every operator returns
//     fresh slices or a fresh *ResidueSet.
//   - PrimeForm is invariant under rotation of the input and idempotent.
//   - Forte lookups that miss return a diagnostic error, never a panic.
//
// ⚙️ Usage:
//
//	s, err := pcset.New([]int{0, 4, 7})
//	if err != nil { ... }
//	s.NormalOrder()    // [0 4 7]
//	s.PrimeForm()      // [0 3 7]
//	s.IntervalVector() // [0 0 1 1 1 0]
//	s.ForteClass()     // "[3-11]", nil
//
// Complexity: NormalOrder is O(n²) in the set cardinality, IntervalVector is
// O(n²), ForteClass is O(n) plus one map lookup.
package pcset
