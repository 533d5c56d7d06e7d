// SPDX-License-Identifier: MIT

package pcset

// PrimeForm returns the canonical transposition-normalized representative of
// the set-class of s.
//
// Stage 1: compact rotation of s and of its inversion (-x mod m), each
// computed independently. Unlike NormalOrder, dyads are not left in sorted
// order here, so {2,11} and {0,3} share the prime form [0,3].
// Stage 2: transpose both candidates so they start at 0.
// Stage 3: the candidate with the smaller sum of residues wins. On equal
// sums the lexicographically smaller form wins, so a set and its inversion
// always share one prime form; identical forms keep the non-inverted one.
//
// Complexity: O(n²).
func (s *ResidueSet) PrimeForm() []int {
	orig := zeroBased(compactRotation(s.Elements(), s.modulus), s.modulus)
	inv := zeroBased(compactRotation(s.Inverse().Elements(), s.modulus), s.modulus)

	so, si := spanSum(orig, s.modulus), spanSum(inv, s.modulus)
	if si < so || (si == so && lexLess(inv, orig)) {
		return inv
	}

	return orig
}

// lexLess reports whether a sorts before b; both have the same length.
func lexLess(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}

// spanSum sums the residues of xs relative to xs[0].
func spanSum(xs []int, m int) int {
	total := 0
	for _, x := range xs {
		total += mod(x-xs[0], m)
	}

	return total
}

// zeroBased transposes xs so its first element is 0.
func zeroBased(xs []int, m int) []int {
	out := make([]int, len(xs))
	for i, x := range xs {
		out[i] = mod(x-xs[0], m)
	}

	return out
}
