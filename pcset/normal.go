// SPDX-License-Identifier: MIT

package pcset

// NormalOrder returns the most compact rotation of the sorted residues.
//
// Algorithm:
//  1. Sort the distinct residues. Cardinality 1 yields [0]; cardinality 2
//     yields the sorted pair unchanged.
//  2. For every rotation r, span(r) = (r[n-1] - r[0]) mod m. Keep the
//     rotations of minimal span.
//  3. While more than one rotation survives, compare the next-outer interval
//     (r[n-2]-r[0], then r[n-3]-r[0], ...) among the survivors only.
//  4. Ties that survive every position belong to transpositionally
//     symmetric sets; the surviving rotation whose first element comes
//     earliest in sorted order is returned.
//
// The receiver is not modified; the result is a fresh slice.
// Complexity: O(n²) time, O(n) extra space.
func (s *ResidueSet) NormalOrder() []int {
	return normalOrder(s.Elements(), s.modulus)
}

// normalOrder runs the rotation search over sorted distinct residues p.
func normalOrder(p []int, m int) []int {
	switch len(p) {
	case 1:
		return []int{0}
	case 2:
		return []int{p[0], p[1]}
	}

	return compactRotation(p, m)
}

// compactRotation is the rotation search without the trivial-set shortcuts.
// PrimeForm uses it directly so that dyads reduce to their interval class.
func compactRotation(p []int, m int) []int {
	n := len(p)
	if n == 1 {
		return []int{p[0]}
	}

	// candidates holds rotation start indices; rotation k reads p[k], p[k+1], ...
	candidates := make([]int, n)
	for k := range candidates {
		candidates[k] = k
	}

	for pos := n - 1; pos >= 1 && len(candidates) > 1; pos-- {
		candidates = narrow(p, m, candidates, pos)
	}

	return rotate(p, candidates[0])
}

// narrow keeps the candidates whose interval from position 0 to pos is
// minimal. Order of the survivors is preserved.
func narrow(p []int, m int, candidates []int, pos int) []int {
	n := len(p)
	best := m
	kept := candidates[:0:0]
	for _, k := range candidates {
		d := mod(p[(k+pos)%n]-p[k], m)
		switch {
		case d < best:
			best = d
			kept = append(kept[:0], k)
		case d == best:
			kept = append(kept, k)
		}
	}

	return kept
}

// rotate returns p rotated left by k positions as a fresh slice.
func rotate(p []int, k int) []int {
	n := len(p)
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = p[(k+i)%n]
	}

	return out
}
