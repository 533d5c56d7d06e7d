// SPDX-License-Identifier: MIT

package pcset

// IntervalVector returns the interval-class histogram of s.
//
// For every unordered pair (a, b) the interval class is min(|a-b|, m-|a-b|);
// bin k-1 counts interval class k for k = 1..floor(m/2). The bins always sum
// to C(n, 2) because residues are distinct.
//
// Complexity: O(n²) time, O(m) space.
func (s *ResidueSet) IntervalVector() []int {
	p := s.Elements()
	bins := make([]int, s.modulus/2)
	if len(bins) == 0 {
		return bins
	}
	for i := 0; i < len(p); i++ {
		for j := i + 1; j < len(p); j++ {
			d := p[j] - p[i]
			if d < 0 {
				d = -d
			}
			if s.modulus-d < d {
				d = s.modulus - d
			}
			bins[d-1]++
		}
	}

	return bins
}
