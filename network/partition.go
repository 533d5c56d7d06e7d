// SPDX-License-Identifier: MIT

package network

// rowRange is the half-open row interval [lo, hi) owned by one worker.
type rowRange struct{ lo, hi int }

// partition splits [0,n) into at most workers contiguous ranges whose sizes
// differ by at most one; earlier ranges take the remainder.
// Complexity: O(workers).
func partition(n, workers int) []rowRange {
	if n <= 0 {
		return nil
	}
	if workers > n {
		workers = n
	}
	size, rem := n/workers, n%workers
	out := make([]rowRange, 0, workers)
	lo := 0
	for w := 0; w < workers; w++ {
		hi := lo + size
		if w < rem {
			hi++
		}
		out = append(out, rowRange{lo: lo, hi: hi})
		lo = hi
	}

	return out
}
