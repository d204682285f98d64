package mols

import "github.com/quasigroup/latsq/square"

// Orthogonal reports whether a and b are orthogonal: over all n² cells,
// the symbol pairs (a[cell], b[cell]) are pairwise distinct. Nil inputs
// and mismatched orders report false. O(n²).
func Orthogonal(a, b *square.Square) bool {
	if a == nil || b == nil || a.N() != b.N() {
		return false
	}

	n := a.N()
	seen := make([]bool, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			pair := (a.At(i, j)-1)*n + (b.At(i, j) - 1)
			if seen[pair] {
				return false
			}
			seen[pair] = true
		}
	}

	return true
}

// OrthogonalGrids runs the pair-multiset test on raw row-major grids of
// n² symbols in [1, n], without requiring either grid to be a Latin
// square. It is the boundary form of the orthogonality check: distinct
// pairs at all n² cells. Malformed input (wrong length, symbol out of
// range) reports false.
func OrthogonalGrids(n int, a, b []int) bool {
	if n < 1 || len(a) != n*n || len(b) != n*n {
		return false
	}

	seen := make([]bool, n*n)
	for i := range a {
		if a[i] < 1 || a[i] > n || b[i] < 1 || b[i] > n {
			return false
		}
		pair := (a[i]-1)*n + (b[i] - 1)
		if seen[pair] {
			return false
		}
		seen[pair] = true
	}

	return true
}
