package square

// PermuteRows returns the square whose row p[i] is s's row i.
// The permutation must have length n; callers validate with NewPermutation.
func (s *Square) PermuteRows(p Permutation) *Square {
	n := s.n
	buf := make([]uint8, n*n)
	for i := 0; i < n; i++ {
		copy(buf[p[i]*n:p[i]*n+n], s.cells[i*n:i*n+n])
	}

	return newUnchecked(n, buf)
}

// PermuteCols returns the square whose column p[j] is s's column j.
func (s *Square) PermuteCols(p Permutation) *Square {
	n := s.n
	buf := make([]uint8, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			buf[i*n+p[j]] = s.cells[i*n+j]
		}
	}

	return newUnchecked(n, buf)
}

// PermuteSymbols returns the square with symbol k+1 renamed to p[k]+1.
func (s *Square) PermuteSymbols(p Permutation) *Square {
	n := s.n
	buf := make([]uint8, n*n)
	for i, v := range s.cells {
		buf[i] = uint8(p[int(v)-1] + 1)
	}

	return newUnchecked(n, buf)
}

// Conjugate reinterprets the (row, col, symbol) triples of s under a
// permutation of the three coordinate roles: the k-th new coordinate is
// the axes[k]-th old one, so {0,1,2} is the identity and {1,0,2} the
// transpose. The result is always a Latin square.
//
// Errors: ErrBadAxes when axes is not a permutation of {0, 1, 2}.
func (s *Square) Conjugate(axes [3]int) (*Square, error) {
	// 1. Validate the axis triple.
	var seen [3]bool
	for _, a := range axes {
		if a < 0 || a > 2 || seen[a] {
			return nil, ErrBadAxes
		}
		seen[a] = true
	}

	// 2. Rewrite every triple.
	n := s.n
	buf := make([]uint8, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			t := [3]int{i, j, int(s.cells[i*n+j]) - 1}
			buf[t[axes[0]]*n+t[axes[1]]] = uint8(t[axes[2]] + 1)
		}
	}

	return newUnchecked(n, buf), nil
}
