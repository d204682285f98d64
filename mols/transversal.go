package mols

import "github.com/quasigroup/latsq/square"

// Transversals counts the transversals of sq: selections of n cells, one
// per row, covering every column and every symbol exactly once. The count
// is invariant under row/column/symbol relabeling and conjugation, so it
// can be computed once per main class.
//
// Backtracking over rows with column and symbol bitmasks; worst case
// exponential, fast at catalogue orders.
func Transversals(sq *square.Square) int {
	if sq == nil {
		return 0
	}

	return countTransversals(sq, 0)
}

// countTransversals counts transversals, stopping early once limit is
// reached when limit > 0.
func countTransversals(sq *square.Square, limit int) int {
	n := sq.N()
	count := 0

	// colsUsed / symsUsed track the columns and symbols already covered.
	var walk func(row int, colsUsed, symsUsed uint32)
	walk = func(row int, colsUsed, symsUsed uint32) {
		if limit > 0 && count >= limit {
			return
		}
		if row == n {
			count++

			return
		}
		for col := 0; col < n; col++ {
			colBit := uint32(1) << col
			if colsUsed&colBit != 0 {
				continue
			}
			symBit := uint32(1) << (sq.At(row, col) - 1)
			if symsUsed&symBit != 0 {
				continue
			}
			walk(row+1, colsUsed|colBit, symsUsed|symBit)
		}
	}
	walk(0, 0, 0)

	return count
}

// hasMatePrecondition reports whether sq passes the transversal
// prefilter: an orthogonal mate decomposes sq into n disjoint
// transversals, so fewer than n transversals rules a mate out without
// enumerating a single symmetry image.
func hasMatePrecondition(sq *square.Square) bool {
	return countTransversals(sq, sq.N()) >= sq.N()
}
