package mols

import (
	"math/bits"

	"github.com/quasigroup/latsq/square"
)

// Mates generates squares orthogonal to every member of base, up to
// WithMateLimit of them, in deterministic search order.
//
// The search extends the completion solver's propagation scheme with one
// extra constraint per base square: a cell of the mate may not reuse a
// (base symbol, mate symbol) pair already placed elsewhere. Candidate
// masks therefore combine row, column, and per-base pair exclusions, and
// branching follows the minimum-remaining-values cell, row-major ties.
//
// The mate's first row is pinned to 1..n: symbol relabeling preserves
// orthogonality, so every relabeling class of mates has exactly one such
// representative and no duplicates are emitted.
//
// An exceeded budget (WithImageBudget, counting branch assignments) or a
// cancelled context flags the result Exhausted.
func Mates(base Tuple, opts ...Option) (*Result, error) {
	// 1. Guard the base tuple.
	if len(base) == 0 {
		return nil, ErrNilSquare
	}
	if _, err := NewTuple(base...); err != nil {
		return nil, err
	}

	// 2. Apply options.
	mopts := DefaultOptions()
	for _, fn := range opts {
		fn(&mopts)
	}
	limit := mopts.MateLimit
	if limit < 1 {
		limit = DefaultMateLimit
	}

	// 3. Run the constrained backtracking search.
	s := &mateSearcher{
		base:  base,
		n:     base[0].N(),
		opts:  &mopts,
		limit: limit,
	}
	s.run()

	return &Result{
		Mates:     s.found,
		NoMate:    len(s.found) == 0 && !s.exhausted,
		Exhausted: s.exhausted,
	}, nil
}

// mateSearcher carries the mutable state of one Mates call.
type mateSearcher struct {
	base  Tuple
	n     int
	opts  *Options
	limit int

	full     uint16
	cells    []uint8    // mate contents, row-major, 0 = empty
	rowUsed  []uint16   // symbols used per mate row
	colUsed  []uint16   // symbols used per mate column
	pairUsed [][]uint16 // per base square: mate symbols used per base symbol

	nodes     int64
	found     []*square.Square
	exhausted bool
}

func (s *mateSearcher) run() {
	n := s.n
	s.full = uint16(1<<n) - 1
	s.cells = make([]uint8, n*n)
	s.rowUsed = make([]uint16, n)
	s.colUsed = make([]uint16, n)
	s.pairUsed = make([][]uint16, len(s.base))
	for i := range s.pairUsed {
		s.pairUsed[i] = make([]uint16, n)
	}

	// Pin the first row to 1..n.
	for c := 0; c < n; c++ {
		s.put(0, c, c+1)
	}

	s.dfs(n)
}

// candidates returns the candidate mask at the empty cell idx.
func (s *mateSearcher) candidates(idx int) uint16 {
	r, c := idx/s.n, idx%s.n
	m := s.full &^ (s.rowUsed[r] | s.colUsed[c])
	for b, sq := range s.base {
		m &^= s.pairUsed[b][sq.At(r, c)-1]
	}

	return m
}

func (s *mateSearcher) put(r, c, sym int) {
	bit := uint16(1) << (sym - 1)
	s.cells[r*s.n+c] = uint8(sym)
	s.rowUsed[r] |= bit
	s.colUsed[c] |= bit
	for b, sq := range s.base {
		s.pairUsed[b][sq.At(r, c)-1] |= bit
	}
}

func (s *mateSearcher) unput(r, c, sym int) {
	bit := uint16(1) << (sym - 1)
	s.cells[r*s.n+c] = 0
	s.rowUsed[r] &^= bit
	s.colUsed[c] &^= bit
	for b, sq := range s.base {
		s.pairUsed[b][sq.At(r, c)-1] &^= bit
	}
}

// dfs explores from the given number of filled cells; returns true to
// stop the whole search.
func (s *mateSearcher) dfs(filled int) bool {
	if s.opts.Ctx.Err() != nil {
		s.exhausted = true

		return true
	}
	if s.opts.ImageBudget > 0 && s.nodes >= s.opts.ImageBudget {
		s.exhausted = true

		return true
	}

	n := s.n
	if filled == n*n {
		cells := make([]int, n*n)
		for i, v := range s.cells {
			cells[i] = int(v)
		}
		sq, err := square.New(n, cells)
		if err != nil {
			return false
		}
		s.found = append(s.found, sq)

		return len(s.found) >= s.limit
	}

	// Minimum-remaining-values cell, row-major tie-break.
	best, bestCount := -1, n+1
	for i, v := range s.cells {
		if v != 0 {
			continue
		}
		count := bits.OnesCount16(s.candidates(i))
		if count == 0 {
			return false
		}
		if count < bestCount {
			best, bestCount = i, count
		}
	}

	r, c := best/n, best%n
	for m := s.candidates(best); m != 0; {
		bit := m & (-m)
		m &^= bit
		sym := bits.TrailingZeros16(bit) + 1

		s.nodes++
		s.put(r, c, sym)
		if s.dfs(filled + 1) {
			return true
		}
		s.unput(r, c, sym)
	}

	return false
}
