package solver

import (
	"math/bits"

	"github.com/quasigroup/latsq/square"
)

// grid is the propagation arena: one candidate bitmask per cell (bit k
// set means symbol k+1 is still possible), flat row-major slices for
// cache-friendly scanning. Assigning a cell recursively eliminates its
// symbol from row/column peers and commits any naked single produced.
type grid struct {
	n        int
	full     uint16   // mask with the low n bits set
	cand     []uint16 // candidate mask per cell
	assigned []bool   // cell committed (single candidate, propagated)
	done     int      // number of committed cells
}

func newGrid(n int) *grid {
	g := &grid{
		n:        n,
		full:     uint16(1<<n) - 1,
		cand:     make([]uint16, n*n),
		assigned: make([]bool, n*n),
	}
	for i := range g.cand {
		g.cand[i] = g.full
	}

	return g
}

// gridFromPartial seeds a grid with every assignment of p.
// ok is false when p is inconsistent (duplicate in a row or column, or
// an assignment eliminated by earlier propagation).
func gridFromPartial(p *square.PartialSquare) (*grid, bool) {
	n := p.N()
	g := newGrid(n)

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			s := p.At(r, c)
			if s == 0 {
				continue
			}
			if !g.place(r*n+c, uint16(1)<<(s-1)) {
				return nil, false
			}
		}
	}

	return g, true
}

func (g *grid) clone() *grid {
	out := &grid{
		n:        g.n,
		full:     g.full,
		cand:     make([]uint16, len(g.cand)),
		assigned: make([]bool, len(g.assigned)),
		done:     g.done,
	}
	copy(out.cand, g.cand)
	copy(out.assigned, g.assigned)

	return out
}

// place commits the single-candidate mask bit at cell idx and propagates
// eliminations through the cell's row and column. Naked singles created
// by the eliminations are committed recursively. Returns false on
// contradiction (an assignment outside the cell's candidates, or a peer
// left with no candidates).
func (g *grid) place(idx int, bit uint16) bool {
	if g.cand[idx]&bit == 0 {
		return false
	}
	if g.assigned[idx] {
		return g.cand[idx] == bit
	}

	g.cand[idx] = bit
	g.assigned[idx] = true
	g.done++

	n := g.n
	row, col := idx/n, idx%n

	for k := 0; k < n; k++ {
		for _, peer := range [2]int{row*n + k, k*n + col} {
			if peer == idx {
				continue
			}
			m := g.cand[peer]
			if m&bit == 0 {
				continue
			}
			if g.assigned[peer] {
				return false
			}
			m &^= bit
			if m == 0 {
				return false
			}
			g.cand[peer] = m
			if m&(m-1) == 0 && !g.place(peer, m) {
				return false
			}
		}
	}

	return true
}

// findSingles commits hidden singles — a symbol whose only remaining
// home in a row or column is one cell — repeating until a fixpoint.
// Returns false on contradiction.
func (g *grid) findSingles() bool {
	n := g.n

	for changed := true; changed; {
		changed = false

		for line := 0; line < n; line++ {
			for axis := 0; axis < 2; axis++ {
				var seenOnce, seenTwice uint16
				for k := 0; k < n; k++ {
					idx := line*n + k
					if axis == 1 {
						idx = k*n + line
					}
					if g.assigned[idx] {
						continue
					}
					m := g.cand[idx]
					seenTwice |= seenOnce & m
					seenOnce |= m
				}

				hidden := seenOnce &^ seenTwice
				if hidden == 0 {
					continue
				}
				for k := 0; k < n; k++ {
					idx := line*n + k
					if axis == 1 {
						idx = k*n + line
					}
					if g.assigned[idx] {
						continue
					}
					if h := g.cand[idx] & hidden; h != 0 {
						// Commit one hidden single; the rest re-derive next pass.
						bit := h & (-h)
						if !g.place(idx, bit) {
							return false
						}
						changed = true
					}
				}
			}
		}
	}

	return true
}

// solved reports whether every cell is committed.
func (g *grid) solved() bool { return g.done == g.n*g.n }

// mrvCell returns the uncommitted cell with the fewest candidates,
// row-major order breaking ties. ok is false when the grid is solved.
func (g *grid) mrvCell() (idx int, ok bool) {
	best, bestCount := -1, g.n+1
	for i, m := range g.cand {
		if g.assigned[i] {
			continue
		}
		if c := bits.OnesCount16(m); c < bestCount {
			best, bestCount = i, c
			if c == 2 {
				return best, true
			}
		}
	}

	return best, best >= 0
}

// candidates returns the symbols still possible at idx, ascending.
func (g *grid) candidates(idx int) []int {
	m := g.cand[idx]
	out := make([]int, 0, bits.OnesCount16(m))
	for m != 0 {
		bit := m & (-m)
		out = append(out, bits.TrailingZeros16(bit)+1)
		m &^= bit
	}

	return out
}

// toSquare converts a solved grid into a Square.
func (g *grid) toSquare() *square.Square {
	cells := make([]int, len(g.cand))
	for i, m := range g.cand {
		cells[i] = bits.TrailingZeros16(m) + 1
	}

	// The grid invariant guarantees validity; New re-checks cheaply.
	sq, _ := square.New(g.n, cells)

	return sq
}
