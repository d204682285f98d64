package square

// PartialSquare is a mutable partial assignment of an order-n square:
// a mapping from cells to symbols in [1, n], with 0 marking an empty
// cell. Search code clones a PartialSquare per branch; instances are
// never shared mutably across goroutines.
type PartialSquare struct {
	n      int
	cells  []uint8 // row-major, 0 = empty
	filled int
}

// NewPartial returns an empty partial assignment of order n.
// Order is assumed valid; use New/Validate paths for untrusted input.
func NewPartial(n int) *PartialSquare {
	return &PartialSquare{n: n, cells: make([]uint8, n*n)}
}

// N returns the order of the assignment.
func (p *PartialSquare) N() int { return p.n }

// Filled returns the number of assigned cells.
func (p *PartialSquare) Filled() int { return p.filled }

// Empty reports whether no cell is assigned.
func (p *PartialSquare) Empty() bool { return p.filled == 0 }

// Full reports whether every cell is assigned.
func (p *PartialSquare) Full() bool { return p.filled == p.n*p.n }

// At returns the symbol at (row, col), or 0 when the cell is empty.
func (p *PartialSquare) At(row, col int) int { return int(p.cells[row*p.n+col]) }

// Set assigns symbol s to (row, col). Errors: ErrCellRange for a bad
// coordinate, ErrSymbolRange for s outside [1, n]. Set does not check
// row/column consistency; call Validate once a batch of assignments is
// in place.
func (p *PartialSquare) Set(row, col, s int) error {
	if row < 0 || row >= p.n || col < 0 || col >= p.n {
		return ErrCellRange
	}
	if s < 1 || s > p.n {
		return ErrSymbolRange
	}
	if p.cells[row*p.n+col] == 0 {
		p.filled++
	}
	p.cells[row*p.n+col] = uint8(s)

	return nil
}

// Unset clears (row, col). Clearing an empty cell is a no-op.
func (p *PartialSquare) Unset(row, col int) error {
	if row < 0 || row >= p.n || col < 0 || col >= p.n {
		return ErrCellRange
	}
	if p.cells[row*p.n+col] != 0 {
		p.filled--
	}
	p.cells[row*p.n+col] = 0

	return nil
}

// Clone returns an independent copy of p.
func (p *PartialSquare) Clone() *PartialSquare {
	buf := make([]uint8, len(p.cells))
	copy(buf, p.cells)

	return &PartialSquare{n: p.n, cells: buf, filled: p.filled}
}

// Cells returns the assigned cells in row-major order.
func (p *PartialSquare) Cells() []Cell {
	out := make([]Cell, 0, p.filled)
	for i, v := range p.cells {
		if v != 0 {
			out = append(out, CellAt(i, p.n))
		}
	}

	return out
}

// Validate checks pairwise consistency: no symbol occurs twice within
// any row or column. Empty cells are ignored. O(n²).
func (p *PartialSquare) Validate() error {
	n := p.n
	seen := make([]bool, n+1)

	for i := 0; i < n; i++ {
		// Row i.
		for k := 1; k <= n; k++ {
			seen[k] = false
		}
		for j := 0; j < n; j++ {
			if v := p.cells[i*n+j]; v != 0 {
				if seen[v] {
					return ErrConstraintViolation
				}
				seen[v] = true
			}
		}

		// Column i.
		for k := 1; k <= n; k++ {
			seen[k] = false
		}
		for j := 0; j < n; j++ {
			if v := p.cells[j*n+i]; v != 0 {
				if seen[v] {
					return ErrConstraintViolation
				}
				seen[v] = true
			}
		}
	}

	return nil
}

// ToSquare converts a full, consistent assignment into a Square.
// Errors: ErrConstraintViolation when p is not full or not Latin.
func (p *PartialSquare) ToSquare() (*Square, error) {
	if !p.Full() {
		return nil, ErrConstraintViolation
	}

	buf := make([]uint8, len(p.cells))
	copy(buf, p.cells)
	sq := newUnchecked(p.n, buf)
	if err := sq.Validate(); err != nil {
		return nil, err
	}

	return sq, nil
}

// Agrees reports whether every assigned cell of p matches sq.
func (p *PartialSquare) Agrees(sq *Square) bool {
	if sq == nil || sq.n != p.n {
		return false
	}
	for i, v := range p.cells {
		if v != 0 && v != sq.cells[i] {
			return false
		}
	}

	return true
}
