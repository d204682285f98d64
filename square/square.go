package square

// Square is an immutable Latin square of order n: every row and every
// column is a permutation of the symbols [1, n]. Construct with New;
// all relabeling operations return fresh squares.
type Square struct {
	n     int
	cells []uint8 // row-major, 1-based symbols
}

// New builds a validated Square from n² row-major symbols in [1, n].
//
// Errors: ErrOrderRange for n outside [1, MaxOrder]; ErrCellRange when
// len(cells) != n²; ErrSymbolRange for an out-of-range entry;
// ErrConstraintViolation when a row or column repeats a symbol.
func New(n int, cells []int) (*Square, error) {
	// 1. Validate order and shape.
	if n < 1 || n > MaxOrder {
		return nil, ErrOrderRange
	}
	if len(cells) != n*n {
		return nil, ErrCellRange
	}

	// 2. Copy and range-check symbols.
	buf := make([]uint8, n*n)
	for i, s := range cells {
		if s < 1 || s > n {
			return nil, ErrSymbolRange
		}
		buf[i] = uint8(s)
	}

	sq := &Square{n: n, cells: buf}

	// 3. Enforce the Latin property.
	if err := sq.Validate(); err != nil {
		return nil, err
	}

	return sq, nil
}

// newUnchecked wraps cells that are already known to satisfy the Latin
// property (outputs of relabelings and the solver).
func newUnchecked(n int, cells []uint8) *Square {
	return &Square{n: n, cells: cells}
}

// N returns the order of the square.
func (s *Square) N() int { return s.n }

// At returns the symbol at (row, col). Coordinates must be in [0, n).
func (s *Square) At(row, col int) int { return int(s.cells[row*s.n+col]) }

// Row returns a copy of the given row's symbols.
func (s *Square) Row(row int) []int {
	out := make([]int, s.n)
	for j := 0; j < s.n; j++ {
		out[j] = int(s.cells[row*s.n+j])
	}

	return out
}

// Col returns a copy of the given column's symbols.
func (s *Square) Col(col int) []int {
	out := make([]int, s.n)
	for i := 0; i < s.n; i++ {
		out[i] = int(s.cells[i*s.n+col])
	}

	return out
}

// Cells returns a copy of the row-major symbol contents.
func (s *Square) Cells() []int {
	out := make([]int, len(s.cells))
	for i, v := range s.cells {
		out[i] = int(v)
	}

	return out
}

// Equal reports whether s and o have the same order and contents.
func (s *Square) Equal(o *Square) bool {
	if o == nil || s.n != o.n {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != o.cells[i] {
			return false
		}
	}

	return true
}

// Validate checks the Latin-square invariant: every row and every
// column holds each symbol of [1, n] exactly once. O(n²).
func (s *Square) Validate() error {
	n := s.n
	rowSeen := make([]bool, n+1)
	colSeen := make([]bool, n+1)

	for i := 0; i < n; i++ {
		for k := 1; k <= n; k++ {
			rowSeen[k] = false
			colSeen[k] = false
		}
		for j := 0; j < n; j++ {
			r := s.cells[i*n+j]
			c := s.cells[j*n+i]
			if rowSeen[r] || colSeen[c] {
				return ErrConstraintViolation
			}
			rowSeen[r] = true
			colSeen[c] = true
		}
	}

	return nil
}

// IsReduced reports whether the first row and first column are the
// identity sequence 1, 2, …, n.
func (s *Square) IsReduced() bool {
	for i := 0; i < s.n; i++ {
		if int(s.cells[i]) != i+1 || int(s.cells[i*s.n]) != i+1 {
			return false
		}
	}

	return true
}

// Reduced returns the relabeling of s whose first row and first column
// are 1, 2, …, n: symbols are renamed so row 0 becomes the identity,
// then rows are reordered by their first entry.
func (s *Square) Reduced() *Square {
	n := s.n

	// 1. Symbol permutation sending row 0 to 1..n.
	symPerm := make(Permutation, n)
	for j := 0; j < n; j++ {
		symPerm[int(s.cells[j])-1] = j
	}
	out := s.PermuteSymbols(symPerm)

	// 2. Row permutation sorting the first column to 1..n.
	rowPerm := make(Permutation, n)
	for i := 0; i < n; i++ {
		rowPerm[i] = out.At(i, 0) - 1
	}

	return out.PermuteRows(rowPerm)
}

// ToPartial returns a fully assigned PartialSquare with the same contents.
func (s *Square) ToPartial() *PartialSquare {
	buf := make([]uint8, len(s.cells))
	copy(buf, s.cells)

	return &PartialSquare{n: s.n, cells: buf, filled: len(buf)}
}

// Mask returns the restriction of s to the given cells: a PartialSquare
// assigning s's symbol at each listed cell and empty elsewhere.
// Duplicate cells are harmless. Returns ErrCellRange on a bad coordinate.
func (s *Square) Mask(cells []Cell) (*PartialSquare, error) {
	p := NewPartial(s.n)
	for _, c := range cells {
		if c.Row < 0 || c.Row >= s.n || c.Col < 0 || c.Col >= s.n {
			return nil, ErrCellRange
		}
		if p.cells[c.Index(s.n)] == 0 {
			p.filled++
		}
		p.cells[c.Index(s.n)] = s.cells[c.Index(s.n)]
	}

	return p, nil
}

// Diff returns the cells where s and o disagree, in row-major order.
// Orders must match; callers compare only same-order squares.
func (s *Square) Diff(o *Square) []Cell {
	var out []Cell
	for i := range s.cells {
		if s.cells[i] != o.cells[i] {
			out = append(out, CellAt(i, s.n))
		}
	}

	return out
}
