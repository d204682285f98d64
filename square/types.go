// Package square - core types and sentinel errors for the Latin-square model.
package square

import "errors"

// MaxOrder is the largest supported square order. The completion solver
// tracks candidate symbols in 16-bit masks, which bounds the order.
const MaxOrder = 16

// Sentinel errors for square construction and relabeling.
var (
	// ErrOrderRange indicates an order outside [1, MaxOrder].
	ErrOrderRange = errors.New("square: order out of range")
	// ErrConstraintViolation indicates a row or column that is not a
	// permutation of the symbols [1, n].
	ErrConstraintViolation = errors.New("square: row or column is not a permutation of symbols")
	// ErrCellRange indicates a cell coordinate outside [0, n).
	ErrCellRange = errors.New("square: cell coordinate out of range")
	// ErrSymbolRange indicates a symbol outside [1, n].
	ErrSymbolRange = errors.New("square: symbol out of range")
	// ErrBadPermutation indicates a slice that is not a permutation of [0, n).
	ErrBadPermutation = errors.New("square: not a permutation of [0, n)")
	// ErrBadAxes indicates conjugate axes that are not a permutation of {0, 1, 2}.
	ErrBadAxes = errors.New("square: conjugate axes must permute {0, 1, 2}")
)

// Cell addresses one position of an order-n square.
// Both coordinates are in [0, n).
type Cell struct {
	Row, Col int
}

// Index returns the row-major index of c in an order-n square.
func (c Cell) Index(n int) int { return c.Row*n + c.Col }

// CellAt is the inverse of Cell.Index for an order-n square.
func CellAt(index, n int) Cell { return Cell{Row: index / n, Col: index % n} }

// Permutation maps positions of [0, n): position i goes to p[i].
// Use NewPermutation to validate arbitrary input.
type Permutation []int

// NewPermutation validates that p is a permutation of [0, len(p)) and
// returns a defensive copy. Returns ErrBadPermutation otherwise.
func NewPermutation(p []int) (Permutation, error) {
	seen := make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return nil, ErrBadPermutation
		}
		seen[v] = true
	}

	out := make(Permutation, len(p))
	copy(out, p)

	return out, nil
}

// IdentityPermutation returns the identity permutation of [0, n).
func IdentityPermutation(n int) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// Inverse returns the inverse permutation q with q[p[i]] == i.
func (p Permutation) Inverse() Permutation {
	q := make(Permutation, len(p))
	for i, v := range p {
		q[v] = i
	}

	return q
}

// ConjugateAxes enumerates the six reinterpretations of (row, col, symbol)
// triples. Axes[k] names which original coordinate supplies the k-th new
// coordinate: {0,1,2} is the identity, {1,0,2} the transpose, and so on.
var ConjugateAxes = [6][3]int{
	{0, 1, 2},
	{0, 2, 1},
	{1, 0, 2},
	{1, 2, 0},
	{2, 0, 1},
	{2, 1, 0},
}
