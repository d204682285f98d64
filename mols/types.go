// Package mols - types, options, and sentinel errors for orthogonality search.
package mols

import (
	"context"
	"errors"
	"fmt"

	"github.com/quasigroup/latsq/square"
)

// Sentinel errors for orthogonality search.
var (
	// ErrNilSquare indicates a nil square input.
	ErrNilSquare = errors.New("mols: square is nil")
	// ErrInvalidSquare indicates an input that fails square validation.
	ErrInvalidSquare = errors.New("mols: square is invalid")
	// ErrOrderMismatch indicates squares of different orders.
	ErrOrderMismatch = errors.New("mols: squares have different orders")
	// ErrNotOrthogonal indicates a tuple containing a non-orthogonal pair.
	ErrNotOrthogonal = errors.New("mols: squares are not orthogonal")
	// ErrEmptyCatalog indicates a catalog without representatives.
	ErrEmptyCatalog = errors.New("mols: catalog has no representatives")
	// ErrClassIndex indicates a class index outside the catalog.
	ErrClassIndex = errors.New("mols: class index out of range")
)

// Catalog is an immutable table of main-class representative squares of
// one order. It is plain read-only input: pass it explicitly to searches
// rather than holding it as ambient state.
type Catalog struct {
	order int
	reps  []*square.Square
}

// NewCatalog validates that every representative is a valid square of
// the same order and returns an immutable catalog over them.
func NewCatalog(reps []*square.Square) (*Catalog, error) {
	if len(reps) == 0 {
		return nil, ErrEmptyCatalog
	}

	order := reps[0].N()
	for i, r := range reps {
		if r == nil {
			return nil, ErrNilSquare
		}
		if r.N() != order {
			return nil, ErrOrderMismatch
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("mols: representative %d: %w", i, ErrInvalidSquare)
		}
	}

	out := make([]*square.Square, len(reps))
	copy(out, reps)

	return &Catalog{order: order, reps: out}, nil
}

// Order returns the order of the catalogued squares.
func (c *Catalog) Order() int { return c.order }

// Len returns the number of main classes in the catalog.
func (c *Catalog) Len() int { return len(c.reps) }

// Rep returns the representative of class i.
// Errors: ErrClassIndex when i is out of range.
func (c *Catalog) Rep(i int) (*square.Square, error) {
	if i < 0 || i >= len(c.reps) {
		return nil, ErrClassIndex
	}

	return c.reps[i], nil
}

// Tuple is an ordered set of pairwise orthogonal squares of equal order.
type Tuple []*square.Square

// NewTuple validates pairwise orthogonality and returns the tuple.
// The error of a failing pair names its indices.
func NewTuple(sqs ...*square.Square) (Tuple, error) {
	for i, a := range sqs {
		if a == nil {
			return nil, ErrNilSquare
		}
		if a.N() != sqs[0].N() {
			return nil, ErrOrderMismatch
		}
		for j := i + 1; j < len(sqs); j++ {
			if !Orthogonal(a, sqs[j]) {
				return nil, fmt.Errorf("mols: squares %d and %d: %w", i, j, ErrNotOrthogonal)
			}
		}
	}

	out := make(Tuple, len(sqs))
	copy(out, sqs)

	return out, nil
}

// Transform records the symmetry applied to a catalogued representative
// to reach a witnessing orthogonal image.
type Transform struct {
	// Axes is the conjugate applied first; see square.ConjugateAxes.
	Axes [3]int
	// RowPerm and ColPerm are applied after the conjugate.
	RowPerm square.Permutation
	ColPerm square.Permutation
}

// Witness is one realized orthogonal pair: Mate is the symmetry image of
// the second representative that proved orthogonal to the first.
type Witness struct {
	Mate      *square.Square
	Transform Transform
}

// Option configures orthogonality search.
type Option func(*Options)

// Options holds the tunable parameters of orthogonality search.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// All collects every witnessing image instead of the first one.
	All bool

	// Workers sets the parallel width for image enumeration. Default 1.
	// With Workers > 1 and All unset, the search still returns a valid
	// witness, but which of several equally valid witnesses is returned
	// may vary between runs; classification (mate / no mate) does not.
	Workers int

	// ImageBudget caps the work done before giving up: symmetry images
	// tested by FindMate, or branch assignments explored by Mates.
	// 0 means unlimited. Exceeding it flags the result Exhausted.
	ImageBudget int64

	// MateLimit caps the number of squares generated by Mates; 0 means
	// DefaultMateLimit.
	MateLimit int
}

// DefaultMateLimit bounds Mates generation when no explicit cap is given.
const DefaultMateLimit = 1

// DefaultOptions returns Options with a background context, first-witness
// mode, sequential enumeration, and no image budget.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
	}
}

// WithContext sets the cancellation context. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithAll collects every witnessing image / mate instead of the first.
func WithAll() Option {
	return func(o *Options) { o.All = true }
}

// WithWorkers sets the parallel enumeration width. Values < 1 are ignored.
func WithWorkers(workers int) Option {
	return func(o *Options) {
		if workers >= 1 {
			o.Workers = workers
		}
	}
}

// WithImageBudget caps tested symmetry images; 0 disables the cap.
func WithImageBudget(images int64) Option {
	return func(o *Options) {
		if images >= 0 {
			o.ImageBudget = images
		}
	}
}

// WithMateLimit caps the number of mates generated by Mates.
func WithMateLimit(limit int) Option {
	return func(o *Options) {
		if limit >= 1 {
			o.MateLimit = limit
		}
	}
}

// Result reports the witnesses found and how the search ended.
type Result struct {
	// Witnesses holds the realized orthogonal images, in enumeration
	// order for sequential searches.
	Witnesses []Witness

	// Tuples holds assembled MOLS tuples for FindPairs / Extend.
	Tuples []Tuple

	// Mates holds the squares generated by Mates, first row 1..n,
	// in deterministic search order.
	Mates []*square.Square

	// NoMate is true when the search space was covered without finding
	// any orthogonal image — an expected outcome, not an error.
	NoMate bool

	// Images counts symmetry images actually tested.
	Images int64

	// Exhausted is true when the image budget or context ran out before
	// the search space was covered.
	Exhausted bool
}
