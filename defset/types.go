// Package defset - types, options, and sentinel errors for defining-set search.
package defset

import (
	"context"
	"errors"

	"github.com/quasigroup/latsq/square"
)

// Sentinel errors for defining-set search.
var (
	// ErrNilSquare indicates a nil target square.
	ErrNilSquare = errors.New("defset: target square is nil")
	// ErrInvalidSquare indicates a target that fails square validation.
	ErrInvalidSquare = errors.New("defset: target square is invalid")
	// ErrNotDefiningSet indicates a WithStart assignment that does not
	// uniquely complete to the target.
	ErrNotDefiningSet = errors.New("defset: start assignment is not a defining set of the target")
)

// DefiningSet pairs a partial assignment with the target square it
// uniquely completes to, as proven by the completion solver during search.
type DefiningSet struct {
	// Target is the square forced by Cells.
	Target *square.Square
	// Cells is the uniqueness-forcing partial assignment; every assigned
	// cell agrees with Target.
	Cells *square.PartialSquare
}

// Size returns the number of assigned cells.
func (d *DefiningSet) Size() int { return d.Cells.Filled() }

// Mode selects the sub-critical search strategy.
type Mode int

const (
	// Exhaustive enumerates cell subsets deterministically by increasing
	// size and returns the smallest defining sets it can prove.
	Exhaustive Mode = iota
	// Randomized runs greedy removal in a seeded shuffle order and
	// returns the first defining set encountered.
	Randomized
)

// Option configures defining-set search.
type Option func(*Options)

// Options holds the tunable parameters of a defining-set search.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Mode selects the sub-critical strategy. Default Exhaustive.
	Mode Mode

	// Seed drives the shuffled removal order for Randomized mode (and,
	// when non-zero, for FindCriticalSet). Seed 0 keeps the
	// lexicographic order in FindCriticalSet and maps to a fixed
	// default seed in Randomized mode.
	Seed int64

	// Workers sets the parallel width for removal probes. Results are
	// accepted in fixed cell order regardless of the width. Default 1.
	Workers int

	// OracleBudget caps completion-solver invocations; 0 means
	// unlimited. Exceeding it flags the result Exhausted.
	OracleBudget int64

	// MaxSize bounds the subset sizes tried in Exhaustive mode;
	// 0 means n²−1.
	MaxSize int

	// All, in Exhaustive mode, collects every defining set of the first
	// successful size instead of only the first one found.
	All bool

	// Start, when non-nil, seeds the search: FindCriticalSet removes
	// cells from it instead of from the full assignment, and Exhaustive
	// mode enumerates subsets of its assigned cells only (e.g. the
	// cells of an already-known critical set). It must itself be a
	// defining set of the target.
	Start *square.PartialSquare
}

// DefaultOptions returns Options with a background context, Exhaustive
// mode, lexicographic order, sequential probes, and no budget.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Mode:    Exhaustive,
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

// WithMode selects the sub-critical search strategy.
func WithMode(m Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithSeed sets the shuffle seed for randomized traversal orders.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWorkers sets the parallel probe width. Values < 1 are ignored.
func WithWorkers(workers int) Option {
	return func(o *Options) {
		if workers >= 1 {
			o.Workers = workers
		}
	}
}

// WithOracleBudget caps completion-solver invocations; 0 disables the cap.
func WithOracleBudget(calls int64) Option {
	return func(o *Options) {
		if calls >= 0 {
			o.OracleBudget = calls
		}
	}
}

// WithMaxSize bounds subset sizes in Exhaustive mode.
func WithMaxSize(size int) Option {
	return func(o *Options) {
		if size >= 0 {
			o.MaxSize = size
		}
	}
}

// WithAll collects every defining set of the first successful size in
// Exhaustive mode.
func WithAll() Option {
	return func(o *Options) { o.All = true }
}

// WithStart seeds the search with a known defining set of the target.
func WithStart(p *square.PartialSquare) Option {
	return func(o *Options) { o.Start = p }
}

// Result reports the defining sets found and how the search ended.
type Result struct {
	// Sets holds the defining sets found. FindCriticalSet returns
	// exactly one; FindSubCriticalSets returns one or, under WithAll,
	// all sets of the first successful size.
	Sets []*DefiningSet

	// OracleCalls counts completion-solver invocations.
	OracleCalls int64

	// Exhausted is true when the oracle budget or context ran out;
	// any sets present are defining but minimality is not guaranteed.
	Exhausted bool
}
