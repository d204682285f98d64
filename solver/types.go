// Package solver - options, results, and sentinel errors for completion search.
package solver

import (
	"context"
	"errors"

	"github.com/quasigroup/latsq/square"
)

// ErrNilAssignment is returned when a nil partial assignment is passed
// to Complete or Classify.
var ErrNilAssignment = errors.New("solver: assignment is nil")

// DefaultLimit is the default completion cap: two completions suffice
// to classify an assignment as Contradiction / Unique / Multiple.
const DefaultLimit = 2

// Outcome classifies a partial assignment by its completion count.
type Outcome int

const (
	// Contradiction: the assignment admits zero completions.
	Contradiction Outcome = iota
	// Unique: exactly one completion exists.
	Unique
	// Multiple: at least two completions exist.
	Multiple
	// Exhausted: the search budget ran out before a definitive answer.
	Exhausted
)

// String returns the outcome name for diagnostics.
func (o Outcome) String() string {
	switch o {
	case Contradiction:
		return "Contradiction"
	case Unique:
		return "Unique"
	case Multiple:
		return "Multiple"
	case Exhausted:
		return "Exhausted"
	default:
		return "Unknown"
	}
}

// Option configures completion search. Use with Complete / Classify.
type Option func(*Options)

// Options holds the tunable parameters of a completion search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// A cancelled context surfaces as an Exhausted result.
	Ctx context.Context

	// Limit caps the number of completions produced. Values < 1 are
	// treated as DefaultLimit. The engine stops as soon as Limit
	// completions are found and reports "at least Limit", which is
	// sufficient for uniqueness testing.
	Limit int

	// MaxNodes bounds the number of branch assignments explored;
	// 0 means unlimited. Exceeding it yields an Exhausted result.
	MaxNodes int64

	// Workers sets the parallel width for root-level branch fan-out.
	// Values ≤ 1 keep the search fully sequential.
	Workers int
}

// DefaultOptions returns Options with a background context, Limit =
// DefaultLimit, no node budget, and sequential search.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Limit:    DefaultLimit,
		MaxNodes: 0,
		Workers:  1,
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

// WithLimit sets the completion cap. Values < 1 are ignored.
func WithLimit(limit int) Option {
	return func(o *Options) {
		if limit >= 1 {
			o.Limit = limit
		}
	}
}

// WithNodeBudget bounds explored branch assignments; 0 disables the bound.
func WithNodeBudget(nodes int64) Option {
	return func(o *Options) {
		if nodes >= 0 {
			o.MaxNodes = nodes
		}
	}
}

// WithWorkers sets the parallel fan-out width for the root branching cell.
func WithWorkers(workers int) Option {
	return func(o *Options) {
		if workers >= 1 {
			o.Workers = workers
		}
	}
}

// Result reports the completions found and how the search ended.
type Result struct {
	// Completions holds up to Limit full squares consistent with the
	// assignment, in branch order. Sequential runs are fully
	// deterministic; with Workers > 1 the set is deterministic too
	// unless the cap interrupts branches mid-search, in which case
	// which completions a branch banked first is scheduling-dependent
	// (counts, Capped, and classification are not).
	Completions []*square.Square

	// Nodes counts branch assignments explored (propagation excluded).
	Nodes int64

	// Exhausted is true when the context or node budget ran out before
	// the search space was covered or the cap reached.
	Exhausted bool

	// Capped is true when search stopped because Limit was reached;
	// the true completion count is then "at least Limit".
	Capped bool
}
