package defset

import (
	"math/rand"
	"sync/atomic"

	"github.com/quasigroup/latsq/internal/parallel"
	"github.com/quasigroup/latsq/solver"
	"github.com/quasigroup/latsq/square"
)

// defaultSeed is the fixed seed used by Randomized mode when the caller
// passes seed 0, keeping defaults reproducible.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// oracle wraps the completion solver with a shared, budget-counted
// uniqueness query. Safe for concurrent probes.
type oracle struct {
	opts  *Options
	calls atomic.Int64
}

// uniquelyCompletes reports whether p completes uniquely to target.
// exhausted is true when the budget or context ran out before the
// question was settled; removable is then false.
func (o *oracle) uniquelyCompletes(p *square.PartialSquare, target *square.Square) (removable, exhausted bool) {
	if n := o.calls.Add(1); o.opts.OracleBudget > 0 && n > o.opts.OracleBudget {
		return false, true
	}

	outcome, completion, err := solver.Classify(p, solver.WithContext(o.opts.Ctx))
	if err != nil {
		return false, true
	}

	switch outcome {
	case solver.Unique:
		return completion.Equal(target), false
	case solver.Exhausted:
		return false, true
	default:
		return false, false
	}
}

// validateTarget enforces the InvalidSquare guard shared by all searches.
func validateTarget(sq *square.Square) error {
	if sq == nil {
		return ErrNilSquare
	}
	if err := sq.Validate(); err != nil {
		return ErrInvalidSquare
	}

	return nil
}

// FindCriticalSet produces one minimal defining set (critical set) of sq.
//
// Cells are removed greedily from the full assignment (or WithStart) in
// lexicographic order — or a seeded shuffle under WithSeed — keeping a
// removal only when the completion solver confirms the remainder still
// forces sq uniquely. Removability is monotone in the assignment, so a
// single pass terminates with a set from which no cell can be dropped:
// a critical set by construction. Different removal orders may reach
// different (equally minimal) sets.
//
// With WithWorkers(k), up to k candidate removals are probed against the
// same base assignment concurrently; only the lowest-indexed confirmed
// removal is applied, and later candidates of the batch are re-probed
// against the shrunken base, so output matches the sequential order.
//
// An exceeded oracle budget stops the pass early: the returned set is
// still defining but possibly not minimal, and Result.Exhausted is set.
func FindCriticalSet(sq *square.Square, opts ...Option) (*Result, error) {
	// 1. Guard the target.
	if err := validateTarget(sq); err != nil {
		return nil, err
	}

	// 2. Apply options.
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	orc := &oracle{opts: &dopts}

	// 3. Seed the base assignment.
	base, err := startAssignment(sq, &dopts, orc)
	if err != nil {
		return nil, err
	}

	// 4. Fix the removal order.
	order := base.Cells()
	if dopts.Seed != 0 {
		shuffleCells(order, rngFromSeed(dopts.Seed))
	}

	// 5. Greedy removal pass.
	res := &Result{}
	removalPass(base, sq, order, &dopts, orc, res)

	res.OracleCalls = orc.calls.Load()
	res.Sets = []*DefiningSet{{Target: sq, Cells: base}}

	return res, nil
}

// startAssignment returns the mutable base assignment: a clone of
// WithStart (verified to define sq) or the full assignment of sq.
func startAssignment(sq *square.Square, opts *Options, orc *oracle) (*square.PartialSquare, error) {
	if opts.Start == nil {
		return sq.ToPartial(), nil
	}

	if opts.Start.N() != sq.N() || !opts.Start.Agrees(sq) {
		return nil, ErrNotDefiningSet
	}
	ok, exhausted := orc.uniquelyCompletes(opts.Start, sq)
	if !ok || exhausted {
		return nil, ErrNotDefiningSet
	}

	return opts.Start.Clone(), nil
}

// removalPass drops removable cells from base in the given order,
// mutating base in place. Probes run in batches of Workers; confirmed
// removals are accepted in batch order (lowest cell first), never
// first-to-finish.
func removalPass(base *square.PartialSquare, sq *square.Square, order []square.Cell,
	opts *Options, orc *oracle, res *Result) {
	pending := order

	for len(pending) > 0 {
		k := opts.Workers
		if k > len(pending) {
			k = len(pending)
		}
		chunk := pending[:k]

		removable := make([]bool, k)
		exhausted := make([]bool, k)

		err := parallel.ForEach(opts.Ctx, opts.Workers, k, func(i int) {
			trial := base.Clone()
			_ = trial.Unset(chunk[i].Row, chunk[i].Col)
			removable[i], exhausted[i] = orc.uniquelyCompletes(trial, sq)
		})
		if err != nil {
			res.Exhausted = true

			return
		}

		// Accept the lowest-indexed confirmed removal of this batch.
		accepted := -1
		for i := 0; i < k; i++ {
			if exhausted[i] {
				res.Exhausted = true

				return
			}
			if removable[i] {
				accepted = i

				break
			}
		}

		if accepted < 0 {
			// Every probe failed against the current base; monotonicity
			// makes those cells permanently non-removable.
			pending = pending[k:]

			continue
		}

		_ = base.Unset(chunk[accepted].Row, chunk[accepted].Col)
		// Cells before the accepted one failed for good; cells after it
		// were probed against a stale base and must be retried.
		pending = pending[accepted+1:]
	}
}

// shuffleCells applies a seeded Fisher–Yates shuffle in place.
func shuffleCells(cells []square.Cell, rng *rand.Rand) {
	rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})
}
