package defset

import "github.com/quasigroup/latsq/square"

// knownMinSizes[n] is the size of the smallest known critical set of an
// order-n square; Exhaustive mode starts its size sweep there instead of
// at zero. Orders beyond the table fall back to n.
var knownMinSizes = [...]int{0, 0, 1, 2, 4, 6, 9, 12, 16}

func minSizeBound(n int) int {
	if n < len(knownMinSizes) {
		return knownMinSizes[n]
	}

	return n
}

// FindSubCriticalSets searches for defining sets of sq that need not be
// globally minimum-size.
//
// Exhaustive mode sweeps subset sizes m upward from the known lower
// bound, enumerating m-subsets of the candidate cells (all n² cells, or
// the assigned cells of WithStart — e.g. an already-known critical set)
// in lexicographic order, and returns the defining sets of the first
// size that produces any: one set by default, all of them under WithAll.
//
// Randomized mode runs the greedy removal pass of FindCriticalSet in a
// seeded shuffle order and returns the first defining set encountered,
// trading completeness for latency.
//
// A spent oracle budget or cancelled context flags Result.Exhausted and
// returns whatever was proven so far; this is an ordinary outcome, not
// an error.
func FindSubCriticalSets(sq *square.Square, opts ...Option) (*Result, error) {
	// 1. Guard the target.
	if err := validateTarget(sq); err != nil {
		return nil, err
	}

	// 2. Apply options.
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if dopts.Mode == Randomized {
		return randomizedSearch(sq, &dopts)
	}

	return exhaustiveSearch(sq, &dopts)
}

// randomizedSearch is the seeded-order variant of the greedy removal pass.
func randomizedSearch(sq *square.Square, opts *Options) (*Result, error) {
	orc := &oracle{opts: opts}

	base, err := startAssignment(sq, opts, orc)
	if err != nil {
		return nil, err
	}

	order := base.Cells()
	shuffleCells(order, rngFromSeed(opts.Seed))

	res := &Result{}
	removalPass(base, sq, order, opts, orc, res)

	res.OracleCalls = orc.calls.Load()
	res.Sets = []*DefiningSet{{Target: sq, Cells: base}}

	return res, nil
}

// exhaustiveSearch sweeps subset sizes upward, testing every candidate
// subset against the uniqueness oracle.
func exhaustiveSearch(sq *square.Square, opts *Options) (*Result, error) {
	orc := &oracle{opts: opts}
	n := sq.N()
	res := &Result{}

	// 1. Candidate cell universe: WithStart's cells or the whole square.
	var universe []square.Cell
	if opts.Start != nil {
		base, err := startAssignment(sq, opts, orc)
		if err != nil {
			return nil, err
		}
		universe = base.Cells()
	} else {
		universe = sq.ToPartial().Cells()
	}

	// 2. Size sweep bounds.
	low := minSizeBound(n)
	high := n*n - 1
	if opts.MaxSize > 0 && opts.MaxSize < high {
		high = opts.MaxSize
	}
	if high > len(universe) {
		high = len(universe)
	}

	// Order 1: the empty assignment is the trivial defining set.
	if n == 1 {
		res.Sets = []*DefiningSet{{Target: sq, Cells: square.NewPartial(1)}}
		res.OracleCalls = orc.calls.Load()

		return res, nil
	}

	// 3. Lexicographic subset enumeration per size.
	subset := make([]square.Cell, 0, high)
	for m := low; m <= high; m++ {
		forEachCombination(len(universe), m, func(pick []int) bool {
			subset = subset[:0]
			for _, idx := range pick {
				subset = append(subset, universe[idx])
			}

			partial, err := sq.Mask(subset)
			if err != nil {
				return true
			}

			ok, exhausted := orc.uniquelyCompletes(partial, sq)
			if exhausted {
				res.Exhausted = true

				return true
			}
			if ok {
				res.Sets = append(res.Sets, &DefiningSet{Target: sq, Cells: partial})

				return !opts.All
			}

			return false
		})

		if len(res.Sets) > 0 || res.Exhausted {
			break
		}
	}

	res.OracleCalls = orc.calls.Load()

	return res, nil
}

// forEachCombination visits the m-element index subsets of [0, n) in
// lexicographic order. fn returning true stops the enumeration; the
// return value reports whether it was stopped early.
func forEachCombination(n, m int, fn func(pick []int) bool) bool {
	if m < 0 || m > n {
		return false
	}
	if m == 0 {
		return fn(nil)
	}

	pick := make([]int, m)
	for i := range pick {
		pick[i] = i
	}

	for {
		if fn(pick) {
			return true
		}

		// Advance to the next combination.
		i := m - 1
		for i >= 0 && pick[i] == n-m+i {
			i--
		}
		if i < 0 {
			return false
		}
		pick[i]++
		for j := i + 1; j < m; j++ {
			pick[j] = pick[j-1] + 1
		}
	}
}
