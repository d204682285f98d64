// Package solver implements the Latin-square completion engine: given a
// partial assignment it produces completions (full squares consistent
// with the assignment) up to a caller-specified cap, which is all that
// uniqueness classification needs.
//
// Algorithm:
//
//  1. Every empty cell carries a bitmask of candidate symbols not yet
//     excluded by its row and column; assignments propagate eliminations
//     recursively, committing naked singles without branching.
//  2. Hidden singles (a symbol possible in exactly one cell of a row or
//     column) are committed between branch steps.
//  3. Branching selects the unfilled cell with the fewest candidates
//     (minimum remaining values), ties broken by row-major cell order,
//     and tries its candidate symbols in ascending order.
//  4. An empty candidate set anywhere is a contradiction and backtracks.
//  5. Search stops as soon as the completion cap is reached; the default
//     cap of 2 distinguishes zero / one / many completions.
//
// Budgets: a context and an optional node budget bound the search; when
// either runs out before the cap is proven, the result is flagged
// Exhausted rather than looping forever. With WithWorkers(k) the root
// cell's candidate branches run on a worker pool; reaching the cap
// cancels sibling branches cooperatively, and branch results are merged
// in candidate-symbol order so classification stays deterministic.
//
// Complexity: worst-case exponential in the number of unfilled cells;
// propagation plus the MRV heuristic keeps practical orders tractable.
//
// Classification (Classify):
//
//   - Contradiction — no completion exists
//   - Unique        — exactly one completion (the assignment is a defining set)
//   - Multiple      — at least two completions
//   - Exhausted     — budget ran out before any of the above was proven
package solver
