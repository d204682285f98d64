// Package defset searches for defining sets of a Latin square: partial
// assignments that force a unique completion. A critical set is a
// minimal defining set (no assigned cell can be dropped); a sub-critical
// set is a defining set found by a bounded or randomized search that is
// not guaranteed globally minimum-size.
//
// Key operations:
//
//   - FindCriticalSet(sq, opts...): greedy oracle-guided cell removal.
//     Starting from the full assignment (or a caller-supplied defining
//     set), cells are dropped one at a time whenever the completion
//     solver confirms uniqueness is preserved. Removability is monotone
//     (a removal that breaks uniqueness now also breaks it for every
//     smaller assignment), so one pass over the cells yields a set that
//     is minimal by construction.
//   - FindSubCriticalSets(sq, opts...): Exhaustive mode enumerates cell
//     subsets in lexicographic order by increasing size, starting from a
//     known lower bound on critical-set size, and returns the first size
//     class containing defining sets; Randomized mode runs the greedy
//     removal pass in a seeded shuffle order and returns the first
//     defining set encountered, trading completeness for latency.
//   - Verify(ds, opts...): re-proves uniqueness and minimality.
//
// Determinism: the default removal order is lexicographic (row-major);
// WithSeed switches to a reproducible shuffled order. Parallel removal
// probes (WithWorkers) evaluate candidate cells concurrently but accept
// confirmed removals in lowest-cell-index order, never first-to-finish,
// so output is identical at any worker count.
//
// Budgets: WithOracleBudget caps completion-solver invocations; when it
// runs out the result is flagged Exhausted (an ordinary outcome), and
// any set returned alongside is defining but possibly not minimal.
//
// Errors:
//
//   - ErrNilSquare        nil target square
//   - ErrInvalidSquare    target fails validation
//   - ErrNotDefiningSet   WithStart assignment does not define the target
package defset
