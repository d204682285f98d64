// Package mols searches for mutually orthogonal Latin squares (MOLS)
// among catalogued main-class representatives.
//
// Two order-n squares A and B are orthogonal when the n² symbol pairs
// (A[cell], B[cell]) are pairwise distinct. The package provides:
//
//   - Orthogonal / OrthogonalGrids: the direct pair-multiset test,
//     O(n²) time, O(n²) scratch.
//   - Transversals: transversal counting by column/symbol-mask
//     backtracking. A square with fewer than n transversals has no
//     orthogonal mate, which prunes hopeless class pairs before any
//     image enumeration. The count is a main-class invariant, so one
//     check per representative covers all of its symmetry images.
//   - FindMate(a, b): enumerates symmetry images of b — each of the six
//     conjugates combined with every row and column permutation — and
//     tests each image against a. Symbol permutations are pruned
//     entirely: relabeling the symbols of either square never changes
//     pair distinctness, which cuts the image space by a factor of n!.
//     Returns the first witnessing image with its transform, or all of
//     them under WithAll; "no orthogonal mate" is an ordinary result.
//   - Mates(base): constraint-guided generation of squares orthogonal
//     to every member of the base tuple, extending the completion
//     solver's propagation scheme with used-pair masks.
//     Generated mates have first row 1..n: each symbol-relabeling class
//     of mates has exactly one such representative.
//   - Catalog / FindPairs / Extend: drive a class pair (i, j), assemble
//     Tuple values, and grow existing tuples with further mates.
//
// Parallelism: images are partitioned over a worker pool per class
// pair; when only the first witness is requested, a hit cancels sibling
// workers cooperatively. An image budget (WithImageBudget) turns
// runaway enumerations into Exhausted results.
//
// Errors:
//
//   - ErrNilSquare       nil square input
//   - ErrInvalidSquare   input fails validation
//   - ErrOrderMismatch   squares of different orders
//   - ErrNotOrthogonal   NewTuple given a non-orthogonal pair
//   - ErrEmptyCatalog    catalog with no representatives
//   - ErrClassIndex      class index out of range
package mols
