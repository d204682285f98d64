// Package square defines the Latin-square data model shared by the
// latsq search packages: immutable full squares, mutable partial
// assignments, cells, permutations, and the structure-preserving
// relabeling operations (row/column/symbol permutation, the six
// conjugates, reduced-form normalization).
//
// Conventions:
//
//   - Order n is in [1, MaxOrder]. Symbols are integers in [1, n];
//     a PartialSquare stores 0 for an empty cell.
//   - Cells are (row, col) pairs with both coordinates in [0, n),
//     enumerated row-major wherever a deterministic order is needed.
//   - A Square is validated on construction and never mutated; every
//     relabeling operation returns a fresh Square.
//   - A Permutation maps positions of [0, n); applied to symbols it
//     acts through p[s-1]+1 so symbol ranges stay 1-based.
//
// Complexity:
//
//   - Validation: O(n²) with O(n) scratch.
//   - Permutations and conjugates: O(n²).
//
// Errors:
//
//   - ErrOrderRange            order outside [1, MaxOrder]
//   - ErrConstraintViolation   a row or column is not a permutation of [1, n]
//   - ErrCellRange             cell coordinate outside [0, n)
//   - ErrSymbolRange           symbol outside [1, n]
//   - ErrBadPermutation        slice is not a permutation of [0, n)
//   - ErrBadAxes               conjugate axes are not a permutation of {0,1,2}
package square
