// Package latsq is a combinatorial search engine for Latin squares:
// completion solving, critical / sub-critical (defining) set discovery,
// and mutually orthogonal Latin square (MOLS) search over catalogued
// main-class representatives.
//
// 🚀 What is latsq?
//
//	A deterministic, context-aware library that brings together:
//		• Square model: validated Latin squares, partial assignments,
//		  row/column/symbol relabelings and the six conjugates
//		• Completion solver: candidate-bitset propagation + MRV
//		  backtracking with an early-exit uniqueness cap
//		• Defining-set search: minimal critical sets via oracle-guided
//		  cell removal, exhaustive or randomized sub-critical search
//		• Orthogonality search: pair-multiset tests, transversal
//		  filters, symmetry-image enumeration, MOLS tuple assembly
//		• Codec: round-trip-exact textual forms for catalogs,
//		  defining sets and MOLS tuples
//
// ✨ Why choose latsq?
//
//   - Reproducible – seeded randomness, fixed tie-breaks, priority-ordered
//     parallel result acceptance
//   - Rock-solid guarantees – sentinel errors, immutable squares, pure
//     functions of explicit inputs
//   - Practical – node and context budgets turn runaway searches into
//     ordinary "exhausted" results instead of hangs
//
// Everything is organized under five subpackages:
//
//	square/ — LatinSquare, PartialSquare, Cell, Permutation & conjugates
//	solver/ — completion counting, uniqueness classification, budgets
//	defset/ — critical and sub-critical defining-set search
//	mols/   — orthogonality tests, transversals, mate & tuple search
//	codec/  — boundary encoding/decoding and reconstruction
//
// Quick ASCII example (order 4, cyclic square and a defining set):
//
//	1 2 3 4      1 2 3 4
//	2 3 4 1      2 3 . .
//	3 4 1 2  →   3 . . .
//	4 1 2 3      4 . . .
//
//	the right-hand assignment completes uniquely to the left-hand square.
//
// Dive into each package's doc.go for contracts, complexity notes and
// worked examples.
//
//	go get github.com/quasigroup/latsq
package latsq
