// Package codec is the textual boundary of latsq: it reads and writes
// the compact forms exchanged with catalog files, defining-set files,
// and MOLS output, and reconstructs squares from defining sets via the
// completion solver.
//
// Formats (symbols are 1-based; one character per cell, row-major):
//
//   - Square line: n² characters, '1'…'9' then 'a'…'g' for symbols
//     10…16. Example (order 4): "1234214334124321".
//   - Partial line: as above with '.' for an empty cell.
//   - Defining-set block: a header line — the target square's line, or
//     "order N" when only the order is known — followed by one
//     "row col symbol" line per assigned cell in row-major order.
//   - MOLS tuple line: member square lines joined by single spaces.
//
// Encoding is deterministic and round-trip exact: for every defining
// set D of a square S, reconstructing the decoding of the encoding of D
// yields S again.
//
// Errors:
//
//   - ErrParse                 malformed text (bad length, character, or field)
//   - ErrAmbiguousCompletion   Reconstruct found at least two completions
//   - ErrInvalidDefiningSet    Reconstruct found no completion
//   - ErrSearchExhausted       Reconstruct ran out of budget before deciding
//
// Validation failures of decoded squares surface as the square package's
// sentinel errors, unchanged.
package codec
