package codec

import (
	"fmt"
	"strings"

	"github.com/quasigroup/latsq/mols"
)

// tupleDelimiter separates member squares on a MOLS output line.
const tupleDelimiter = " "

// EncodeTuple renders a MOLS tuple as one line: member squares in
// catalog form, joined by the tuple delimiter.
func EncodeTuple(t mols.Tuple) string {
	parts := make([]string, len(t))
	for i, sq := range t {
		parts[i] = EncodeSquare(sq)
	}

	return strings.Join(parts, tupleDelimiter)
}

// DecodeTuple parses a MOLS line and re-proves pairwise orthogonality.
//
// Errors: ErrParse for an empty line or malformed member;
// mols.ErrNotOrthogonal when the members are not mutually orthogonal.
func DecodeTuple(line string) (mols.Tuple, error) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty tuple line", ErrParse)
	}

	tuple := make(mols.Tuple, 0, len(fields))
	for i, f := range fields {
		sq, err := DecodeSquare(f)
		if err != nil {
			return nil, fmt.Errorf("tuple member %d: %w", i, err)
		}
		tuple = append(tuple, sq)
	}

	return mols.NewTuple(tuple...)
}
