package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quasigroup/latsq/solver"
	"github.com/quasigroup/latsq/square"
)

// EncodeDefiningSet renders a defining-set block: a header line
// identifying the target (its catalog line, or "order N" when target is
// nil) followed by one "row col symbol" line per assigned cell in
// row-major order. Deterministic and round-trip exact.
func EncodeDefiningSet(target *square.Square, cells *square.PartialSquare) string {
	var b strings.Builder

	if target != nil {
		b.WriteString(EncodeSquare(target))
	} else {
		b.WriteString(orderHeader)
		b.WriteString(strconv.Itoa(cells.N()))
	}

	for _, c := range cells.Cells() {
		b.WriteByte('\n')
		b.WriteString(strconv.Itoa(c.Row))
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(c.Col))
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(cells.At(c.Row, c.Col)))
	}

	return b.String()
}

// DecodeDefiningSet parses a defining-set block. The returned target is
// nil when the header carried only an order. The assignment is
// consistency-checked but not proven defining; pass it to Reconstruct
// for the uniqueness proof.
//
// Errors: ErrParse for malformed headers or triple lines; the square
// package's sentinels for out-of-range cells or conflicting assignments.
func DecodeDefiningSet(text string) (*square.Square, *square.PartialSquare, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, nil, fmt.Errorf("%w: missing header line", ErrParse)
	}

	// 1. Header: target square line or "order N".
	var (
		target *square.Square
		n      int
	)
	header := strings.TrimSpace(lines[0])
	if rest, ok := strings.CutPrefix(header, orderHeader); ok {
		v, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil || v < 1 || v > square.MaxOrder {
			return nil, nil, fmt.Errorf("%w: header order %q", ErrParse, rest)
		}
		n = v
	} else {
		sq, err := DecodeSquare(header)
		if err != nil {
			return nil, nil, err
		}
		target = sq
		n = sq.N()
	}

	// 2. One "row col symbol" triple per line.
	p := square.NewPartial(n)
	for i, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, nil, fmt.Errorf("%w: cell line %d: want \"row col symbol\"", ErrParse, i+1)
		}

		var vals [3]int
		for k, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: cell line %d: %q", ErrParse, i+1, f)
			}
			vals[k] = v
		}

		if err := p.Set(vals[0], vals[1], vals[2]); err != nil {
			return nil, nil, err
		}
	}

	if err := p.Validate(); err != nil {
		return nil, nil, err
	}

	return target, p, nil
}

// Reconstruct completes p into the unique square it defines, running the
// completion solver with a cap of two.
//
// Errors: ErrInvalidDefiningSet when no completion exists,
// ErrAmbiguousCompletion when at least two do, ErrSearchExhausted when a
// caller-supplied budget or context ran out first.
func Reconstruct(p *square.PartialSquare, opts ...solver.Option) (*square.Square, error) {
	outcome, completion, err := solver.Classify(p, opts...)
	if err != nil {
		return nil, err
	}

	switch outcome {
	case solver.Unique:
		return completion, nil
	case solver.Multiple:
		return nil, ErrAmbiguousCompletion
	case solver.Exhausted:
		return nil, ErrSearchExhausted
	default:
		return nil, ErrInvalidDefiningSet
	}
}
