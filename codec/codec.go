package codec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/quasigroup/latsq/square"
)

// Sentinel errors for boundary decoding and reconstruction.
var (
	// ErrParse indicates malformed boundary text.
	ErrParse = errors.New("codec: malformed input")
	// ErrAmbiguousCompletion indicates a partial assignment with at
	// least two completions where exactly one was required.
	ErrAmbiguousCompletion = errors.New("codec: assignment has multiple completions")
	// ErrInvalidDefiningSet indicates a partial assignment with no
	// completion where exactly one was required.
	ErrInvalidDefiningSet = errors.New("codec: assignment has no completion")
	// ErrSearchExhausted indicates the reconstruction budget ran out
	// before uniqueness was decided.
	ErrSearchExhausted = errors.New("codec: search budget exhausted")
)

// orderHeader prefixes a defining-set header that carries only the order.
const orderHeader = "order "

// symbolChar encodes symbol s in [1, 16] as one character.
func symbolChar(s int) byte {
	if s <= 9 {
		return byte('0' + s)
	}

	return byte('a' + s - 10)
}

// charSymbol decodes one cell character; 0 with ok=false for bad input.
func charSymbol(c byte) (int, bool) {
	switch {
	case c >= '1' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'g':
		return int(c-'a') + 10, true
	default:
		return 0, false
	}
}

// isqrt returns the integer square root of v, or -1 when v is not a
// perfect square.
func isqrt(v int) int {
	for i := 0; i*i <= v; i++ {
		if i*i == v {
			return i
		}
	}

	return -1
}

// EncodeSquare renders sq as its catalog line: n² row-major characters.
func EncodeSquare(sq *square.Square) string {
	n := sq.N()
	var b strings.Builder
	b.Grow(n * n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			b.WriteByte(symbolChar(sq.At(i, j)))
		}
	}

	return b.String()
}

// DecodeSquare parses a catalog line into a validated Square.
//
// Errors: ErrParse for a non-square length or bad character; the square
// package's sentinels (e.g. ErrConstraintViolation) for a well-formed
// grid that is not a Latin square.
func DecodeSquare(line string) (*square.Square, error) {
	line = strings.TrimSpace(line)

	n := isqrt(len(line))
	if n < 1 || n > square.MaxOrder {
		return nil, fmt.Errorf("%w: length %d is not a supported square size", ErrParse, len(line))
	}

	cells := make([]int, n*n)
	for i := 0; i < len(line); i++ {
		s, ok := charSymbol(line[i])
		if !ok || s > n {
			return nil, fmt.Errorf("%w: character %q at index %d", ErrParse, line[i], i)
		}
		cells[i] = s
	}

	return square.New(n, cells)
}

// EncodePartial renders p as a partial line, '.' marking empty cells.
func EncodePartial(p *square.PartialSquare) string {
	n := p.N()
	var b strings.Builder
	b.Grow(n * n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if s := p.At(i, j); s != 0 {
				b.WriteByte(symbolChar(s))
			} else {
				b.WriteByte('.')
			}
		}
	}

	return b.String()
}

// DecodePartial parses a partial line into a consistency-checked
// PartialSquare.
//
// Errors: ErrParse for a bad length or character;
// square.ErrConstraintViolation when two assigned cells conflict.
func DecodePartial(line string) (*square.PartialSquare, error) {
	line = strings.TrimSpace(line)

	n := isqrt(len(line))
	if n < 1 || n > square.MaxOrder {
		return nil, fmt.Errorf("%w: length %d is not a supported square size", ErrParse, len(line))
	}

	p := square.NewPartial(n)
	for i := 0; i < len(line); i++ {
		if line[i] == '.' {
			continue
		}
		s, ok := charSymbol(line[i])
		if !ok || s > n {
			return nil, fmt.Errorf("%w: character %q at index %d", ErrParse, line[i], i)
		}
		if err := p.Set(i/n, i%n, s); err != nil {
			return nil, err
		}
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}
