package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quasigroup/latsq/codec"
	"github.com/quasigroup/latsq/square"
)

// cyclic returns the cyclic order-n square L[r][c] = ((r+c) mod n) + 1.
func cyclic(t *testing.T, n int) *square.Square {
	t.Helper()

	cells := make([]int, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cells[r*n+c] = (r+c)%n + 1
		}
	}
	sq, err := square.New(n, cells)
	require.NoError(t, err)

	return sq
}

func TestEncodeSquare(t *testing.T) {
	assert.Equal(t, "123231312", codec.EncodeSquare(cyclic(t, 3)))
	assert.Equal(t, "1", codec.EncodeSquare(cyclic(t, 1)))
}

func TestDecodeSquare_RoundTrip(t *testing.T) {
	for _, n := range []int{1, 3, 4, 7, 10, 12} {
		sq := cyclic(t, n)
		back, err := codec.DecodeSquare(codec.EncodeSquare(sq))
		require.NoError(t, err, "order %d", n)
		assert.True(t, back.Equal(sq), "order %d", n)
	}
}

func TestDecodeSquare_LetterSymbols(t *testing.T) {
	// Orders past nine spill into 'a'..'g'.
	sq := cyclic(t, 12)
	line := codec.EncodeSquare(sq)
	assert.Contains(t, line, "a")
	assert.Contains(t, line, "c")

	back, err := codec.DecodeSquare(line)
	require.NoError(t, err)
	assert.Equal(t, 12, back.At(0, 11))
}

func TestDecodeSquare_TrimsWhitespace(t *testing.T) {
	sq, err := codec.DecodeSquare("  123231312\n")
	require.NoError(t, err)
	assert.True(t, sq.Equal(cyclic(t, 3)))
}

func TestDecodeSquare_ParseErrors(t *testing.T) {
	// Length not a perfect square.
	_, err := codec.DecodeSquare("12345")
	assert.ErrorIs(t, err, codec.ErrParse)

	// Empty line.
	_, err = codec.DecodeSquare("")
	assert.ErrorIs(t, err, codec.ErrParse)

	// Bad character.
	_, err = codec.DecodeSquare("12x231312")
	assert.ErrorIs(t, err, codec.ErrParse)

	// Symbol out of range for the order.
	_, err = codec.DecodeSquare("1234")
	assert.ErrorIs(t, err, codec.ErrParse)
}

func TestDecodeSquare_NotLatin(t *testing.T) {
	_, err := codec.DecodeSquare("1122")
	assert.ErrorIs(t, err, square.ErrConstraintViolation)
}

func TestEncodePartial(t *testing.T) {
	p := square.NewPartial(3)
	require.NoError(t, p.Set(0, 0, 1))
	require.NoError(t, p.Set(2, 1, 3))

	assert.Equal(t, "1......3.", codec.EncodePartial(p))
}

func TestDecodePartial_RoundTrip(t *testing.T) {
	p := square.NewPartial(4)
	require.NoError(t, p.Set(0, 0, 1))
	require.NoError(t, p.Set(1, 2, 4))
	require.NoError(t, p.Set(3, 3, 2))

	back, err := codec.DecodePartial(codec.EncodePartial(p))
	require.NoError(t, err)
	assert.Equal(t, p.Filled(), back.Filled())
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.Equal(t, p.At(i, j), back.At(i, j))
		}
	}
}

func TestDecodePartial_AllEmpty(t *testing.T) {
	p, err := codec.DecodePartial("....")
	require.NoError(t, err)
	assert.Equal(t, 2, p.N())
	assert.True(t, p.Empty())
}

func TestDecodePartial_Errors(t *testing.T) {
	_, err := codec.DecodePartial("1.3")
	assert.ErrorIs(t, err, codec.ErrParse)

	_, err = codec.DecodePartial("1.x.")
	assert.ErrorIs(t, err, codec.ErrParse)

	// Conflicting assignments in one row.
	_, err = codec.DecodePartial("11..")
	assert.ErrorIs(t, err, square.ErrConstraintViolation)
}
