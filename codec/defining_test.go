package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quasigroup/latsq/codec"
	"github.com/quasigroup/latsq/defset"
	"github.com/quasigroup/latsq/solver"
	"github.com/quasigroup/latsq/square"
)

// border masks the first row and first column of sq. For the cyclic
// order-4 square this admits four completions; adding (1,1) pins one.
func border(t *testing.T, sq *square.Square, pin bool) *square.PartialSquare {
	t.Helper()

	n := sq.N()
	cells := make([]square.Cell, 0, 2*n)
	for j := 0; j < n; j++ {
		cells = append(cells, square.Cell{Row: 0, Col: j})
	}
	for i := 1; i < n; i++ {
		cells = append(cells, square.Cell{Row: i, Col: 0})
	}
	if pin {
		cells = append(cells, square.Cell{Row: 1, Col: 1})
	}
	p, err := sq.Mask(cells)
	require.NoError(t, err)

	return p
}

func TestEncodeDefiningSet_WithTarget(t *testing.T) {
	L := cyclic(t, 3)
	p, err := L.Mask([]square.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 1}})
	require.NoError(t, err)

	block := codec.EncodeDefiningSet(L, p)
	assert.Equal(t, "123231312\n0 0 1\n1 1 3", block)
}

func TestEncodeDefiningSet_OrderOnly(t *testing.T) {
	p := square.NewPartial(4)
	require.NoError(t, p.Set(2, 3, 1))

	block := codec.EncodeDefiningSet(nil, p)
	assert.Equal(t, "order 4\n2 3 1", block)
}

func TestDecodeDefiningSet_RoundTrip(t *testing.T) {
	L := cyclic(t, 4)
	p := border(t, L, true)

	target, cells, err := codec.DecodeDefiningSet(codec.EncodeDefiningSet(L, p))
	require.NoError(t, err)
	require.NotNil(t, target)
	assert.True(t, target.Equal(L))
	assert.Equal(t, p.Filled(), cells.Filled())
	assert.True(t, cells.Agrees(L))
}

func TestDecodeDefiningSet_OrderHeader(t *testing.T) {
	target, cells, err := codec.DecodeDefiningSet("order 4\n0 0 1\n3 3 3")
	require.NoError(t, err)
	assert.Nil(t, target)
	assert.Equal(t, 4, cells.N())
	assert.Equal(t, 1, cells.At(0, 0))
	assert.Equal(t, 3, cells.At(3, 3))
}

func TestDecodeDefiningSet_Errors(t *testing.T) {
	_, _, err := codec.DecodeDefiningSet("")
	assert.ErrorIs(t, err, codec.ErrParse)

	_, _, err = codec.DecodeDefiningSet("order x\n0 0 1")
	assert.ErrorIs(t, err, codec.ErrParse)

	_, _, err = codec.DecodeDefiningSet("order 20\n0 0 1")
	assert.ErrorIs(t, err, codec.ErrParse)

	_, _, err = codec.DecodeDefiningSet("order 4\n0 0")
	assert.ErrorIs(t, err, codec.ErrParse)

	_, _, err = codec.DecodeDefiningSet("order 4\n0 0 one")
	assert.ErrorIs(t, err, codec.ErrParse)

	// Out-of-range cell and conflicting assignments.
	_, _, err = codec.DecodeDefiningSet("order 4\n4 0 1")
	assert.ErrorIs(t, err, square.ErrCellRange)

	_, _, err = codec.DecodeDefiningSet("order 4\n0 0 1\n0 3 1")
	assert.ErrorIs(t, err, square.ErrConstraintViolation)
}

func TestReconstruct_Unique(t *testing.T) {
	L := cyclic(t, 4)

	sq, err := codec.Reconstruct(border(t, L, true))
	require.NoError(t, err)
	assert.True(t, sq.Equal(L))
}

func TestReconstruct_Ambiguous(t *testing.T) {
	_, err := codec.Reconstruct(border(t, cyclic(t, 4), false))
	assert.ErrorIs(t, err, codec.ErrAmbiguousCompletion)
}

func TestReconstruct_NoCompletion(t *testing.T) {
	// Pairwise consistent but uncompletable: the two 1s force a third at
	// (2,2), which already holds a 2.
	p := square.NewPartial(3)
	require.NoError(t, p.Set(0, 0, 1))
	require.NoError(t, p.Set(1, 1, 1))
	require.NoError(t, p.Set(2, 2, 2))

	_, err := codec.Reconstruct(p)
	assert.ErrorIs(t, err, codec.ErrInvalidDefiningSet)
}

func TestReconstruct_Exhausted(t *testing.T) {
	_, err := codec.Reconstruct(square.NewPartial(5), solver.WithNodeBudget(1))
	assert.ErrorIs(t, err, codec.ErrSearchExhausted)
}

func TestDefiningSet_PublishThenReconstruct(t *testing.T) {
	// The full pipeline: find a critical set, publish it as text, decode
	// it elsewhere, and rebuild the exact target square.
	L := cyclic(t, 4)

	res, err := defset.FindCriticalSet(L)
	require.NoError(t, err)
	ds := res.Sets[0]

	block := codec.EncodeDefiningSet(nil, ds.Cells)
	target, cells, err := codec.DecodeDefiningSet(block)
	require.NoError(t, err)
	require.Nil(t, target)

	rebuilt, err := codec.Reconstruct(cells)
	require.NoError(t, err)
	assert.True(t, rebuilt.Equal(L))
}
