package solver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quasigroup/latsq/solver"
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

// borderSet masks the first row and first column of sq (2n-1 cells).
// For the cyclic order-4 square this admits four completions.
func borderSet(t *testing.T, sq *square.Square) *square.PartialSquare {
	t.Helper()

	n := sq.N()
	cells := make([]square.Cell, 0, 2*n-1)
	for j := 0; j < n; j++ {
		cells = append(cells, square.Cell{Row: 0, Col: j})
	}
	for i := 1; i < n; i++ {
		cells = append(cells, square.Cell{Row: i, Col: 0})
	}
	p, err := sq.Mask(cells)
	require.NoError(t, err)

	return p
}

func TestComplete_EmptyOrderTwo(t *testing.T) {
	res, err := solver.Complete(square.NewPartial(2), solver.WithLimit(10))
	require.NoError(t, err)

	// The two order-2 squares: 12/21 and 21/12.
	require.Len(t, res.Completions, 2)
	assert.False(t, res.Capped)
	assert.False(t, res.Exhausted)
	for _, sq := range res.Completions {
		assert.NoError(t, sq.Validate())
	}
	assert.False(t, res.Completions[0].Equal(res.Completions[1]))
}

func TestComplete_BorderAdmitsFour(t *testing.T) {
	L := cyclic(t, 4)
	p := borderSet(t, L)

	res, err := solver.Complete(p, solver.WithLimit(10))
	require.NoError(t, err)

	require.Len(t, res.Completions, 4)
	for _, sq := range res.Completions {
		assert.NoError(t, sq.Validate())
		assert.True(t, p.Agrees(sq))
	}
}

func TestComplete_DefaultLimitCaps(t *testing.T) {
	p := borderSet(t, cyclic(t, 4))

	res, err := solver.Complete(p)
	require.NoError(t, err)
	assert.Len(t, res.Completions, 2)
	assert.True(t, res.Capped)
}

func TestComplete_InconsistentInputYieldsNothing(t *testing.T) {
	p := square.NewPartial(3)
	require.NoError(t, p.Set(0, 0, 1))
	require.NoError(t, p.Set(0, 2, 1))

	res, err := solver.Complete(p)
	require.NoError(t, err)
	assert.Empty(t, res.Completions)
}

func TestComplete_NilAssignment(t *testing.T) {
	_, err := solver.Complete(nil)
	assert.ErrorIs(t, err, solver.ErrNilAssignment)
}

func TestClassify_BorderIsAmbiguous(t *testing.T) {
	outcome, sq, err := solver.Classify(borderSet(t, cyclic(t, 4)))
	require.NoError(t, err)
	assert.Equal(t, solver.Multiple, outcome)
	assert.Nil(t, sq)
}

func TestClassify_BorderPlusDiagonalIsUnique(t *testing.T) {
	L := cyclic(t, 4)
	p := borderSet(t, L)
	require.NoError(t, p.Set(1, 1, L.At(1, 1)))

	outcome, sq, err := solver.Classify(p)
	require.NoError(t, err)
	assert.Equal(t, solver.Unique, outcome)
	require.NotNil(t, sq)
	assert.True(t, sq.Equal(L))
}

func TestClassify_FullAssignmentIsItself(t *testing.T) {
	L := cyclic(t, 5)
	outcome, sq, err := solver.Classify(L.ToPartial())
	require.NoError(t, err)
	assert.Equal(t, solver.Unique, outcome)
	assert.True(t, sq.Equal(L))
}

func TestClassify_ConsistentButUncompletable(t *testing.T) {
	// The two 1s force a third at (2,2), which holds a 2: pairwise
	// consistent, yet no completion exists.
	p := square.NewPartial(3)
	require.NoError(t, p.Set(0, 0, 1))
	require.NoError(t, p.Set(1, 1, 1))
	require.NoError(t, p.Set(2, 2, 2))
	require.NoError(t, p.Validate())

	outcome, _, err := solver.Classify(p)
	require.NoError(t, err)
	assert.Equal(t, solver.Contradiction, outcome)
}

func TestClassify_TrivialOrderOne(t *testing.T) {
	outcome, sq, err := solver.Classify(square.NewPartial(1))
	require.NoError(t, err)
	assert.Equal(t, solver.Unique, outcome)
	assert.Equal(t, 1, sq.At(0, 0))
}

func TestClassify_NodeBudgetExhausts(t *testing.T) {
	outcome, _, err := solver.Classify(square.NewPartial(5), solver.WithNodeBudget(1))
	require.NoError(t, err)
	assert.Equal(t, solver.Exhausted, outcome)
}

func TestClassify_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome, _, err := solver.Classify(square.NewPartial(5), solver.WithContext(ctx))
	require.NoError(t, err)
	assert.Equal(t, solver.Exhausted, outcome)
}

func TestCompletableTo(t *testing.T) {
	L := cyclic(t, 4)
	p := borderSet(t, L)

	ok, err := solver.CompletableTo(p, L)
	require.NoError(t, err)
	assert.True(t, ok)

	// A square that disagrees with an assigned cell.
	other := L.PermuteSymbols(square.Permutation{1, 0, 3, 2})
	ok, err = solver.CompletableTo(p, other)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = solver.CompletableTo(p, nil)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = solver.CompletableTo(nil, L)
	assert.ErrorIs(t, err, solver.ErrNilAssignment)
}

func TestUniquelyCompletableTo(t *testing.T) {
	L := cyclic(t, 4)
	p := borderSet(t, L)

	ok, err := solver.UniquelyCompletableTo(p, L)
	require.NoError(t, err)
	assert.False(t, ok, "border alone admits four completions")

	require.NoError(t, p.Set(1, 1, L.At(1, 1)))
	ok, err = solver.UniquelyCompletableTo(p, L)
	require.NoError(t, err)
	assert.True(t, ok)

	// Unique completion that is a different square.
	other := L.PermuteSymbols(square.Permutation{1, 0, 3, 2})
	ok, err = solver.UniquelyCompletableTo(p, other)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestComplete_ParallelMatchesSequential(t *testing.T) {
	L := cyclic(t, 4)
	p := borderSet(t, L)

	seq, err := solver.Complete(p, solver.WithLimit(10))
	require.NoError(t, err)
	par, err := solver.Complete(p, solver.WithLimit(10), solver.WithWorkers(3))
	require.NoError(t, err)

	require.Len(t, par.Completions, len(seq.Completions))
	for i := range seq.Completions {
		assert.True(t, seq.Completions[i].Equal(par.Completions[i]))
	}
	assert.False(t, par.Exhausted)
}

func TestComplete_ParallelEmptyOrderThree(t *testing.T) {
	seq, err := solver.Complete(square.NewPartial(3), solver.WithLimit(20))
	require.NoError(t, err)
	par, err := solver.Complete(square.NewPartial(3), solver.WithLimit(20), solver.WithWorkers(4))
	require.NoError(t, err)

	// All twelve order-3 squares, in identical branch order.
	require.Len(t, seq.Completions, 12)
	require.Len(t, par.Completions, 12)
	for i := range seq.Completions {
		assert.True(t, seq.Completions[i].Equal(par.Completions[i]))
	}
}

func TestComplete_ParallelSharesNodeBudget(t *testing.T) {
	// The node budget bounds the whole search, not each branch: with a
	// budget of 40 the fan-out must not explore anywhere near
	// branches x 40 nodes. The limit is high enough that only the
	// budget can stop the search.
	res, err := solver.Complete(square.NewPartial(6),
		solver.WithLimit(1000),
		solver.WithNodeBudget(40),
		solver.WithWorkers(4))
	require.NoError(t, err)

	assert.True(t, res.Exhausted)
	assert.False(t, res.Capped)
	assert.GreaterOrEqual(t, res.Nodes, int64(40))
	assert.Less(t, res.Nodes, int64(80))
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "Contradiction", solver.Contradiction.String())
	assert.Equal(t, "Unique", solver.Unique.String())
	assert.Equal(t, "Multiple", solver.Multiple.String())
	assert.Equal(t, "Exhausted", solver.Exhausted.String())
	assert.Equal(t, "Unknown", solver.Outcome(42).String())
}
