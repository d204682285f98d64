package mols

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/quasigroup/latsq/internal/parallel"
	"github.com/quasigroup/latsq/square"
)

// FindMate searches the symmetry images of b for a square orthogonal
// to a. Images are the six conjugates of b composed with every row and
// column permutation; symbol permutations never change pair
// distinctness, so they are pruned outright (an n!-fold reduction).
//
// The transversal prefilter runs first: a representative with fewer
// than n transversals cannot have an orthogonal mate, and the count is
// a main-class invariant, so the whole class pair is dismissed as
// NoMate without testing a single image.
//
// The first witnessing image is returned with the transform that
// produced it; WithAll collects every witness instead. NoMate and an
// exceeded image budget (Exhausted) are ordinary results, not errors.
func FindMate(a, b *square.Square, opts ...Option) (*Result, error) {
	// 1. Guard inputs.
	if a == nil || b == nil {
		return nil, ErrNilSquare
	}
	if a.N() != b.N() {
		return nil, ErrOrderMismatch
	}
	if a.Validate() != nil || b.Validate() != nil {
		return nil, ErrInvalidSquare
	}

	// 2. Apply options.
	mopts := DefaultOptions()
	for _, fn := range opts {
		fn(&mopts)
	}

	// 3. Invariant prefilter.
	if !hasMatePrecondition(a) || !hasMatePrecondition(b) {
		return &Result{NoMate: true}, nil
	}

	// 4. Enumerate images, one conjugate per task.
	ctx, cancel := context.WithCancel(mopts.Ctx)
	defer cancel()

	var (
		images    atomic.Int64
		exhausted atomic.Bool
		mu        sync.Mutex
		witnesses []Witness
	)

	width := mopts.Workers
	if width > len(square.ConjugateAxes) {
		width = len(square.ConjugateAxes)
	}

	_ = parallel.ForEach(ctx, width, len(square.ConjugateAxes), func(axesIdx int) {
		axes := square.ConjugateAxes[axesIdx]
		conj, err := b.Conjugate(axes)
		if err != nil {
			return
		}

		halt := false
		forEachPermutation(b.N(), func(rowPerm square.Permutation) bool {
			if halt || ctx.Err() != nil {
				return true
			}
			rowImage := conj.PermuteRows(rowPerm)

			forEachPermutation(b.N(), func(colPerm square.Permutation) bool {
				if ctx.Err() != nil {
					halt = true

					return true
				}
				if n := images.Add(1); mopts.ImageBudget > 0 && n > mopts.ImageBudget {
					exhausted.Store(true)
					cancel()
					halt = true

					return true
				}

				image := rowImage.PermuteCols(colPerm)
				if !Orthogonal(a, image) {
					return false
				}

				w := Witness{
					Mate: image,
					Transform: Transform{
						Axes:    axes,
						RowPerm: clonePerm(rowPerm),
						ColPerm: clonePerm(colPerm),
					},
				}
				mu.Lock()
				witnesses = append(witnesses, w)
				mu.Unlock()

				if !mopts.All {
					cancel()
					halt = true

					return true
				}

				return false
			})

			return halt
		})
	})

	// 5. Assemble the result; cancellation triggered by a witness is not
	//    exhaustion, only budget/context expiry is.
	res := &Result{
		Witnesses: witnesses,
		Images:    images.Load(),
		Exhausted: exhausted.Load() || mopts.Ctx.Err() != nil,
	}
	res.NoMate = len(res.Witnesses) == 0 && !res.Exhausted

	return res, nil
}

func clonePerm(p square.Permutation) square.Permutation {
	out := make(square.Permutation, len(p))
	copy(out, p)

	return out
}

// forEachPermutation visits the permutations of [0, n) in lexicographic
// order, reusing one backing slice; callbacks must copy before storing.
// fn returning true stops the enumeration.
func forEachPermutation(n int, fn func(p square.Permutation) bool) {
	p := square.IdentityPermutation(n)

	for {
		if fn(p) {
			return
		}

		// Advance to the next permutation in lexicographic order.
		i := n - 2
		for i >= 0 && p[i] >= p[i+1] {
			i--
		}
		if i < 0 {
			return
		}
		j := n - 1
		for p[j] <= p[i] {
			j--
		}
		p[i], p[j] = p[j], p[i]
		for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
			p[l], p[r] = p[r], p[l]
		}
	}
}
