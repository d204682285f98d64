package defset

import (
	"github.com/quasigroup/latsq/solver"
)

// Verify re-proves that ds is a critical set: its cells complete
// uniquely to the target, and dropping any single assigned cell leaves
// an assignment with at least two completions. Returns (false, nil) for
// a well-formed input that simply is not a critical set.
func Verify(ds *DefiningSet, opts ...Option) (bool, error) {
	if ds == nil || ds.Cells == nil {
		return false, ErrNilSquare
	}
	if err := validateTarget(ds.Target); err != nil {
		return false, err
	}
	if ds.Cells.N() != ds.Target.N() || !ds.Cells.Agrees(ds.Target) {
		return false, nil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 1. Uniqueness of the set itself.
	outcome, completion, err := solver.Classify(ds.Cells, solver.WithContext(dopts.Ctx))
	if err != nil {
		return false, err
	}
	if outcome != solver.Unique || !completion.Equal(ds.Target) {
		return false, nil
	}

	// 2. Minimality: every single-cell removal must admit a second
	//    completion. Removing a cell of a consistent assignment can
	//    never create a contradiction, so anything but Multiple fails.
	for _, c := range ds.Cells.Cells() {
		trial := ds.Cells.Clone()
		_ = trial.Unset(c.Row, c.Col)

		outcome, _, err = solver.Classify(trial, solver.WithContext(dopts.Ctx))
		if err != nil {
			return false, err
		}
		if outcome != solver.Multiple {
			return false, nil
		}
	}

	return true, nil
}
