package solver

import (
	"context"
	"sync/atomic"

	"github.com/quasigroup/latsq/internal/parallel"
	"github.com/quasigroup/latsq/square"
)

// Complete searches for full Latin squares consistent with p and returns
// up to Options.Limit of them in branch order (see Result.Completions
// for the determinism guarantee under parallel search). A partial
// assignment that is internally inconsistent simply yields zero
// completions; only structural misuse (nil input, bad order) is an error.
//
// Complexity: worst-case exponential in unfilled cells; see package doc.
func Complete(p *square.PartialSquare, opts ...Option) (*Result, error) {
	// 1. Validate input shape.
	if p == nil {
		return nil, ErrNilAssignment
	}
	if p.N() < 1 || p.N() > square.MaxOrder {
		return nil, square.ErrOrderRange
	}

	// 2. Apply options.
	sopts := DefaultOptions()
	for _, fn := range opts {
		fn(&sopts)
	}

	// 3. Seed the propagation arena; an inconsistent assignment is a
	//    Contradiction, reported as zero completions.
	g, ok := gridFromPartial(p)
	if !ok {
		return &Result{}, nil
	}
	if !g.findSingles() {
		return &Result{}, nil
	}

	// 4. Dispatch: sequential engine, or root fan-out across workers.
	if sopts.Workers > 1 {
		return completeParallel(g, sopts)
	}

	s := &searcher{opts: sopts, limit: sopts.Limit}
	s.dfs(g)

	return &Result{
		Completions: s.found,
		Nodes:       s.nodes,
		Exhausted:   s.exhausted,
		Capped:      len(s.found) >= s.limit,
	}, nil
}

// Classify runs Complete with a cap of two and maps the result onto the
// uniqueness taxonomy. When the outcome is Unique, the single completion
// is returned alongside it.
func Classify(p *square.PartialSquare, opts ...Option) (Outcome, *square.Square, error) {
	res, err := Complete(p, append(opts, WithLimit(DefaultLimit))...)
	if err != nil {
		return Contradiction, nil, err
	}

	switch {
	case len(res.Completions) >= DefaultLimit:
		return Multiple, nil, nil
	case res.Exhausted:
		// The budget ran out with fewer than two completions in hand:
		// neither uniqueness nor contradiction is proven.
		return Exhausted, nil, nil
	case len(res.Completions) == 1:
		return Unique, res.Completions[0], nil
	default:
		return Contradiction, nil, nil
	}
}

// CompletableTo reports whether sq is among the completions of p: every
// assigned cell of p agrees with sq and sq itself is a valid square.
func CompletableTo(p *square.PartialSquare, sq *square.Square) (bool, error) {
	if p == nil {
		return false, ErrNilAssignment
	}
	if sq == nil {
		return false, nil
	}
	if err := sq.Validate(); err != nil {
		return false, err
	}

	return p.Agrees(sq), nil
}

// UniquelyCompletableTo reports whether p has exactly one completion and
// that completion equals sq. This is the defining-set oracle.
func UniquelyCompletableTo(p *square.PartialSquare, sq *square.Square, opts ...Option) (bool, error) {
	outcome, completion, err := Classify(p, opts...)
	if err != nil {
		return false, err
	}

	return outcome == Unique && completion.Equal(sq), nil
}

// searcher runs the sequential backtracking loop for one goroutine.
type searcher struct {
	opts      Options
	limit     int
	found     []*square.Square
	nodes     int64
	exhausted bool

	// stop, when non-nil, is a shared completion counter across parallel
	// branches: once it reaches limit, all branches wind down.
	stop *atomic.Int64

	// spent, when non-nil, is a shared node counter across parallel
	// branches, so MaxNodes bounds the whole search, not each branch.
	spent *atomic.Int64
}

// dfs explores g and returns true when the search should stop entirely
// (cap reached, budget exceeded, or cancellation).
func (s *searcher) dfs(g *grid) bool {
	// 1. Cooperative cancellation and budget checks.
	if s.opts.Ctx.Err() != nil {
		s.exhausted = true

		return true
	}
	total := s.nodes
	if s.spent != nil {
		total = s.spent.Load()
	}
	if s.opts.MaxNodes > 0 && total >= s.opts.MaxNodes {
		s.exhausted = true

		return true
	}
	if s.stop != nil && s.stop.Load() >= int64(s.limit) {
		return true
	}

	// 2. Solved grid: yield a completion.
	if g.solved() {
		s.found = append(s.found, g.toSquare())
		if s.stop != nil {
			s.stop.Add(1)
		}

		return len(s.found) >= s.limit
	}

	// 3. Branch on the minimum-remaining-values cell.
	idx, ok := g.mrvCell()
	if !ok {
		return false
	}

	for _, sym := range g.candidates(idx) {
		s.nodes++
		if s.spent != nil {
			s.spent.Add(1)
		}

		branch := g.clone()
		if !branch.place(idx, uint16(1)<<(sym-1)) {
			continue
		}
		if !branch.findSingles() {
			continue
		}
		if s.dfs(branch) {
			return true
		}
	}

	return false
}

// completeParallel fans the root MRV cell's candidates out to a worker
// pool. Every branch runs the sequential engine against shared atomic
// completion and node counters; reaching the cap cancels siblings
// cooperatively. Branch results are merged in candidate-symbol order,
// so classification, counts, and Capped are reproducible; when the cap
// interrupts branches mid-search, which completions a branch banked
// first depends on scheduling.
func completeParallel(g *grid, opts Options) (*Result, error) {
	if g.solved() {
		return &Result{Completions: []*square.Square{g.toSquare()}}, nil
	}

	idx, _ := g.mrvCell()
	syms := g.candidates(idx)

	ctx, cancel := context.WithCancel(opts.Ctx)
	defer cancel()

	var (
		count atomic.Int64
		spent atomic.Int64
	)
	branches := make([]*searcher, len(syms))

	err := parallel.ForEach(ctx, opts.Workers, len(syms), func(i int) {
		branchOpts := opts
		branchOpts.Ctx = ctx

		s := &searcher{opts: branchOpts, limit: opts.Limit, stop: &count, spent: &spent}
		branches[i] = s

		branch := g.clone()
		if !branch.place(idx, uint16(1)<<(syms[i]-1)) {
			return
		}
		if !branch.findSingles() {
			return
		}
		s.dfs(branch)

		if count.Load() >= int64(opts.Limit) {
			cancel()
		}
	})
	if err != nil && opts.Ctx.Err() == nil {
		// Cancellation triggered by the cap itself, not the caller.
		err = nil
	}
	if err != nil {
		return nil, err
	}

	// Deterministic merge in branch-symbol order.
	res := &Result{}
	capped := count.Load() >= int64(opts.Limit)
	for _, b := range branches {
		if b == nil {
			continue
		}
		res.Nodes += b.nodes
		// A branch interrupted by the shared cap is not "exhausted":
		// the cap itself is the definitive answer.
		if b.exhausted && !capped && opts.Ctx.Err() == nil {
			res.Exhausted = true
		}
		res.Completions = append(res.Completions, b.found...)
	}
	if opts.Ctx.Err() != nil && !capped {
		res.Exhausted = true
	}
	if len(res.Completions) > opts.Limit {
		res.Completions = res.Completions[:opts.Limit]
	}
	res.Capped = len(res.Completions) >= opts.Limit

	return res, nil
}
