package mols

import "github.com/quasigroup/latsq/square"

// FindPairs drives one class pair: it takes the representatives of class
// i in ci and class j in cj and searches the symmetry images of the
// latter for a mate orthogonal to the former. Each witness is also
// assembled into a ready MOLS tuple (representative, mate).
//
// NoMate for a class pair is an expected outcome — orthogonality is
// sparse among arbitrary classes — so callers iterate on to the next
// pair rather than treating it as failure.
func FindPairs(ci, cj *Catalog, i, j int, opts ...Option) (*Result, error) {
	if ci == nil || cj == nil {
		return nil, ErrEmptyCatalog
	}
	if ci.Order() != cj.Order() {
		return nil, ErrOrderMismatch
	}

	a, err := ci.Rep(i)
	if err != nil {
		return nil, err
	}
	b, err := cj.Rep(j)
	if err != nil {
		return nil, err
	}

	res, err := FindMate(a, b, opts...)
	if err != nil {
		return nil, err
	}

	for _, w := range res.Witnesses {
		res.Tuples = append(res.Tuples, Tuple{a, w.Mate})
	}

	return res, nil
}

// Extend grows an existing MOLS tuple: it generates squares orthogonal
// to every member of base and returns the extended tuples. The number of
// extensions is capped by WithMateLimit.
func Extend(base Tuple, opts ...Option) (*Result, error) {
	res, err := Mates(base, opts...)
	if err != nil {
		return nil, err
	}

	for _, mate := range res.Mates {
		tuple := make(Tuple, 0, len(base)+1)
		tuple = append(tuple, base...)
		tuple = append(tuple, mate)
		res.Tuples = append(res.Tuples, tuple)
	}

	return res, nil
}

// Order returns the common order of the tuple's squares, or 0 for an
// empty tuple.
func (t Tuple) Order() int {
	if len(t) == 0 {
		return 0
	}

	return t[0].N()
}

// Contains reports whether the tuple already holds a square equal to sq.
func (t Tuple) Contains(sq *square.Square) bool {
	for _, member := range t {
		if member.Equal(sq) {
			return true
		}
	}

	return false
}
