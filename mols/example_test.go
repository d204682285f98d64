package mols_test

import (
	"fmt"

	"github.com/quasigroup/latsq/mols"
	"github.com/quasigroup/latsq/square"
)

// ExampleOrthogonal superimposes two order-4 squares built on the Klein
// four-group and checks that all sixteen symbol pairs are distinct.
func ExampleOrthogonal() {
	a, _ := square.New(4, []int{
		1, 2, 3, 4,
		2, 1, 4, 3,
		3, 4, 1, 2,
		4, 3, 2, 1,
	})
	b, _ := square.New(4, []int{
		1, 2, 3, 4,
		3, 4, 1, 2,
		4, 3, 2, 1,
		2, 1, 4, 3,
	})

	fmt.Println(mols.Orthogonal(a, b))
	fmt.Println(mols.Orthogonal(a, a))
	// Output:
	// true
	// false
}

// ExampleTransversals contrasts a square with no orthogonal mate (the
// order-4 cyclic table, zero transversals) against one with a mate.
func ExampleTransversals() {
	cyclic, _ := square.New(4, []int{
		1, 2, 3, 4,
		2, 3, 4, 1,
		3, 4, 1, 2,
		4, 1, 2, 3,
	})
	klein, _ := square.New(4, []int{
		1, 2, 3, 4,
		2, 1, 4, 3,
		3, 4, 1, 2,
		4, 3, 2, 1,
	})

	fmt.Println(mols.Transversals(cyclic))
	fmt.Println(mols.Transversals(klein))
	// Output:
	// 0
	// 8
}
