package square_test

import (
	"fmt"

	"github.com/quasigroup/latsq/square"
)

// ExampleSquare_Conjugate swaps the row and symbol roles of the cyclic
// order-3 square: each triple (row, col, symbol) of the original becomes
// (symbol, col, row) in the image, which is again a Latin square.
func ExampleSquare_Conjugate() {
	sq, _ := square.New(3, []int{
		1, 2, 3,
		2, 3, 1,
		3, 1, 2,
	})

	conj, _ := sq.Conjugate([3]int{2, 1, 0})
	for i := 0; i < conj.N(); i++ {
		fmt.Println(conj.Row(i))
	}
	// Output:
	// [1 3 2]
	// [2 1 3]
	// [3 2 1]
}

// ExampleSquare_Reduced normalizes a shuffled square back to reduced
// form: first row and first column in natural order.
func ExampleSquare_Reduced() {
	sq, _ := square.New(3, []int{
		3, 1, 2,
		2, 3, 1,
		1, 2, 3,
	})

	red := sq.Reduced()
	for i := 0; i < red.N(); i++ {
		fmt.Println(red.Row(i))
	}
	// Output:
	// [1 2 3]
	// [2 3 1]
	// [3 1 2]
}
