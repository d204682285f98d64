package codec_test

import (
	"fmt"

	"github.com/quasigroup/latsq/codec"
)

// ExampleReconstruct rebuilds a full square from a published defining-set
// block: three cells suffice to force the whole cyclic order-3 square.
func ExampleReconstruct() {
	block := "order 3\n1 2 1\n2 1 1\n2 2 2"

	_, cells, err := codec.DecodeDefiningSet(block)
	if err != nil {
		fmt.Println(err)

		return
	}

	sq, err := codec.Reconstruct(cells)
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(codec.EncodeSquare(sq))
	// Output:
	// 123231312
}
