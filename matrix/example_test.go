package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvlbench/matrix"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleMul
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Multiply a 2×3 matrix by a 3×2 matrix.
//	  A = [1 2 3]      B = [ 7  8]
//	      [4 5 6]          [ 9 10]
//	                       [11 12]
//
// Complexity: O(r·n·c) time, O(r·c) memory
func ExampleMul() {
	a, _ := matrix.NewDenseFromSlice(2, 3, []uint32{1, 2, 3, 4, 5, 6})
	b, _ := matrix.NewDenseFromSlice(3, 2, []uint32{7, 8, 9, 10, 11, 12})

	c, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(c)
	// Output:
	// [58, 64]
	// [139, 154]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleNewIdentity
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Multiplying by the identity returns the operand unchanged.
func ExampleNewIdentity() {
	a, _ := matrix.NewDenseFromSlice(2, 2, []uint32{1, 2, 3, 4})
	eye, _ := matrix.NewIdentity(2)

	c, err := matrix.Mul(a, eye)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(a.Equal(c))
	// Output:
	// true
}
