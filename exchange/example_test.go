package exchange_test

import (
	"fmt"

	"github.com/katalvlaran/lvlbench/exchange"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSort
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Sort a short unsorted sequence in place.
//	  seq = [9, 4, 1, 2, 6]
//
// Complexity: O(N²) comparisons, O(1) memory
func ExampleSort() {
	seq := []uint32{9, 4, 1, 2, 6}
	exchange.Sort(seq)
	fmt.Println(seq)
	// Output:
	// [1 2 4 6 9]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSortWithStats
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Sort the same sequence while counting the work performed.
//	For N=5 the comparison count is always 5·4/2 = 10; this particular
//	input needs 4 exchanges.
func ExampleSortWithStats() {
	seq := []uint32{9, 4, 1, 2, 6}
	st := exchange.SortWithStats(seq)
	fmt.Printf("sorted=%v comparisons=%d swaps=%d\n", seq, st.Comparisons, st.Swaps)
	// Output:
	// sorted=[1 2 4 6 9] comparisons=10 swaps=4
}
