// Package exchange implements in-place exchange (selection) sort over
// uint32 sequences, with optional work counters for benchmark reporting.
//
// 🚀 What is exchange sort?
//
//	Selection sort repeatedly selects the minimum of the remaining
//	unsorted suffix and swaps it into place.  Despite its O(N²)
//	comparison count it performs at most N−1 swaps, which makes it a
//	classic micro-benchmark kernel:
//	  • fully deterministic control flow (no data-dependent recursion)
//	  • tiny working set, no allocation
//	  • a fixed, provable amount of work for a given N
//
// ✨ Key features:
//   - Sort: the plain in-place kernel
//   - SortWithStats: same pass, counting comparisons and swaps
//   - Compare: signed-safe three-way comparison of uint32 values
//   - IsSorted: non-decreasing check used by tests and runners
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlbench/exchange"
//
//	seq := []uint32{9, 4, 1, 2, 6}
//	st := exchange.SortWithStats(seq)
//	fmt.Println(seq, st.Comparisons, st.Swaps)
//
// Performance:
//
//   - Time:   O(N²) comparisons, O(N) swaps
//   - Memory: O(1) — strictly in place
//
// Guarantees: the output is non-decreasing and is a permutation of the
// input multiset. Sorting is NOT stable (equal elements may be
// reordered); sequences of length 0 or 1 are returned unchanged.
package exchange
