package exchange

// Sort — in-place exchange (selection) sort
//
// Description:
//
//	Sort arranges seq in non-decreasing order. For each position x it
//	scans the unsorted suffix x+1..N-1 for the index of the smallest
//	value, then exchanges that element into position x.
//
// Algorithm Outline:
//  1. For x = 0..N-1:
//     min = x
//     For y = x+1..N-1:
//     if Compare(seq[y], seq[min]) < 0 { min = y }
//     If min != x, Swap(seq, x, min).
//  2. The prefix seq[0..x] is sorted and final after each outer step.
//
// Complexity:
//
//	Time   = O(N²) comparisons, O(N) swaps
//	Memory = O(1)
//
// Edge cases:
//   - len(seq) of 0 or 1: the loops do no work; seq is unchanged.
//   - Duplicate values are handled; stability is NOT guaranteed.

// Compare returns -1 if a < b, +1 if a > b, and 0 if equal.
// The comparison branches on the values directly; it deliberately does
// NOT subtract, because a-b on uint32 wraps when b > a and would report
// the wrong sign.
// Complexity: O(1).
func Compare(a, b uint32) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}

	return 0
}

// Swap exchanges the elements at positions i and j.
// Callers must pass valid indices; Swap performs no bounds checks beyond
// the runtime's own.
// Complexity: O(1).
func Swap(seq []uint32, i, j int) {
	seq[i], seq[j] = seq[j], seq[i]
}

// IsSorted reports whether seq is non-decreasing.
// Sequences of length 0 and 1 are sorted by definition.
// Complexity: O(N).
func IsSorted(seq []uint32) bool {
	for i := 1; i < len(seq); i++ { // compare each adjacent pair once
		if seq[i-1] > seq[i] {
			return false
		}
	}

	return true
}

// Sort sorts seq in place into non-decreasing order using selection sort.
// The result is a permutation of the input multiset. See the package
// documentation for the algorithm outline and guarantees.
func Sort(seq []uint32) {
	selectionPass(seq, nil)
}

// SortWithStats sorts seq in place and returns the work performed:
// the exact comparison count N*(N-1)/2 and the number of swaps executed.
func SortWithStats(seq []uint32) Stats {
	var st Stats
	selectionPass(seq, &st)

	return st
}

// selectionPass runs the canonical selection-sort loop, optionally
// counting work into st (nil disables counting).
//
// Invariants maintained per outer iteration x:
//   - seq[0..x) is sorted and contains the x smallest values.
//   - the inner index y advances every iteration, so the scan always
//     terminates after exactly N-1-x comparisons.
func selectionPass(seq []uint32, st *Stats) {
	n := len(seq)
	var x, y, min int
	for x = 0; x < n; x++ {
		min = x // current minimum candidate
		for y = x + 1; y < n; y++ {
			if st != nil {
				st.Comparisons++
			}
			if Compare(seq[y], seq[min]) < 0 {
				min = y // found a smaller suffix element
			}
		}
		if min != x { // self-swap is a no-op; skip and don't count it
			Swap(seq, x, min)
			if st != nil {
				st.Swaps++
			}
		}
	}
}
