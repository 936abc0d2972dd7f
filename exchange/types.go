// Package exchange defines the work counters reported by the sorter.
package exchange

// Stats accumulates the work performed by a single sorting pass.
//
// Fields:
//   - Comparisons — number of element comparisons performed by the inner
//     scan. For a sequence of length N this is always N*(N-1)/2.
//   - Swaps — number of element exchanges actually performed. A position
//     whose minimum is already in place is skipped and not counted, so
//     Swaps ≤ N-1.
//
// Counters are uint64 so that repeated benchmark passes can be summed
// without overflow concerns.
type Stats struct {
	Comparisons uint64
	Swaps       uint64
}

// Add accumulates other into s, for summing stats across benchmark passes.
func (s *Stats) Add(other Stats) {
	s.Comparisons += other.Comparisons
	s.Swaps += other.Swaps
}
