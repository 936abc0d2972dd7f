// Package lvlbench is a small suite of deterministic micro-benchmarks
// built around two textbook integer kernels: an in-place exchange
// (selection) sort and a dense matrix multiplication.
//
// 🚀 What is lvlbench?
//
//	A pure-Go companion to lvlath for measuring and pinning down the
//	behavior of tiny, fully deterministic workloads:
//		• exchange/ — selection sort over uint32 sequences, with work counters
//		• matrix/   — row-major dense uint32 matrices + multiplication
//		• dataset/  — the canonical fixed benchmark inputs
//		• hostinfo/ — CPU capability banner for recorded runs
//		• cmd/      — printing benchmark runners (exchange, matmul)
//
// ✨ Why lvlbench?
//
//   - Bit-exact semantics – all arithmetic is uint32 with wrapping,
//     so results are reproducible across platforms
//   - Fixed datasets – inputs are code constants, never generated at run time
//   - Rock-solid guarantees – bounds-checked indexing, sentinel errors,
//     property-style tests for every invariant
//
// Quick start:
//
//	seq := dataset.Sequence()
//	exchange.Sort(seq)
//
//	c, err := matrix.Mul(dataset.MatrixA(), dataset.MatrixB())
//
// Dive into each package's doc.go for the algorithm outlines and the
// exact numeric policy.
//
//	go get github.com/katalvlaran/lvlbench
package lvlbench
