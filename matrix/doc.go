// Package matrix provides dense, row-major matrices of uint32 values
// and the multiplication kernel used by the matmul micro-benchmark.
//
// The matrix package provides:
//
//   - Dense, a bounds-checked row-major flat-storage matrix type with
//     O(1) element access and deep cloning.
//   - Mul, the canonical C = A × B triple-loop kernel with a flat-slice
//     fast path for *Dense operands.
//   - Constructors (NewDense, NewDenseFromSlice, NewIdentity) and thin
//     facades (NewZeros, ZerosLike, IdentityLike).
//
// Numeric policy: every element, product and sum is uint32; overflow
// wraps per standard unsigned arithmetic. Results are therefore
// bit-exact and reproducible across platforms.
//
// Layout policy: row-major everywhere. The element at logical position
// (row, col) lives at flat offset row*Cols + col. Both multiplication
// operands and the product use the same linearization.
//
// See the examples in this package for usage patterns.
package matrix
