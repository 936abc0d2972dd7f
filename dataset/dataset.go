// Package dataset holds the canonical fixed inputs of the lvlbench
// micro-benchmarks. Every accessor returns a fresh copy, so callers may
// mutate results freely without poisoning later runs.
//
// The values are historical: they reproduce the original benchmark
// literals verbatim, including two typos in the matrix rows (duplicate
// 44s where 43/44 were intended, and triple 55s where 53/54/55 were
// intended). Tests pin these positions on purpose — expected outputs
// such as the C[0][0] = 3355 scenario are computed over the typo'd data.
package dataset

import "github.com/katalvlaran/lvlbench/matrix"

const (
	// SeqLen is the length of the canonical sort input.
	SeqLen = 16

	// Dim is the row/column count of the canonical square matrices.
	Dim = 10
)

// sequence is the canonical unsorted input of the exchange benchmark.
var sequence = [SeqLen]uint32{9, 4, 1, 2, 6, 4, 9, 1, 4, 1, 10, 15, 7, 14, 12, 9}

// sequenceSorted is the expected output of sorting sequence.
var sequenceSorted = [SeqLen]uint32{1, 1, 1, 2, 4, 4, 4, 6, 7, 9, 9, 9, 10, 12, 14, 15}

// matrixFlat is the canonical Dim×Dim input of the matmul benchmark,
// row-major. Both multiplication operands use the same values.
var matrixFlat = [Dim * Dim]uint32{
	1, 2, 3, 4, 5, 6, 7, 8, 9, 10,
	11, 12, 13, 14, 15, 16, 17, 18, 19, 20,
	21, 22, 23, 24, 25, 26, 27, 28, 29, 30,
	31, 32, 33, 34, 35, 36, 37, 38, 39, 40,
	41, 42, 44, 44, 45, 46, 47, 48, 49, 50, // historical typo: 44, 44
	51, 52, 55, 55, 55, 56, 57, 58, 59, 60, // historical typo: 55, 55, 55
	61, 62, 63, 64, 65, 66, 67, 68, 69, 70,
	71, 72, 73, 74, 75, 76, 77, 78, 79, 80,
	81, 82, 83, 84, 85, 86, 87, 88, 89, 90,
	91, 92, 93, 94, 95, 96, 97, 98, 99, 100,
}

// ProductAt00 is the expected top-left entry of MatrixA()·MatrixB():
// 1·1 + 2·11 + 3·21 + 4·31 + 5·41 + 6·51 + 7·61 + 8·71 + 9·81 + 10·91.
const ProductAt00 uint32 = 3355

// Sequence returns a fresh copy of the canonical unsorted sequence.
func Sequence() []uint32 {
	out := make([]uint32, SeqLen)
	copy(out, sequence[:])

	return out
}

// SequenceSorted returns a fresh copy of the expected sorted sequence.
func SequenceSorted() []uint32 {
	out := make([]uint32, SeqLen)
	copy(out, sequenceSorted[:])

	return out
}

// MatrixA returns a fresh copy of the left multiplication operand.
func MatrixA() *matrix.Dense {
	return mustDense(Dim, Dim, matrixFlat[:])
}

// MatrixB returns a fresh copy of the right multiplication operand.
// The canonical benchmark multiplies the matrix by itself, so MatrixB
// holds the same values as MatrixA but is an independent copy.
func MatrixB() *matrix.Dense {
	return mustDense(Dim, Dim, matrixFlat[:])
}

// mustDense builds a Dense from compile-time constant data. The inputs
// are fixed literals, so a constructor error here is a programmer error.
func mustDense(rows, cols int, flat []uint32) *matrix.Dense {
	m, err := matrix.NewDenseFromSlice(rows, cols, flat)
	if err != nil {
		panic(err)
	}

	return m
}
