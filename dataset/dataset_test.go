// Package dataset_test pins the canonical benchmark inputs, including
// the historical literal typos the expected outputs are computed over.
package dataset_test

import (
	"testing"

	"github.com/katalvlaran/lvlbench/dataset"
	"github.com/katalvlaran/lvlbench/exchange"
	"github.com/stretchr/testify/require"
)

// TestSequenceShape pins the canonical sequence length and values.
func TestSequenceShape(t *testing.T) {
	seq := dataset.Sequence()
	require.Len(t, seq, dataset.SeqLen) // exactly 16 elements

	require.Equal(t,
		[]uint32{9, 4, 1, 2, 6, 4, 9, 1, 4, 1, 10, 15, 7, 14, 12, 9},
		seq) // literal values preserved verbatim
}

// TestSequenceSortedMatchesSorter verifies the expected output against
// the actual sorter, closing the loop between fixture and kernel.
func TestSequenceSortedMatchesSorter(t *testing.T) {
	seq := dataset.Sequence()
	exchange.Sort(seq)

	require.Equal(t, dataset.SequenceSorted(), seq) // sorter agrees with the fixture
	require.True(t, exchange.IsSorted(seq))
}

// TestSequenceReturnsFreshCopies ensures callers cannot poison later runs.
func TestSequenceReturnsFreshCopies(t *testing.T) {
	first := dataset.Sequence()
	first[0] = 12345 // mutate the first copy

	second := dataset.Sequence()
	require.Equal(t, uint32(9), second[0]) // second copy is pristine
}

// TestMatrixShapeAndTypos pins the matrix dimensions and the two
// historical literal typos (duplicate 44s and triple 55s).
func TestMatrixShapeAndTypos(t *testing.T) {
	a := dataset.MatrixA()
	require.Equal(t, dataset.Dim, a.Rows())
	require.Equal(t, dataset.Dim, a.Cols())

	at := func(i, j int) uint32 {
		v, err := a.At(i, j)
		require.NoError(t, err)

		return v
	}

	require.Equal(t, uint32(1), at(0, 0))    // top-left of the 1..100 fill
	require.Equal(t, uint32(100), at(9, 9))  // bottom-right of the 1..100 fill

	require.Equal(t, uint32(44), at(4, 2)) // typo: 43 was never written
	require.Equal(t, uint32(44), at(4, 3)) // the intended 44
	require.Equal(t, uint32(55), at(5, 2)) // typo: 53 was never written
	require.Equal(t, uint32(55), at(5, 3)) // typo: 54 was never written
	require.Equal(t, uint32(55), at(5, 4)) // the intended 55
}

// TestMatrixOperandsIndependent ensures A and B are equal-valued but
// independent copies.
func TestMatrixOperandsIndependent(t *testing.T) {
	a, b := dataset.MatrixA(), dataset.MatrixB()
	require.True(t, a.Equal(b)) // same canonical values

	require.NoError(t, a.Set(0, 0, 999)) // mutate A only

	v, err := b.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, uint32(1), v) // B is unaffected
}

// TestProductAt00Derivation recomputes the documented constant from the
// fixture itself: C[0][0] = Σ_k A[0][k] · B[k][0].
func TestProductAt00Derivation(t *testing.T) {
	a, b := dataset.MatrixA(), dataset.MatrixB()

	var sum uint32
	for k := 0; k < dataset.Dim; k++ {
		av, err := a.At(0, k)
		require.NoError(t, err)
		bv, err := b.At(k, 0)
		require.NoError(t, err)
		sum += av * bv
	}

	require.Equal(t, dataset.ProductAt00, sum) // 3355
}
