// Dense is a concrete, row-major implementation of the Matrix interface,
// storing elements in a flat slice for performance and cache friendliness.

package matrix

import (
	"fmt"
	"strings"
)

// String formatting constants shared by Dense.String.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of uint32 values.
// r is rows, c is columns, and data holds r*c elements in row-major order:
// the element at (row, col) lives at flat offset row*c + col.
type Dense struct {
	r, c int      // number of rows and columns
	data []uint32 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice
	data := make([]uint32, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewDenseFromSlice creates an r×c Dense matrix initialized from flat,
// interpreted in row-major order. The slice is copied; the caller keeps
// ownership of flat.
// Stage 1 (Validate): dimensions > 0 and len(flat) == rows*cols.
// Stage 2 (Prepare): copy into fresh backing storage.
// Stage 3 (Finalize): return new Dense or a sentinel error.
// Complexity: O(r*c) time and memory.
func NewDenseFromSlice(rows, cols int, flat []uint32) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Validate initializer length
	if len(flat) != rows*cols {
		return nil, fmt.Errorf("NewDenseFromSlice(%d,%d): got %d elements: %w",
			rows, cols, len(flat), ErrBadSliceLength)
	}
	// Copy into owned storage
	data := make([]uint32, len(flat))
	copy(data, flat)

	return &Dense{r: rows, c: cols, data: data}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols) in a single call.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	// Compute flat offset (row-major)
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (uint32, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v uint32) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}

	// Store value
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i. Mutating the returned slice does not
// affect the matrix.
// Complexity: O(c) time and memory.
func (m *Dense) Row(i int) ([]uint32, error) {
	// Validate row index
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrIndexOutOfBounds)
	}
	// Copy the row out of flat storage
	out := make([]uint32, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy of the matrix as a Matrix.
// The returned dynamic type is *Dense; storage is never shared.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	cp := make([]uint32, len(m.data)) // allocate same length
	copy(cp, m.data)                  // deep copy elements

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports whether m and other have the same shape and elements.
// A nil other is never equal. Comparison is exact (uint32 equality).
// Complexity: O(r*c).
func (m *Dense) Equal(other *Dense) bool {
	// Reject nil and shape mismatches up front
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	// Compare flat storage element-wise
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// String renders a readable row-wise dump for diagnostics.
// Fixed traversal order; not intended for hot paths.
// Complexity: O(r*c) time, O(r*c) space for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%d", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}
