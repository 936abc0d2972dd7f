// Package matrix defines the core Matrix interface for the multiplication kernel.
//
// What & Why:
//
//	The Matrix interface provides a uniform abstraction over two-dimensional
//	mutable arrays of uint32 values, so the multiplication kernel can operate
//	generically on any implementation while keeping a fast path for Dense.
//	Bounds checking on every accessor keeps misuse observable instead of
//	corrupting neighboring cells.
//
// Complexity:
//
//	Rows() and Cols() run in O(1) time.
//	At() and Set() perform bounds checking in O(1) time, returning an error on invalid indices.
//	Clone() performs a deep copy in O(rows*cols) time, allocating new storage.
package matrix

// Matrix represents a two-dimensional mutable array of uint32 values.
// Each method enforces bounds checking and returns clear errors on misuse.
// Users can implement this interface to provide custom storage layouts.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (row, col).
	// Returns ErrIndexOutOfBounds if row<0, row>=Rows(), col<0 or col>=Cols().
	// Complexity: O(1).
	At(row, col int) (uint32, error)

	// Set assigns the value v at position (row, col).
	// Returns ErrIndexOutOfBounds if indices are invalid.
	// Complexity: O(1).
	Set(row, col int, v uint32) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
