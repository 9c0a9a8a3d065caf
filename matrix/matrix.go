// SPDX-License-Identifier: MIT

package matrix

// Matrix is a two-dimensional mutable array of float64 values with
// bounds-checked access. Dense is the only implementation in this module;
// kernels take a fast path for it and fall back to At/Set otherwise.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
	// At returns the element at (i, j) or ErrOutOfRange.
	At(i, j int) (float64, error)
	// Set stores v at (i, j); ErrOutOfRange or ErrNaNInf on misuse.
	Set(i, j int, v float64) error
	// Clone returns an independent deep copy.
	Clone() Matrix
}
