// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Every message is prefixed with "matrix:"; kernels wrap these with their
// operation name, so callers match with errors.Is.
var (
	// ErrInvalidDimensions is returned for a non-positive row or column count,
	// or a backing slice whose length is not rows*cols.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates a nil matrix or vector argument.
	ErrNilMatrix = errors.New("matrix: nil argument")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular indicates a zero pivot during factorization or substitution.
	ErrSingular = errors.New("matrix: singular matrix")
)
