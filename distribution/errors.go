// SPDX-License-Identifier: MIT

package distribution

import (
	"errors"

	"github.com/katalvlaran/chainsort/matrix"
)

var (
	// ErrShapeMismatch is returned when fractions and lengths differ in length.
	ErrShapeMismatch = errors.New("distribution: fractions and lengths differ in length")

	// ErrEmptyInput is returned for no chains, or when no chain lands in [0,1]
	// with a positive length.
	ErrEmptyInput = errors.New("distribution: no weight to distribute")

	// ErrInvalidBins is returned for a bin count outside [1, MaxBins].
	ErrInvalidBins = errors.New("distribution: invalid bin count")

	// ErrInvalidWindow is returned for an even or non-positive smoothing
	// window, a negative order, or an order that does not fit the window.
	ErrInvalidWindow = errors.New("distribution: invalid smoothing window")

	// ErrSingular is returned when the least-squares system has no unique
	// solution. It is the matrix package's sentinel.
	ErrSingular = matrix.ErrSingular
)
