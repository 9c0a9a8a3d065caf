package pairsort

import "errors"

var (
	// ErrShapeMismatch indicates keys and satellite have different lengths.
	ErrShapeMismatch = errors.New("pairsort: keys and satellite lengths differ")

	// ErrUnknownAlgorithm indicates an Algorithm outside the enumeration.
	ErrUnknownAlgorithm = errors.New("pairsort: unknown algorithm")
)
