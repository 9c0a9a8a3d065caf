// SPDX-License-Identifier: MIT

package report

import "errors"

var (
	// ErrUnknownFormat is returned by ParseFormat and by writers given an invalid Format.
	ErrUnknownFormat = errors.New("report: unknown format")

	// ErrNilInput is returned when a writer is given a nil result, chains or histogram.
	ErrNilInput = errors.New("report: nil input")

	// ErrShapeMismatch is returned when a smoothed series does not match the histogram.
	ErrShapeMismatch = errors.New("report: smoothed series length differs from histogram")
)
