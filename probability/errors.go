// SPDX-License-Identifier: MIT

package probability

import "errors"

// Every message is prefixed with "probability: ..." for easy grepping.
// Callers branch with errors.Is; context is attached with %w at call sites.
var (
	// ErrConfiguration is the umbrella for invalid model constants
	// (negative, NaN/Inf, zero denominators, rows not summing to 1).
	ErrConfiguration = errors.New("probability: invalid configuration")

	// ErrDivisionByZero signals a zero rate constant. Errors carrying it
	// also match ErrConfiguration.
	ErrDivisionByZero = errors.New("probability: division by zero")
)
