// SPDX-License-Identifier: MIT

package chain

import "errors"

var (
	// ErrInvalidArgument is returned for a negative chain count.
	ErrInvalidArgument = errors.New("chain: invalid argument")

	// ErrInvalidChains is returned by Chains.Validate when an invariant is broken
	// (slice lengths differ, length < 1, fraction outside [0,1], sum != 1).
	ErrInvalidChains = errors.New("chain: invalid chains")

	// ErrUnknownPath is returned by ParsePath and by Generate for a Path
	// outside the enumeration.
	ErrUnknownPath = errors.New("chain: unknown path")
)
