// SPDX-License-Identifier: MIT

package benchmark

import (
	"errors"

	"github.com/katalvlaran/chainsort/chain"
)

var (
	// ErrInvalidArgument covers empty size lists, non-positive sizes or
	// repeats, and degenerate inputs to GrowthExponent. It is the same
	// sentinel as chain.ErrInvalidArgument.
	ErrInvalidArgument = chain.ErrInvalidArgument

	// ErrSortFailed indicates a sorter returned keys that are not non-decreasing.
	ErrSortFailed = errors.New("benchmark: sort produced unordered keys")
)
