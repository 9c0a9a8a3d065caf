// SPDX-License-Identifier: MIT

package chain

import (
	"fmt"
	"strings"
)

// Path selects the execution strategy of Generate.
//
//   - Interpreted: sequential, model lookups on every step.
//   - Compiled: flattened tables, parallel chunks, per-chain streams.
type Path int

const (
	// Interpreted is the sequential reference path.
	Interpreted Path = iota

	// Compiled is the flattened, data-parallel path.
	Compiled
)

// String returns "interpreted" or "compiled".
func (p Path) String() string {
	switch p {
	case Interpreted:
		return "interpreted"
	case Compiled:
		return "compiled"
	default:
		return fmt.Sprintf("path(%d)", int(p))
	}
}

// Valid reports whether p belongs to the enumeration.
func (p Path) Valid() bool { return p == Interpreted || p == Compiled }

// ParsePath maps a name (case-insensitive) to a Path.
// "sequential" and "parallel" are accepted as aliases of the two paths.
func ParsePath(s string) (Path, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "interpreted", "sequential":
		return Interpreted, nil
	case "compiled", "parallel":
		return Compiled, nil
	default:
		return Interpreted, fmt.Errorf("ParsePath(%q): %w", s, ErrUnknownPath)
	}
}

// Chains holds one entry per generated chain, indexed by chain id.
// All four slices always have the same length.
type Chains struct {
	// Lengths[i] is the number of symbols in chain i (>= 1).
	Lengths []int

	// FreqA[i], FreqB[i], FreqC[i] are the symbol fractions of chain i.
	FreqA []float64
	FreqB []float64
	FreqC []float64
}

// Stats summarises a set of chains.
type Stats struct {
	Count        int
	MeanLength   float64
	MaxLength    int
	TotalSymbols int
	// MeanFraction is the unweighted mean of FreqA, FreqB, FreqC.
	MeanFraction [3]float64
	// Composition is the length-weighted composition: symbol counts over total symbols.
	Composition [3]float64
}
