// SPDX-License-Identifier: MIT

package chain

import "fmt"

const opGenerate = "Generate"

// Generate produces numChains chains with the configured path.
//
// Implementation:
//   - Stage 1: validate numChains and the path; resolve options.
//   - Stage 2: allocate the four output slices (len == numChains).
//   - Stage 3: run the selected path; each chain writes only its own slot.
//
// Behavior highlights:
//   - numChains == 0 returns four empty (non-nil) slices and no error.
//   - Every chain has length >= 1 and fractions summing to 1.
//
// Errors:
//   - ErrInvalidArgument if numChains < 0.
//   - ErrUnknownPath if the path is outside the enumeration.
//
// Complexity: O(Σ lengths) time, O(numChains) memory.
func Generate(numChains int, opts ...Option) (*Chains, error) {
	// Stage 1: validate.
	if numChains < 0 {
		return nil, fmt.Errorf("%s: numChains=%d: %w", opGenerate, numChains, ErrInvalidArgument)
	}
	cfg := newConfig(opts...)
	if !cfg.path.Valid() {
		return nil, fmt.Errorf("%s: %v: %w", opGenerate, cfg.path, ErrUnknownPath)
	}

	// Stage 2: allocate.
	out := newChains(numChains)
	if numChains == 0 {
		return out, nil
	}

	// Stage 3: execute.
	switch cfg.path {
	case Compiled:
		if err := generateCompiled(out, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", opGenerate, err)
		}
	default:
		generateInterpreted(out, cfg)
	}

	return out, nil
}

// newChains allocates n zeroed slots.
func newChains(n int) *Chains {
	return &Chains{
		Lengths: make([]int, n),
		FreqA:   make([]float64, n),
		FreqB:   make([]float64, n),
		FreqC:   make([]float64, n),
	}
}

// record stores the summary of one finished chain at slot i.
func (c *Chains) record(i, length int, counts [3]int) {
	l := float64(length)
	c.Lengths[i] = length
	c.FreqA[i] = float64(counts[0]) / l
	c.FreqB[i] = float64(counts[1]) / l
	c.FreqC[i] = float64(counts[2]) / l
}
