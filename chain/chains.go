// SPDX-License-Identifier: MIT

package chain

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/chainsort/probability"
)

// fractionTol is the tolerance on FreqA+FreqB+FreqC == 1.
const fractionTol = 1e-9

// Len returns the number of chains.
func (c *Chains) Len() int { return len(c.Lengths) }

// Unpack returns the four parallel slices (lengths, freqA, freqB, freqC).
// The slices are shared with c, not copied.
func (c *Chains) Unpack() ([]int, []float64, []float64, []float64) {
	return c.Lengths, c.FreqA, c.FreqB, c.FreqC
}

// Fraction returns the fraction slice for symbol s, or nil for an invalid symbol.
func (c *Chains) Fraction(s probability.Symbol) []float64 {
	switch s {
	case probability.A:
		return c.FreqA
	case probability.B:
		return c.FreqB
	case probability.C:
		return c.FreqC
	default:
		return nil
	}
}

// Clone returns a deep copy; sorting the copy never disturbs c.
func (c *Chains) Clone() *Chains {
	return &Chains{
		Lengths: slices.Clone(c.Lengths),
		FreqA:   slices.Clone(c.FreqA),
		FreqB:   slices.Clone(c.FreqB),
		FreqC:   slices.Clone(c.FreqC),
	}
}

// Validate checks every invariant of a chain set.
//
// Errors: ErrInvalidChains wrapped with the first offending index.
//
// Complexity: O(n).
func (c *Chains) Validate() error {
	n := len(c.Lengths)
	if len(c.FreqA) != n || len(c.FreqB) != n || len(c.FreqC) != n {
		return fmt.Errorf("Validate: lengths=%d freqA=%d freqB=%d freqC=%d: %w",
			n, len(c.FreqA), len(c.FreqB), len(c.FreqC), ErrInvalidChains)
	}
	for i := 0; i < n; i++ {
		if c.Lengths[i] < 1 {
			return fmt.Errorf("Validate: chain %d has length %d: %w", i, c.Lengths[i], ErrInvalidChains)
		}
		fa, fb, fc := c.FreqA[i], c.FreqB[i], c.FreqC[i]
		if !inUnit(fa) || !inUnit(fb) || !inUnit(fc) {
			return fmt.Errorf("Validate: chain %d fractions (%g, %g, %g) outside [0,1]: %w", i, fa, fb, fc, ErrInvalidChains)
		}
		if s := fa + fb + fc; math.Abs(s-1) > fractionTol {
			return fmt.Errorf("Validate: chain %d fractions sum to %.12g: %w", i, s, ErrInvalidChains)
		}
	}

	return nil
}

// Stats computes summary statistics. An empty set yields a zero Stats.
//
// Complexity: O(n).
func (c *Chains) Stats() Stats {
	var st Stats
	st.Count = len(c.Lengths)
	if st.Count == 0 {
		return st
	}

	var symbols [3]float64
	for i, l := range c.Lengths {
		st.TotalSymbols += l
		st.MaxLength = max(st.MaxLength, l)
		st.MeanFraction[0] += c.FreqA[i]
		st.MeanFraction[1] += c.FreqB[i]
		st.MeanFraction[2] += c.FreqC[i]
		symbols[0] += c.FreqA[i] * float64(l)
		symbols[1] += c.FreqB[i] * float64(l)
		symbols[2] += c.FreqC[i] * float64(l)
	}
	n := float64(st.Count)
	total := float64(st.TotalSymbols)
	st.MeanLength = total / n
	for k := range st.MeanFraction {
		st.MeanFraction[k] /= n
		st.Composition[k] = symbols[k] / total
	}

	return st
}

func inUnit(v float64) bool { return v >= 0 && v <= 1 }
