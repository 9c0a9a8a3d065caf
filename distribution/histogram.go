// SPDX-License-Identifier: MIT

package distribution

import (
	"fmt"
	"math"
)

// Hist is a normalised, length-weighted histogram over [0,1].
type Hist struct {
	// Centers[k] is the midpoint of bin k.
	Centers []float64
	// Weights[k] is the density of bin k; Σ Weights[k]·Width == 1.
	Weights []float64
	// Width is the common bin width, 1/len(Centers).
	Width float64
	// Total is the raw weight (sum of lengths) that was binned.
	Total float64
}

// Bins returns the number of bins.
func (h *Hist) Bins() int { return len(h.Centers) }

// Histogram bins frac weighted by lengths.
//
// Implementation:
//   - Stage 1: validate shapes, resolve the bin count.
//   - Stage 2: accumulate lengths into bins; 1.0 goes to the last bin.
//   - Stage 3: normalise by total·width.
//
// Errors: ErrShapeMismatch, ErrEmptyInput, ErrInvalidBins.
//
// Complexity: O(n + bins).
func Histogram(frac []float64, lengths []int, opts ...Option) (*Hist, error) {
	// Stage 1
	if len(frac) != len(lengths) {
		return nil, fmt.Errorf("Histogram: %d fractions, %d lengths: %w", len(frac), len(lengths), ErrShapeMismatch)
	}
	if len(frac) == 0 {
		return nil, fmt.Errorf("Histogram: %w", ErrEmptyInput)
	}
	cfg := newConfig(opts...)
	bins := cfg.bins
	if cfg.fromLengths {
		bins = binsFromLengths(lengths)
	}
	if bins < 1 || bins > MaxBins {
		return nil, fmt.Errorf("Histogram: bins=%d: %w", bins, ErrInvalidBins)
	}

	// Stage 2
	h := &Hist{
		Centers: make([]float64, bins),
		Weights: make([]float64, bins),
		Width:   1 / float64(bins),
	}
	for k := range h.Centers {
		h.Centers[k] = (float64(k) + 0.5) * h.Width
	}
	var k int
	for i, f := range frac {
		if !(f >= 0 && f <= 1) || lengths[i] <= 0 {
			continue
		}
		k = min(int(f*float64(bins)), bins-1)
		h.Weights[k] += float64(lengths[i])
		h.Total += float64(lengths[i])
	}
	if h.Total == 0 {
		return nil, fmt.Errorf("Histogram: %w", ErrEmptyInput)
	}

	// Stage 3
	norm := h.Total * h.Width
	for k := range h.Weights {
		h.Weights[k] /= norm
	}

	return h, nil
}

// binsFromLengths is ceil(max/LengthsPerBin) clamped to [1, MaxBins].
func binsFromLengths(lengths []int) int {
	var hi int
	for _, l := range lengths {
		hi = max(hi, l)
	}
	b := int(math.Ceil(float64(hi) / LengthsPerBin))
	return min(max(b, 1), MaxBins)
}
