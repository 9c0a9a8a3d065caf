// SPDX-License-Identifier: MIT

// Package distribution turns per-chain composition fractions into a
// length-weighted density over [0,1] and smooths it.
//
// 📊 Histogram
//
//	Every chain i adds Lengths[i] to the bin holding frac[i]; a fraction of
//	exactly 1.0 falls into the last bin, values outside [0,1] are skipped.
//	Weights are normalised so that Σ weight·width == 1, i.e. the histogram is
//	a density of symbols (not of chains) over the fraction axis.
//
// 🧮 Bin count
//
//	DefaultBins (100) unless WithBins(n) fixes it or WithBinsFromLengths()
//	derives ceil(max(lengths)/10), clamped to [1, MaxBins].
//
// 〰️ Smooth
//
//	Savitzky–Golay smoothing: each point is replaced by the value at that
//	point of the least-squares polynomial of the given order fitted over a
//	window of neighbours. Near the edges the nearest full window is used
//	(no padding). A window that does not fit the data is shrunk to the
//	largest odd value below len(y).
//
// Determinism: pure functions, no randomness, no shared state.
package distribution
