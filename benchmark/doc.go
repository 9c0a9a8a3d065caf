// SPDX-License-Identifier: MIT

// Package benchmark drives the chain generator and the paired sorters across
// a list of problem sizes and repeats, recording wall-clock timings.
//
// Run policy:
//   - Chains are regenerated for every (size, repeat) so generation-time
//     variance is captured; the seed of each batch is derived from the run
//     seed, which keeps a whole run reproducible.
//   - Every algorithm sorts a fresh copy of (Lengths, FreqA), or with
//     WithAllFractions a copy of Lengths carrying all three fractions, so no
//     algorithm ever sees data already sorted by another.
//   - Any error, including a sort that leaves keys out of order, aborts the
//     run and no Result is returned.
//
// Records come back in generation order: size-major, then repeat, then
// algorithm. Summarize, Series and GrowthExponent turn them into per-size
// statistics, plot-ready series and log-log scaling slopes.
//
// Observability: an injected *slog.Logger receives progress lines (silent by
// default) and an optional *Metrics exports Prometheus histograms.
package benchmark
