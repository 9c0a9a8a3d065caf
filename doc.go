// Package chainsort simulates a three-symbol Markov chain process and
// benchmarks paired sorting algorithms on its output.
//
// 🚀 What is chainsort?
//
//	A small library plus a CLI that brings together:
//		• probability: transition and continuation probabilities from rate constants
//		• chain: chain generation on an interpreted and a compiled, parallel path
//		• pairsort: bubble, insertion, selection and optimized merge sorts that
//		  reorder a satellite slice together with the keys
//		• benchmark: timed runs over sizes and repeats, summaries, growth exponents
//		• distribution: length-weighted composition histograms, Savitzky–Golay smoothing
//		• report: CSV/TSV export
//		• config: YAML configuration with validation
//
// ✨ Guarantees
//
//   - Reproducible: the same seed gives the same chains on each path, and the
//     compiled path's output does not depend on the worker count.
//   - Explicit errors: sentinel errors matched with errors.Is; algorithms
//     never panic on user input.
//   - Quiet by default: library logging goes through an injected *slog.Logger.
//
// Layout:
//
//	probability/    : model constants, transition table, stationary composition
//	chain/          : Generate, Chains, Stats, seed derivation
//	pairsort/       : generic paired sorts
//	benchmark/      : Run, Summarize, Series, GrowthExponent, Prometheus metrics
//	distribution/   : Histogram, Smooth
//	report/         : WriteBenchmark, WriteSummary, WriteChains, WriteDistribution
//	config/         : Config, Load, Validate
//	matrix/         : Dense, Mul, Transpose, MatVec, LU, SolveLU
//	cmd/chainbench/ : generate, bench, distribution and config subcommands
//
// Quick example:
//
//	c, _ := chain.Generate(1000, chain.WithSeed(42))
//	_ = pairsort.Sort(pairsort.Optimized, c.Lengths, c.FreqA)
//
//	go install github.com/katalvlaran/chainsort/cmd/chainbench@latest
package chainsort
