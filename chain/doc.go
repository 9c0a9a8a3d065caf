// SPDX-License-Identifier: MIT

// Package chain generates three-symbol Markov chains and summarises each one
// by its length and its A/B/C composition fractions.
//
// 🚀 The walk
//
//	Every chain starts as a single A. At each step a uniform r1 decides
//	whether the chain terminates (r1 > continue_last) or grows; a growing
//	chain draws r2 and picks the next symbol from the cumulative transition
//	row of its last symbol. Probabilities come from probability.Model.
//
// ✨ Two execution paths, one semantics
//
//   - Interpreted: one goroutine, one random stream for the whole call,
//     every step goes through the Model accessors.
//   - Compiled: thresholds hoisted into flat arrays, chains split into
//     chunks executed in parallel (errgroup). Each chain owns a PCG stream
//     keyed by (seed, chain index), so results do not depend on the number
//     of workers or on scheduling order.
//
// The two paths draw from different streams and therefore are not
// bit-identical, but their output distributions are the same.
//
// ⚙️ Usage:
//
//	c, err := chain.Generate(1000,
//	    chain.WithPath(chain.Compiled),
//	    chain.WithSeed(42),
//	)
//	lengths, fa, fb, fc := c.Unpack()
//
// Complexity: O(Σ lengths) time, O(numChains) memory.
package chain
