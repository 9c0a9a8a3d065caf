// SPDX-License-Identifier: MIT

package chain

import (
	"math/rand/v2"

	"github.com/katalvlaran/chainsort/probability"
)

// generateInterpreted runs every chain sequentially from one random stream,
// consulting the model on every step.
func generateInterpreted(out *Chains, cfg config) {
	rng, _ := newStream(cfg.seed, streamInterpreted)
	for i := range out.Lengths {
		length, counts := walk(cfg.model, rng)
		out.record(i, length, counts)
	}
}

// walk grows a single chain until it terminates.
// It returns the chain length and per-symbol counts.
func walk(m *probability.Model, rng *rand.Rand) (int, [3]int) {
	length := 1
	counts := [3]int{probability.A: 1}
	last := probability.A
	for {
		if rng.Float64() > m.Continue(last) {
			return length, counts
		}
		length++
		last = m.Next(last, rng.Float64())
		counts[last]++
	}
}
