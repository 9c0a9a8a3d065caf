// SPDX-License-Identifier: MIT

package chain

import (
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/chainsort/probability"
)

// chunksPerWorker splits the work finer than one chunk per worker so that
// long chains in one chunk do not leave the other workers idle.
const chunksPerWorker = 4

// kernel is the flattened form of the model used by the Compiled path.
type kernel struct {
	cont [probability.NumSymbols]float64
	ab   [probability.NumSymbols]float64
	abc  [probability.NumSymbols]float64
}

func newKernel(m *probability.Model) kernel {
	var k kernel
	for _, s := range probability.Symbols {
		k.cont[s] = m.Continue(s)
		k.ab[s], k.abc[s] = m.Thresholds(s)
	}
	return k
}

// generateCompiled splits [0,n) into contiguous chunks and walks them in
// parallel. Chain i always draws from stream i of cfg.seed.
func generateCompiled(out *Chains, cfg config) error {
	n := len(out.Lengths)
	k := newKernel(cfg.model)

	workers := min(cfg.workers, n)
	chunks := min(n, workers*chunksPerWorker)
	chunkSize := (n + chunks - 1) / chunks

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		g.Go(func() error {
			k.run(out, cfg.seed, start, end)
			return nil
		})
	}

	return g.Wait()
}

// run walks chains [start,end) with one re-seeded PCG.
func (k *kernel) run(out *Chains, seed uint64, start, end int) {
	src := &rand.PCG{}
	rng := rand.New(src)

	var (
		i      int
		length int
		last   int
		counts [3]int
	)
	for i = start; i < end; i++ {
		seedStream(src, seed, uint64(i))
		length = 1
		counts = [3]int{1, 0, 0}
		last = 0
		for rng.Float64() <= k.cont[last] {
			length++
			r := rng.Float64()
			switch {
			case r <= k.ab[last]:
				last = 0
			case r <= k.abc[last]:
				last = 1
			default:
				last = 2
			}
			counts[last]++
		}
		out.record(i, length, counts)
	}
}
