// SPDX-License-Identifier: MIT

package benchmark

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/chainsort/chain"
	"github.com/katalvlaran/chainsort/pairsort"
)

const opRun = "Run"

// fractions carries all three composition fractions as one satellite value.
type fractions [3]float64

// Run benchmarks every configured algorithm for each size, repeats times.
//
// Implementation:
//   - Stage 1: validate sizes and repeats, resolve options.
//   - Stage 2: for each (size, repeat): derive the batch seed, generate and
//     time the chains.
//   - Stage 3: for each algorithm: copy the batch, time the paired sort,
//     check the keys are ordered, append a Record.
//
// Errors:
//   - ErrInvalidArgument for an empty size list, size <= 0 or repeats <= 0.
//   - ErrSortFailed if a sorter leaves keys out of order.
//   - Wrapped generator and sorter errors.
//
// Any error aborts the whole run; no partial Result is returned.
//
// Complexity: dominated by the quadratic sorts, O(repeats · Σ size²).
func Run(sizes []int, repeats int, opts ...Option) (*Result, error) {
	// Stage 1: validate.
	if len(sizes) == 0 {
		return nil, fmt.Errorf("%s: no sizes: %w", opRun, ErrInvalidArgument)
	}
	for _, n := range sizes {
		if n <= 0 {
			return nil, fmt.Errorf("%s: size=%d: %w", opRun, n, ErrInvalidArgument)
		}
	}
	if repeats <= 0 {
		return nil, fmt.Errorf("%s: repeats=%d: %w", opRun, repeats, ErrInvalidArgument)
	}
	cfg := newConfig(opts...)

	res := &Result{
		RunID:      uuid.New(),
		Path:       cfg.path,
		Seed:       cfg.seed,
		Sizes:      slices.Clone(sizes),
		Repeats:    repeats,
		Algorithms: slices.Clone(cfg.algorithms),
		Started:    cfg.clock(),
		Records:    make([]Record, 0, len(sizes)*repeats*len(cfg.algorithms)),
	}
	log := cfg.logger.With("run_id", res.RunID.String(), "path", cfg.path.String())
	log.Info("benchmark started", "sizes", sizes, "repeats", repeats, "algorithms", len(cfg.algorithms))

	for _, size := range sizes {
		for rep := 0; rep < repeats; rep++ {
			// Stage 2: generate.
			seed := batchSeed(cfg.seed, size, rep)
			t0 := cfg.clock()
			chains, err := chain.Generate(size, cfg.generateOptions(seed)...)
			gen := cfg.clock().Sub(t0)
			if err != nil {
				return nil, fmt.Errorf("%s: size=%d repeat=%d: %w", opRun, size, rep, err)
			}
			cfg.metrics.observeGeneration(cfg.path, gen)

			// Stage 3: sort.
			for _, alg := range cfg.algorithms {
				d, err := timeSort(cfg, alg, chains)
				if err != nil {
					return nil, fmt.Errorf("%s: size=%d repeat=%d: %w", opRun, size, rep, err)
				}
				res.Records = append(res.Records, Record{
					Size:           size,
					Algorithm:      alg,
					Path:           cfg.path,
					Repeat:         rep,
					GenerationTime: gen,
					SortTime:       d,
				})
				cfg.metrics.observeSort(alg, cfg.path, d)
			}
			log.Debug("batch done", "size", size, "repeat", rep, "generation", gen)
		}
		log.Info("size done", "size", size)
	}

	res.Finished = cfg.clock()
	log.Info("benchmark finished", "records", len(res.Records), "elapsed", res.Finished.Sub(res.Started))

	return res, nil
}

// batchSeed derives the seed of one (size, repeat) batch from the run seed.
func batchSeed(seed uint64, size, rep int) uint64 {
	return chain.DeriveSeed(chain.DeriveSeed(seed, uint64(size)), uint64(rep))
}

// timeSort copies the batch and times one paired sort on the copy.
func timeSort(cfg config, alg pairsort.Algorithm, c *chain.Chains) (time.Duration, error) {
	keys := slices.Clone(c.Lengths)
	if !cfg.allFractions {
		return timed(cfg.clock, alg, keys, slices.Clone(c.FreqA))
	}
	sat := make([]fractions, len(keys))
	for i := range sat {
		sat[i] = fractions{c.FreqA[i], c.FreqB[i], c.FreqC[i]}
	}

	return timed(cfg.clock, alg, keys, sat)
}

// timed sorts (keys, sat) with alg and returns the elapsed time.
func timed[V any](now func() time.Time, alg pairsort.Algorithm, keys []int, sat []V) (time.Duration, error) {
	t0 := now()
	err := pairsort.Sort(alg, keys, sat)
	d := now().Sub(t0)
	if err != nil {
		return 0, err
	}
	if !pairsort.IsSorted(keys) {
		return 0, fmt.Errorf("%v: %w", alg, ErrSortFailed)
	}

	return d, nil
}
