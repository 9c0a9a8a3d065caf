// SPDX-License-Identifier: MIT

package benchmark

import (
	"log/slog"
	"time"

	"github.com/katalvlaran/chainsort/chain"
	"github.com/katalvlaran/chainsort/pairsort"
	"github.com/katalvlaran/chainsort/probability"
)

// Option customises Run. Constructors panic on nonsense values.
type Option func(*config)

type config struct {
	path         chain.Path
	seed         uint64
	workers      int
	model        *probability.Model
	algorithms   []pairsort.Algorithm
	allFractions bool
	logger       *slog.Logger
	metrics      *Metrics
	clock        func() time.Time
}

func newConfig(opts ...Option) config {
	c := config{
		path:       chain.Interpreted,
		seed:       chain.DefaultSeed,
		algorithms: pairsort.Algorithms(),
		logger:     slog.New(slog.DiscardHandler),
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.model == nil {
		c.model = probability.Default()
	}

	return c
}

// generateOptions forwards the generator-related settings.
func (c config) generateOptions(seed uint64) []chain.Option {
	return []chain.Option{
		chain.WithPath(c.path),
		chain.WithSeed(seed),
		chain.WithModel(c.model),
		chain.WithWorkers(c.workers),
	}
}

// WithPath selects the generation path.
func WithPath(p chain.Path) Option {
	return func(c *config) { c.path = p }
}

// WithSeed fixes the run seed; batch seeds are derived from it. Zero selects chain.DefaultSeed.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		if seed == 0 {
			seed = chain.DefaultSeed
		}
		c.seed = seed
	}
}

// WithWorkers bounds the Compiled path's goroutines. Zero means GOMAXPROCS.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("benchmark: WithWorkers(n<0)")
	}
	return func(c *config) { c.workers = n }
}

// WithModel overrides the probability model.
func WithModel(m *probability.Model) Option {
	if m == nil {
		panic("benchmark: WithModel(nil)")
	}
	return func(c *config) { c.model = m }
}

// WithAlgorithms restricts and orders the timed sorters.
// Panics on an empty list or an unknown algorithm.
func WithAlgorithms(algs ...pairsort.Algorithm) Option {
	if len(algs) == 0 {
		panic("benchmark: WithAlgorithms()")
	}
	for _, a := range algs {
		if !a.Valid() {
			panic("benchmark: WithAlgorithms: unknown algorithm " + a.String())
		}
	}
	algs = append([]pairsort.Algorithm(nil), algs...)
	return func(c *config) { c.algorithms = algs }
}

// WithAllFractions makes every sort carry FreqA, FreqB and FreqC together
// instead of FreqA alone.
func WithAllFractions(on bool) Option {
	return func(c *config) { c.allFractions = on }
}

// WithLogger routes progress logs to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("benchmark: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithMetrics records observations into m. A nil m disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(c *config) { c.metrics = m }
}

// WithClock replaces time.Now, mainly for tests. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("benchmark: WithClock(nil)")
	}
	return func(c *config) { c.clock = now }
}
