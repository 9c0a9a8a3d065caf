// SPDX-License-Identifier: MIT

// options.go: functional options for Generate.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs
//     (nil model, negative worker count). Generate itself never panics.
//   • Determinism is explicit: seeding goes through WithSeed; seed==0 maps
//     to DefaultSeed.
//   • No hidden globals; everything flows through config.

package chain

import (
	"runtime"

	"github.com/katalvlaran/chainsort/probability"
)

// Option customises a Generate call.
type Option func(*config)

// config is the resolved option set.
type config struct {
	path    Path
	seed    uint64
	model   *probability.Model
	workers int
}

// newConfig applies opts over the defaults: Interpreted path, DefaultSeed,
// probability.Default(), GOMAXPROCS workers.
func newConfig(opts ...Option) config {
	c := config{
		path:    Interpreted,
		seed:    DefaultSeed,
		workers: 0,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.model == nil {
		c.model = probability.Default()
	}
	if c.workers == 0 {
		c.workers = runtime.GOMAXPROCS(0)
	}

	return c
}

// WithPath selects the execution path.
func WithPath(p Path) Option {
	return func(c *config) { c.path = p }
}

// WithSeed fixes the random seed. Zero selects DefaultSeed.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.seed = seedOrDefault(seed) }
}

// WithModel overrides the probability model. Panics on nil.
func WithModel(m *probability.Model) Option {
	if m == nil {
		panic("chain: WithModel(nil)")
	}
	return func(c *config) { c.model = m }
}

// WithWorkers bounds the goroutines used by the Compiled path.
// Zero means GOMAXPROCS. Panics on negative values.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("chain: WithWorkers(n<0)")
	}
	return func(c *config) { c.workers = n }
}
