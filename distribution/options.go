// SPDX-License-Identifier: MIT

package distribution

const (
	// DefaultBins is the bin count used when no option is given.
	DefaultBins = 100

	// MaxBins bounds the bin count, mostly to keep WithBinsFromLengths sane
	// on very long chains.
	MaxBins = 10_000

	// LengthsPerBin is the divisor of WithBinsFromLengths.
	LengthsPerBin = 10

	// DefaultWindow and DefaultOrder are the smoothing defaults.
	DefaultWindow = 51
	DefaultOrder  = 3
)

// Option customises Histogram.
type Option func(*config)

type config struct {
	bins        int
	fromLengths bool
}

func newConfig(opts ...Option) config {
	c := config{bins: DefaultBins}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithBins fixes the bin count. Out-of-range values are reported by Histogram
// as ErrInvalidBins.
func WithBins(n int) Option {
	return func(c *config) { c.bins, c.fromLengths = n, false }
}

// WithBinsFromLengths derives the bin count from the longest chain:
// ceil(max(lengths)/LengthsPerBin), clamped to [1, MaxBins].
func WithBinsFromLengths() Option {
	return func(c *config) { c.fromLengths = true }
}
