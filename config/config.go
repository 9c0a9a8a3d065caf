// SPDX-License-Identifier: MIT

package config

import (
	"github.com/katalvlaran/chainsort/distribution"
	"github.com/katalvlaran/chainsort/probability"
)

// Default values mirror the reference experiment.
const (
	DefaultSeed    uint64 = 42
	DefaultRepeats        = 1
	DefaultChains         = 1000
)

// DefaultSizes are the benchmarked chain counts.
var DefaultSizes = []int{100, 500, 1000}

// Config is the full run configuration.
type Config struct {
	// Seed drives every random stream; zero selects the generator default.
	Seed uint64 `yaml:"seed"`
	// Path is "interpreted" or "compiled" (aliases "sequential", "parallel").
	Path string `yaml:"path" validate:"required,chainpath"`
	// Workers bounds the compiled path's goroutines; 0 means GOMAXPROCS.
	Workers int `yaml:"workers" validate:"gte=0"`

	Benchmark    BenchmarkConfig    `yaml:"benchmark"`
	Distribution DistributionConfig `yaml:"distribution"`
	Model        ModelConfig        `yaml:"model"`
	Output       OutputConfig       `yaml:"output"`
	Log          LogConfig          `yaml:"log"`
}

// BenchmarkConfig drives benchmark.Run.
type BenchmarkConfig struct {
	Sizes   []int `yaml:"sizes" validate:"required,min=1,dive,gt=0"`
	Repeats int   `yaml:"repeats" validate:"gte=1"`
	// Algorithms lists sorter names; empty means all.
	Algorithms   []string `yaml:"algorithms" validate:"dive,sortalg"`
	AllFractions bool     `yaml:"all_fractions"`
}

// DistributionConfig drives the histogram of one symbol's fractions.
type DistributionConfig struct {
	Chains int    `yaml:"chains" validate:"gte=1"`
	Symbol string `yaml:"symbol" validate:"oneof=A B C a b c"`
	// Bins fixes the bin count; 0 derives it from the chain lengths.
	Bins   int `yaml:"bins" validate:"gte=0"`
	Window int `yaml:"smooth_window" validate:"gte=0"`
	Order  int `yaml:"smooth_order" validate:"gte=0"`
}

// ModelConfig overrides the probability model constants.
type ModelConfig struct {
	TotalEvents float64       `yaml:"total_events" validate:"gt=0"`
	Prop        [3]float64    `yaml:"prop" validate:"dive,gte=0"`
	Rate        [3][3]float64 `yaml:"rate"`
	Init        [3]float64    `yaml:"init" validate:"dive,gte=0"`
	FreqFactor  [3]float64    `yaml:"freq_factor" validate:"dive,gte=0"`
}

// OutputConfig names the result files; empty entries are skipped.
type OutputConfig struct {
	Benchmark    string `yaml:"benchmark"`
	Summary      string `yaml:"summary"`
	Chains       string `yaml:"chains"`
	Distribution string `yaml:"distribution"`
	Metrics      string `yaml:"metrics"`
	// Format forces "csv" or "tsv"; empty picks by file extension.
	Format string `yaml:"format" validate:"omitempty,oneof=csv tsv"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	// Format is "auto" (text on a terminal, JSON otherwise), "text" or "json".
	Format string `yaml:"format" validate:"oneof=auto text json"`
}

// Default returns the reference configuration.
func Default() *Config {
	c := probability.DefaultConstants()
	return &Config{
		Seed: DefaultSeed,
		Path: "interpreted",
		Benchmark: BenchmarkConfig{
			Sizes:   append([]int(nil), DefaultSizes...),
			Repeats: DefaultRepeats,
		},
		Distribution: DistributionConfig{
			Chains: DefaultChains,
			Symbol: "A",
			Bins:   distribution.DefaultBins,
			Window: distribution.DefaultWindow,
			Order:  distribution.DefaultOrder,
		},
		Model: ModelConfig{
			TotalEvents: c.TotalEvents,
			Prop:        c.Prop,
			Rate:        c.Rate,
			Init:        c.Init,
			FreqFactor:  c.FreqFactor,
		},
		Log: LogConfig{Level: "info", Format: "auto"},
	}
}

// ToConstants converts the model section.
func (m ModelConfig) ToConstants() probability.Constants {
	return probability.Constants{
		TotalEvents: m.TotalEvents,
		Prop:        m.Prop,
		Rate:        m.Rate,
		Init:        m.Init,
		FreqFactor:  m.FreqFactor,
	}
}
