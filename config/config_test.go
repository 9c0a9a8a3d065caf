// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chainsort/chain"
	"github.com/katalvlaran/chainsort/config"
	"github.com/katalvlaran/chainsort/pairsort"
	"github.com/katalvlaran/chainsort/probability"
)

func TestDefault_IsValid(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, uint64(42), c.Seed)
	assert.Equal(t, []int{100, 500, 1000}, c.Benchmark.Sizes)
	assert.Equal(t, chain.Interpreted, c.ChainPath())
	assert.Equal(t, probability.A, c.Symbol())
	assert.Equal(t, probability.DefaultConstants(), c.Model.ToConstants())

	algs, err := c.Algorithms()
	require.NoError(t, err)
	assert.Equal(t, pairsort.Algorithms(), algs)
}

func TestParse_Overlay(t *testing.T) {
	c, err := config.Parse([]byte(`
seed: 7
path: parallel
workers: 4
benchmark:
  sizes: [10, 20]
  repeats: 3
  algorithms: [bubble, tim_sort]
distribution:
  symbol: C
  bins: 0
model:
  prop: [0.5, 0.3, 0.2]
log:
  level: debug
  format: json
`))
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, uint64(7), c.Seed)
	assert.Equal(t, chain.Compiled, c.ChainPath())
	assert.Equal(t, 4, c.Workers)
	assert.Equal(t, []int{10, 20}, c.Benchmark.Sizes)
	assert.Equal(t, 3, c.Benchmark.Repeats)
	assert.Equal(t, probability.C, c.Symbol())
	assert.Equal(t, 0, c.Distribution.Bins)
	assert.Equal(t, [3]float64{0.5, 0.3, 0.2}, c.Model.Prop)
	// untouched keys keep defaults
	assert.Equal(t, probability.DefaultTotalEvents, c.Model.TotalEvents)
	assert.Equal(t, 51, c.Distribution.Window)

	algs, err := c.Algorithms()
	require.NoError(t, err)
	assert.Equal(t, []pairsort.Algorithm{pairsort.Bubble, pairsort.Optimized}, algs)

	m, err := c.NewModel()
	require.NoError(t, err)
	assert.Equal(t, 0.5, m.Constants().Prop[probability.A])
}

func TestParse_Errors(t *testing.T) {
	_, err := config.Parse([]byte("sead: 1\n"))
	assert.Error(t, err, "unknown keys are rejected")
	_, err = config.Parse([]byte("model:\n  prop: [1, 2]\n"))
	assert.Error(t, err, "fixed-size arrays")

	c, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestValidate_Failures(t *testing.T) {
	cases := map[string]func(c *config.Config){
		"no sizes":        func(c *config.Config) { c.Benchmark.Sizes = nil },
		"zero size":       func(c *config.Config) { c.Benchmark.Sizes = []int{10, 0} },
		"zero repeats":    func(c *config.Config) { c.Benchmark.Repeats = 0 },
		"bad path":        func(c *config.Config) { c.Path = "jit" },
		"bad algorithm":   func(c *config.Config) { c.Benchmark.Algorithms = []string{"bogo"} },
		"negative worker": func(c *config.Config) { c.Workers = -2 },
		"bad symbol":      func(c *config.Config) { c.Distribution.Symbol = "D" },
		"zero chains":     func(c *config.Config) { c.Distribution.Chains = 0 },
		"too many bins":   func(c *config.Config) { c.Distribution.Bins = 1 << 20 },
		"even window":     func(c *config.Config) { c.Distribution.Window = 10 },
		"order >= window": func(c *config.Config) { c.Distribution.Window, c.Distribution.Order = 5, 5 },
		"bad format":      func(c *config.Config) { c.Output.Format = "xlsx" },
		"bad log level":   func(c *config.Config) { c.Log.Level = "loud" },
		"negative prop":   func(c *config.Config) { c.Model.Prop[1] = -0.1 },
		"zero rate":       func(c *config.Config) { c.Model.Rate[0][1] = 0 },
		"zero events":     func(c *config.Config) { c.Model.TotalEvents = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := config.Default()
			mutate(c)
			assert.ErrorIs(t, c.Validate(), config.ErrInvalidConfig)
		})
	}

	c := config.Default()
	c.Model.Rate[2][0] = 0
	assert.ErrorIs(t, c.Validate(), probability.ErrConfiguration)

	// All-zero init passes the per-field rules but makes every chain endless.
	c = config.Default()
	c.Model.Init = [3]float64{}
	err := c.Validate()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, probability.ErrConfiguration)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chainbench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 9\nbenchmark:\n  repeats: 2\n"), 0o644))
	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), c.Seed)
	assert.Equal(t, 2, c.Benchmark.Repeats)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshal_RoundTrip(t *testing.T) {
	c := config.Default()
	c.Benchmark.Algorithms = []string{"insertion"}
	data, err := config.Marshal(c)
	require.NoError(t, err)
	back, err := config.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, c, back)
}
