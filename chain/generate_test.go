// SPDX-License-Identifier: MIT

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chainsort/chain"
	"github.com/katalvlaran/chainsort/probability"
)

var paths = []chain.Path{chain.Interpreted, chain.Compiled}

// TestGenerate_Lengths checks that all four slices have exactly numChains entries.
func TestGenerate_Lengths(t *testing.T) {
	for _, p := range paths {
		for _, n := range []int{0, 1, 7, 100} {
			c, err := chain.Generate(n, chain.WithPath(p), chain.WithSeed(7))
			require.NoError(t, err, "path=%v n=%d", p, n)
			lengths, fa, fb, fc := c.Unpack()
			assert.Len(t, lengths, n)
			assert.Len(t, fa, n)
			assert.Len(t, fb, n)
			assert.Len(t, fc, n)
			assert.Equal(t, n, c.Len())
		}
	}
}

// TestGenerate_Zero verifies empty (not nil) slices and no error.
func TestGenerate_Zero(t *testing.T) {
	for _, p := range paths {
		c, err := chain.Generate(0, chain.WithPath(p))
		require.NoError(t, err)
		assert.NotNil(t, c.Lengths)
		assert.Empty(t, c.Lengths)
		assert.Empty(t, c.FreqA)
		assert.Empty(t, c.FreqB)
		assert.Empty(t, c.FreqC)
	}
}

func TestGenerate_Negative(t *testing.T) {
	for _, p := range paths {
		_, err := chain.Generate(-1, chain.WithPath(p))
		assert.ErrorIs(t, err, chain.ErrInvalidArgument)
	}
}

func TestGenerate_UnknownPath(t *testing.T) {
	_, err := chain.Generate(3, chain.WithPath(chain.Path(9)))
	assert.ErrorIs(t, err, chain.ErrUnknownPath)
}

// TestGenerate_Invariants checks length >= 1 and fractions summing to 1 on both paths.
func TestGenerate_Invariants(t *testing.T) {
	for _, p := range paths {
		t.Run(p.String(), func(t *testing.T) {
			c, err := chain.Generate(400, chain.WithPath(p), chain.WithSeed(11))
			require.NoError(t, err)
			require.NoError(t, c.Validate())
			for i := range c.Lengths {
				assert.GreaterOrEqual(t, c.Lengths[i], 1)
				assert.InDelta(t, 1.0, c.FreqA[i]+c.FreqB[i]+c.FreqC[i], 1e-9)
			}
		})
	}
}

// TestGenerate_SeedDeterminism locks reproducibility per path.
func TestGenerate_SeedDeterminism(t *testing.T) {
	for _, p := range paths {
		t.Run(p.String(), func(t *testing.T) {
			a, err := chain.Generate(200, chain.WithPath(p), chain.WithSeed(42))
			require.NoError(t, err)
			b, err := chain.Generate(200, chain.WithPath(p), chain.WithSeed(42))
			require.NoError(t, err)
			assert.Equal(t, a, b, "same seed must yield identical chains")

			d, err := chain.Generate(200, chain.WithPath(p), chain.WithSeed(43))
			require.NoError(t, err)
			assert.NotEqual(t, a.Lengths, d.Lengths, "different seeds should differ")
		})
	}
}

// TestGenerate_ZeroSeedIsDefault verifies the seed==0 policy.
func TestGenerate_ZeroSeedIsDefault(t *testing.T) {
	a, err := chain.Generate(50, chain.WithSeed(0))
	require.NoError(t, err)
	b, err := chain.Generate(50, chain.WithSeed(chain.DefaultSeed))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestGenerate_CompiledWorkerIndependence checks the per-chain stream contract:
// the output is the same for any worker count.
func TestGenerate_CompiledWorkerIndependence(t *testing.T) {
	var ref *chain.Chains
	for _, w := range []int{1, 2, 3, 8, 64} {
		c, err := chain.Generate(257, chain.WithPath(chain.Compiled), chain.WithSeed(5), chain.WithWorkers(w))
		require.NoError(t, err, "workers=%d", w)
		if ref == nil {
			ref = c
			continue
		}
		assert.Equal(t, ref, c, "workers=%d", w)
	}
}

// TestGenerate_PathsAgreeStatistically compares the two paths' distributions.
// With the default constants the mean length is about 1000 with a standard
// deviation of about 1000, so 3000 chains give a ~2.6% standard error on the
// difference of means; 12% is beyond 4.5 sigma.
func TestGenerate_PathsAgreeStatistically(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical comparison")
	}
	const n = 3000
	in, err := chain.Generate(n, chain.WithPath(chain.Interpreted), chain.WithSeed(2024))
	require.NoError(t, err)
	co, err := chain.Generate(n, chain.WithPath(chain.Compiled), chain.WithSeed(2024))
	require.NoError(t, err)

	si, sc := in.Stats(), co.Stats()
	assert.InEpsilon(t, si.MeanLength, sc.MeanLength, 0.12)
	assert.InDelta(t, 1000, si.MeanLength, 200)
	assert.InDelta(t, 1000, sc.MeanLength, 200)

	pi, err := probability.Default().StationaryComposition()
	require.NoError(t, err)
	for k := 0; k < probability.NumSymbols; k++ {
		assert.InDelta(t, pi[k], si.Composition[k], 0.01, "interpreted composition %d", k)
		assert.InDelta(t, pi[k], sc.Composition[k], 0.01, "compiled composition %d", k)
	}
}

// TestGenerate_NoContinuation uses a model that always terminates immediately.
func TestGenerate_NoContinuation(t *testing.T) {
	c := probability.DefaultConstants()
	c.FreqFactor = [probability.NumSymbols]float64{}
	m, err := probability.New(c)
	require.NoError(t, err)

	for _, p := range paths {
		out, err := chain.Generate(64, chain.WithPath(p), chain.WithModel(m))
		require.NoError(t, err)
		for i := range out.Lengths {
			assert.Equal(t, 1, out.Lengths[i])
			assert.Equal(t, 1.0, out.FreqA[i])
			assert.Zero(t, out.FreqB[i])
			assert.Zero(t, out.FreqC[i])
		}
	}
}

// TestGenerate_ForcedTransitions uses a model where every step emits B:
// each chain is A followed by length-1 B's.
func TestGenerate_ForcedTransitions(t *testing.T) {
	c := probability.DefaultConstants()
	c.Prop = [probability.NumSymbols]float64{0, 1, 0}
	m, err := probability.New(c)
	require.NoError(t, err)

	for _, p := range paths {
		out, err := chain.Generate(100, chain.WithPath(p), chain.WithModel(m), chain.WithSeed(3))
		require.NoError(t, err)
		for i, l := range out.Lengths {
			assert.InDelta(t, 1/float64(l), out.FreqA[i], 1e-15)
			assert.InDelta(t, float64(l-1)/float64(l), out.FreqB[i], 1e-15)
			assert.Zero(t, out.FreqC[i])
		}
	}
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { chain.WithModel(nil) })
	assert.Panics(t, func() { chain.WithWorkers(-1) })
	assert.NotPanics(t, func() { chain.WithWorkers(0) })
}

func TestParsePath(t *testing.T) {
	cases := map[string]chain.Path{
		"interpreted": chain.Interpreted,
		"Sequential":  chain.Interpreted,
		" compiled ":  chain.Compiled,
		"PARALLEL":    chain.Compiled,
	}
	for in, want := range cases {
		got, err := chain.ParsePath(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := chain.ParsePath("jit")
	assert.ErrorIs(t, err, chain.ErrUnknownPath)
	assert.Equal(t, "interpreted", chain.Interpreted.String())
	assert.Equal(t, "compiled", chain.Compiled.String())
}
