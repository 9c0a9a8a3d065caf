// SPDX-License-Identifier: MIT

package benchmark_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chainsort/benchmark"
	"github.com/katalvlaran/chainsort/chain"
	"github.com/katalvlaran/chainsort/pairsort"
)

// stepClock returns a clock that advances by step on every call.
func stepClock(step time.Duration) func() time.Time {
	t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

// TestRun_RecordShape checks record count, order and field values.
func TestRun_RecordShape(t *testing.T) {
	sizes := []int{10, 20}
	algs := []pairsort.Algorithm{pairsort.Bubble, pairsort.Optimized}
	res, err := benchmark.Run(sizes, 3,
		benchmark.WithSeed(42),
		benchmark.WithAlgorithms(algs...),
		benchmark.WithClock(stepClock(time.Millisecond)),
	)
	require.NoError(t, err)
	require.Len(t, res.Records, len(sizes)*3*len(algs))
	assert.NotEqual(t, uuid.Nil, res.RunID)
	assert.Equal(t, sizes, res.Sizes)
	assert.Equal(t, uint64(42), res.Seed)
	assert.True(t, res.Finished.After(res.Started))

	i := 0
	for _, n := range sizes {
		for rep := 0; rep < 3; rep++ {
			for _, a := range algs {
				r := res.Records[i]
				assert.Equal(t, n, r.Size)
				assert.Equal(t, rep, r.Repeat)
				assert.Equal(t, a, r.Algorithm)
				assert.Equal(t, chain.Interpreted, r.Path)
				assert.Equal(t, time.Millisecond, r.SortTime)
				assert.Equal(t, time.Millisecond, r.GenerationTime)
				i++
			}
		}
	}
}

func TestRun_InvalidArguments(t *testing.T) {
	cases := []struct {
		name    string
		sizes   []int
		repeats int
	}{
		{"no sizes", nil, 1},
		{"zero size", []int{10, 0}, 1},
		{"negative size", []int{-5}, 1},
		{"zero repeats", []int{10}, 0},
		{"negative repeats", []int{10}, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := benchmark.Run(tc.sizes, tc.repeats)
			assert.ErrorIs(t, err, benchmark.ErrInvalidArgument)
			assert.Nil(t, res)
		})
	}
}

func TestRun_UnknownPath(t *testing.T) {
	_, err := benchmark.Run([]int{5}, 1, benchmark.WithPath(chain.Path(7)))
	assert.ErrorIs(t, err, chain.ErrUnknownPath)
}

// TestRun_BothPathsAllFractions exercises the triple satellite on both paths.
func TestRun_BothPathsAllFractions(t *testing.T) {
	for _, p := range []chain.Path{chain.Interpreted, chain.Compiled} {
		res, err := benchmark.Run([]int{50}, 2,
			benchmark.WithPath(p),
			benchmark.WithWorkers(2),
			benchmark.WithAllFractions(true),
		)
		require.NoError(t, err, p.String())
		assert.Len(t, res.Records, 2*len(pairsort.Algorithms()))
		for _, r := range res.Records {
			assert.Equal(t, p, r.Path)
			assert.GreaterOrEqual(t, r.SortTime, time.Duration(0))
		}
	}
}

// TestRun_Metrics verifies the collectors see one observation per record.
func TestRun_Metrics(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	m := benchmark.NewMetrics(reg)
	res, err := benchmark.Run([]int{8, 16}, 2,
		benchmark.WithAlgorithms(pairsort.Insertion, pairsort.Selection),
		benchmark.WithMetrics(m),
	)
	require.NoError(t, err)
	require.Len(t, res.Records, 8)

	assert.Equal(t, 5, testutil.CollectAndCount(reg,
		"chainsort_generation_seconds", "chainsort_sort_seconds", "chainsort_records_total"))

	const want = `
# HELP chainsort_records_total Benchmark records produced by algorithm
# TYPE chainsort_records_total counter
chainsort_records_total{algorithm="insertion"} 4
chainsort_records_total{algorithm="selection"} 4
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want), "chainsort_records_total"))
}

func TestRun_Logs(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	res, err := benchmark.Run([]int{5}, 1, benchmark.WithLogger(l), benchmark.WithAlgorithms(pairsort.Bubble))
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `"msg":"benchmark started"`)
	assert.Contains(t, out, `"msg":"batch done"`)
	assert.Contains(t, out, `"run_id":"`+res.RunID.String()+`"`)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { benchmark.WithAlgorithms() })
	assert.Panics(t, func() { benchmark.WithAlgorithms(pairsort.Algorithm(99)) })
	assert.Panics(t, func() { benchmark.WithWorkers(-1) })
	assert.Panics(t, func() { benchmark.WithModel(nil) })
	assert.Panics(t, func() { benchmark.WithLogger(nil) })
	assert.Panics(t, func() { benchmark.WithClock(nil) })
	assert.NotPanics(t, func() { benchmark.WithMetrics(nil) })
}

// TestRun_Scaling checks that the quadratic sorts grow faster than the
// optimized one across the default sizes. Wall-clock based, so skipped in -short.
func TestRun_Scaling(t *testing.T) {
	if testing.Short() {
		t.Skip("wall-clock scaling")
	}
	res, err := benchmark.Run([]int{100, 500, 1000}, 3,
		benchmark.WithAlgorithms(pairsort.Bubble, pairsort.Insertion, pairsort.Selection, pairsort.Optimized),
		benchmark.WithSeed(42),
	)
	require.NoError(t, err)
	k := benchmark.Exponents(res.Records)
	require.Contains(t, k, pairsort.Optimized)
	for _, alg := range []pairsort.Algorithm{pairsort.Bubble, pairsort.Insertion, pairsort.Selection} {
		require.Contains(t, k, alg)
		assert.Greater(t, k[alg], k[pairsort.Optimized], "%s grows faster than optimized", alg)
	}
	assert.Greater(t, k[pairsort.Bubble], 1.4)
}
