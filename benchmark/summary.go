// SPDX-License-Identifier: MIT

package benchmark

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/katalvlaran/chainsort/pairsort"
)

type cellKey struct {
	size int
	alg  pairsort.Algorithm
}

// Summarize aggregates records per (Size, Algorithm), ordered by size and
// then algorithm. StdDevSort is the population standard deviation.
//
// Complexity: O(n log n).
func Summarize(records []Record) []Summary {
	cells := make(map[cellKey][]Record)
	for _, r := range records {
		k := cellKey{r.Size, r.Algorithm}
		cells[k] = append(cells[k], r)
	}

	out := make([]Summary, 0, len(cells))
	for k, rs := range cells {
		out = append(out, summarizeCell(k, rs))
	}
	slices.SortFunc(out, func(a, b Summary) int {
		if c := cmp.Compare(a.Size, b.Size); c != 0 {
			return c
		}
		return cmp.Compare(a.Algorithm, b.Algorithm)
	})

	return out
}

func summarizeCell(k cellKey, rs []Record) Summary {
	s := Summary{Size: k.size, Algorithm: k.alg, Path: rs[0].Path, Count: len(rs)}
	sorts := make([]time.Duration, len(rs))
	var sum, gen float64
	for i, r := range rs {
		sorts[i] = r.SortTime
		sum += float64(r.SortTime)
		gen += float64(r.GenerationTime)
	}
	n := float64(len(rs))
	mean := sum / n

	var ss float64
	for _, d := range sorts {
		dd := float64(d) - mean
		ss += dd * dd
	}
	slices.Sort(sorts)

	s.MeanSort = time.Duration(mean)
	s.StdDevSort = time.Duration(math.Sqrt(ss / n))
	s.MinSort = sorts[0]
	s.MaxSort = sorts[len(sorts)-1]
	s.MedianSort = median(sorts)
	s.MeanGeneration = time.Duration(gen / n)

	return s
}

// median of a sorted, non-empty slice.
func median(sorted []time.Duration) time.Duration {
	m := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[m]
	}
	return (sorted[m-1] + sorted[m]) / 2
}

// Series returns the distinct sizes in ascending order and, per algorithm,
// the mean sort time in seconds at each of those sizes. A size where an
// algorithm has no records yields NaN. This is the shape consumed by plotting.
func Series(records []Record) ([]int, map[pairsort.Algorithm][]float64) {
	sums := Summarize(records)

	var sizes []int
	for _, s := range sums {
		if len(sizes) == 0 || sizes[len(sizes)-1] != s.Size {
			sizes = append(sizes, s.Size)
		}
	}
	index := make(map[int]int, len(sizes))
	for i, n := range sizes {
		index[n] = i
	}

	series := make(map[pairsort.Algorithm][]float64)
	for _, s := range sums {
		ys, ok := series[s.Algorithm]
		if !ok {
			ys = make([]float64, len(sizes))
			for i := range ys {
				ys[i] = math.NaN()
			}
			series[s.Algorithm] = ys
		}
		ys[index[s.Size]] = s.MeanSort.Seconds()
	}

	return sizes, series
}

// GenerationSeries returns the mean generation time in seconds per distinct size.
func GenerationSeries(records []Record) ([]int, []float64) {
	type acc struct {
		sum float64
		n   int
	}
	bySize := make(map[int]*acc)
	seen := make(map[[2]int]bool)
	for _, r := range records {
		// One generation per (size, repeat); skip the other algorithms of the batch.
		k := [2]int{r.Size, r.Repeat}
		if seen[k] {
			continue
		}
		seen[k] = true
		a := bySize[r.Size]
		if a == nil {
			a = &acc{}
			bySize[r.Size] = a
		}
		a.sum += r.GenerationTime.Seconds()
		a.n++
	}

	sizes := make([]int, 0, len(bySize))
	for n := range bySize {
		sizes = append(sizes, n)
	}
	slices.Sort(sizes)
	ys := make([]float64, len(sizes))
	for i, n := range sizes {
		ys[i] = bySize[n].sum / float64(bySize[n].n)
	}

	return sizes, ys
}

// GrowthExponent fits log(seconds) = k·log(size) + c by least squares and
// returns k: about 2 for the quadratic sorts, slightly above 1 for
// the optimized sort.
//
// Errors: ErrInvalidArgument when the slices differ in length, fewer than two
// distinct sizes are given, or any size/time is not positive.
func GrowthExponent(sizes []int, seconds []float64) (float64, error) {
	if len(sizes) != len(seconds) {
		return 0, fmt.Errorf("GrowthExponent: sizes=%d seconds=%d: %w", len(sizes), len(seconds), ErrInvalidArgument)
	}
	var sx, sy, sxx, sxy float64
	distinct := make(map[int]struct{}, len(sizes))
	for i := range sizes {
		if sizes[i] <= 0 || !(seconds[i] > 0) || math.IsInf(seconds[i], 0) {
			return 0, fmt.Errorf("GrowthExponent: point %d (%d, %g): %w", i, sizes[i], seconds[i], ErrInvalidArgument)
		}
		distinct[sizes[i]] = struct{}{}
		x, y := math.Log(float64(sizes[i])), math.Log(seconds[i])
		sx += x
		sy += y
		sxx += x * x
		sxy += x * y
	}
	if len(distinct) < 2 {
		return 0, fmt.Errorf("GrowthExponent: need two distinct sizes: %w", ErrInvalidArgument)
	}
	n := float64(len(sizes))

	return (n*sxy - sx*sy) / (n*sxx - sx*sx), nil
}

// Exponents applies GrowthExponent to every algorithm of Series(records).
// Algorithms whose series cannot be fitted are omitted.
func Exponents(records []Record) map[pairsort.Algorithm]float64 {
	sizes, series := Series(records)
	out := make(map[pairsort.Algorithm]float64, len(series))
	for alg, ys := range series {
		if k, err := GrowthExponent(sizes, ys); err == nil {
			out[alg] = k
		}
	}

	return out
}
