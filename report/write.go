// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/chainsort/benchmark"
	"github.com/katalvlaran/chainsort/chain"
	"github.com/katalvlaran/chainsort/distribution"
)

// BenchmarkHeader is the header row of WriteBenchmark.
var BenchmarkHeader = []string{
	"number_of_chains", "algorithm", "generation_time", "sorting_time", "use_compiled", "repeat", "run_id",
}

// SummaryHeader is the header row of WriteSummary.
var SummaryHeader = []string{
	"number_of_chains", "algorithm", "use_compiled", "count",
	"mean_sorting_time", "stddev_sorting_time", "min_sorting_time", "median_sorting_time", "max_sorting_time",
	"mean_generation_time",
}

// ChainsHeader is the header row of WriteChains.
var ChainsHeader = []string{"chain_id", "length", "freq_A", "freq_B", "freq_C"}

// WriteBenchmark writes one row per record of res, in record order.
func WriteBenchmark(w io.Writer, res *benchmark.Result, f Format) error {
	if res == nil {
		return fmt.Errorf("WriteBenchmark: %w", ErrNilInput)
	}
	id := res.RunID.String()
	return table(w, f, BenchmarkHeader, func(emit func([]string) error) error {
		for _, r := range res.Records {
			err := emit([]string{
				strconv.Itoa(r.Size),
				r.Algorithm.String(),
				seconds(r.GenerationTime),
				seconds(r.SortTime),
				strconv.FormatBool(r.Path == chain.Compiled),
				strconv.Itoa(r.Repeat),
				id,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteSummary writes one row per summary.
func WriteSummary(w io.Writer, sums []benchmark.Summary, f Format) error {
	return table(w, f, SummaryHeader, func(emit func([]string) error) error {
		for _, s := range sums {
			err := emit([]string{
				strconv.Itoa(s.Size),
				s.Algorithm.String(),
				strconv.FormatBool(s.Path == chain.Compiled),
				strconv.Itoa(s.Count),
				seconds(s.MeanSort),
				seconds(s.StdDevSort),
				seconds(s.MinSort),
				seconds(s.MedianSort),
				seconds(s.MaxSort),
				seconds(s.MeanGeneration),
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteChains writes one row per chain.
func WriteChains(w io.Writer, c *chain.Chains, f Format) error {
	if c == nil {
		return fmt.Errorf("WriteChains: %w", ErrNilInput)
	}
	return table(w, f, ChainsHeader, func(emit func([]string) error) error {
		for i := range c.Lengths {
			err := emit([]string{
				strconv.Itoa(i),
				strconv.Itoa(c.Lengths[i]),
				ftoa(c.FreqA[i]),
				ftoa(c.FreqB[i]),
				ftoa(c.FreqC[i]),
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteDistribution writes bin_center,normalized_weight and, when smoothed is
// non-nil, a smoothed_weight column. smoothed must match the bin count.
func WriteDistribution(w io.Writer, h *distribution.Hist, smoothed []float64, f Format) error {
	if h == nil {
		return fmt.Errorf("WriteDistribution: %w", ErrNilInput)
	}
	header := []string{"bin_center", "normalized_weight"}
	if smoothed != nil {
		if len(smoothed) != h.Bins() {
			return fmt.Errorf("WriteDistribution: %d bins, %d smoothed: %w", h.Bins(), len(smoothed), ErrShapeMismatch)
		}
		header = append(header, "smoothed_weight")
	}
	return table(w, f, header, func(emit func([]string) error) error {
		row := make([]string, len(header))
		for k := range h.Centers {
			row[0] = ftoa(h.Centers[k])
			row[1] = ftoa(h.Weights[k])
			if smoothed != nil {
				row[2] = ftoa(smoothed[k])
			}
			if err := emit(row); err != nil {
				return err
			}
		}
		return nil
	})
}
