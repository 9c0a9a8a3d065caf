// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/chainsort/benchmark"
	"github.com/katalvlaran/chainsort/config"
	"github.com/katalvlaran/chainsort/report"
)

func newBenchCmd(a *app) *cobra.Command {
	var (
		sizes        []int
		repeats      int
		algorithms   []string
		allFractions bool
		out          string
		summary      string
		metrics      string
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time every sorter on freshly generated chains for each size",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.runBench()
		},
	}
	def := config.Default()
	fl := cmd.Flags()
	fl.IntSliceVar(&sizes, "sizes", def.Benchmark.Sizes, "chain counts to benchmark")
	fl.IntVarP(&repeats, "repeats", "r", def.Benchmark.Repeats, "repetitions per size")
	fl.StringSliceVar(&algorithms, "algorithms", nil, "sorters to time (default all)")
	fl.BoolVar(&allFractions, "all-fractions", false, "carry freq_A, freq_B and freq_C through every sort")
	fl.StringVarP(&out, "out", "o", "", "per-record timings file")
	fl.StringVar(&summary, "summary", "", `per-size summary file ("-" for stdout)`)
	fl.StringVar(&metrics, "metrics-file", "", "Prometheus textfile to write after the run")

	a.overrides[cmd.Name()] = func(cmd *cobra.Command, c *config.Config) {
		f := cmd.Flags()
		if f.Changed("sizes") {
			c.Benchmark.Sizes = slices.Clone(sizes)
		}
		if f.Changed("repeats") {
			c.Benchmark.Repeats = repeats
		}
		if f.Changed("algorithms") {
			c.Benchmark.Algorithms = slices.Clone(algorithms)
		}
		if f.Changed("all-fractions") {
			c.Benchmark.AllFractions = allFractions
		}
		if f.Changed("out") {
			c.Output.Benchmark = out
		}
		if f.Changed("summary") {
			c.Output.Summary = summary
		}
		if f.Changed("metrics-file") {
			c.Output.Metrics = metrics
		}
	}

	return cmd
}

func (a *app) runBench() error {
	cfg := a.cfg
	algs, err := cfg.Algorithms()
	if err != nil {
		return err
	}
	m, err := cfg.NewModel()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	res, err := benchmark.Run(cfg.Benchmark.Sizes, cfg.Benchmark.Repeats,
		benchmark.WithPath(cfg.ChainPath()),
		benchmark.WithSeed(cfg.Seed),
		benchmark.WithWorkers(cfg.Workers),
		benchmark.WithModel(m),
		benchmark.WithAlgorithms(algs...),
		benchmark.WithAllFractions(cfg.Benchmark.AllFractions),
		benchmark.WithLogger(a.log),
		benchmark.WithMetrics(benchmark.NewMetrics(reg)),
	)
	if err != nil {
		return err
	}

	sums := benchmark.Summarize(res.Records)
	var outs []rendered
	if p := cfg.Output.Benchmark; p != "" {
		r, err := a.render(p, func(w io.Writer, f report.Format) error {
			return report.WriteBenchmark(w, res, f)
		})
		if err != nil {
			return err
		}
		outs = append(outs, r)
	}
	if p := cfg.Output.Summary; p != "" {
		r, err := a.render(p, func(w io.Writer, f report.Format) error {
			return report.WriteSummary(w, sums, f)
		})
		if err != nil {
			return err
		}
		outs = append(outs, r)
	}
	if err = a.commit(outs, cfg.Output.Metrics, reg); err != nil {
		return err
	}

	return a.printSummary(res, sums)
}

// rendered is one output formatted in memory, not yet on disk.
type rendered struct {
	path   string
	format report.Format
	data   []byte
}

func (a *app) render(path string, write func(io.Writer, report.Format) error) (rendered, error) {
	f := a.outputFormat(path)
	var buf bytes.Buffer
	if err := write(&buf, f); err != nil {
		return rendered{}, fmt.Errorf("render %s: %w", path, err)
	}
	return rendered{path: path, format: f, data: buf.Bytes()}, nil
}

// commit writes the rendered files and the metrics textfile as a unit: if
// any of them fails, the files already written by this run are removed.
// Stdout ("-") outputs are emitted only after every file is in place.
func (a *app) commit(outs []rendered, metricsPath string, reg *prometheus.Registry) (err error) {
	var written []string
	defer func() {
		if err == nil {
			return
		}
		for _, p := range written {
			if rmErr := os.Remove(p); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
				a.log.Warn("remove partial output", "file", p, "err", rmErr)
			}
		}
	}()

	for _, o := range outs {
		if o.path == "-" {
			continue
		}
		if err = report.WriteFile(o.path, func(w io.Writer) error {
			_, werr := w.Write(o.data)
			return werr
		}); err != nil {
			return err
		}
		written = append(written, o.path)
		a.log.Info("wrote output", "file", o.path, "format", o.format.String())
	}
	if metricsPath != "" {
		if err = prometheus.WriteToTextfile(metricsPath, reg); err != nil {
			return fmt.Errorf("metrics file: %w", err)
		}
		a.log.Info("wrote metrics", "file", metricsPath)
	}
	for _, o := range outs {
		if o.path != "-" {
			continue
		}
		if _, err = a.stdout.Write(o.data); err != nil {
			return err
		}
	}

	return nil
}

// errWriter keeps the first write error and turns later writes into no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

// printSummary writes a human-readable table and the growth exponents.
func (a *app) printSummary(res *benchmark.Result, sums []benchmark.Summary) error {
	w := &errWriter{w: a.stdout}
	w.printf("run %s  path=%s  seed=%d  repeats=%d\n", res.RunID, res.Path, res.Seed, res.Repeats)
	w.printf("%8s  %-10s  %12s  %12s  %12s\n", "chains", "algorithm", "mean_sort_s", "stddev_s", "mean_gen_s")
	for _, s := range sums {
		w.printf("%8d  %-10s  %12.6f  %12.6f  %12.6f\n",
			s.Size, s.Algorithm, s.MeanSort.Seconds(), s.StdDevSort.Seconds(), s.MeanGeneration.Seconds())
	}
	exps := benchmark.Exponents(res.Records)
	for _, alg := range res.Algorithms {
		if k, ok := exps[alg]; ok {
			w.printf("growth %-10s  n^%.2f\n", alg, k)
		}
	}

	return w.err
}
