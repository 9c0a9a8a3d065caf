// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chainsort/chain"
	"github.com/katalvlaran/chainsort/config"
	"github.com/katalvlaran/chainsort/distribution"
	"github.com/katalvlaran/chainsort/report"
)

func newDistributionCmd(a *app) *cobra.Command {
	var (
		chains int
		symbol string
		bins   int
		window int
		order  int
		out    string
	)
	cmd := &cobra.Command{
		Use:     "distribution",
		Aliases: []string{"dist"},
		Short:   "Length-weighted distribution of one symbol's fraction, smoothed",
		Args:    cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.runDistribution()
		},
	}
	def := config.Default().Distribution
	fl := cmd.Flags()
	fl.IntVarP(&chains, "chains", "n", def.Chains, "number of chains")
	fl.StringVar(&symbol, "symbol", def.Symbol, "symbol whose fraction is binned: A, B or C")
	fl.IntVar(&bins, "bins", def.Bins, "bin count (0 = ceil(max length / 10))")
	fl.IntVar(&window, "smooth-window", def.Window, "Savitzky-Golay window, odd (0 disables smoothing)")
	fl.IntVar(&order, "smooth-order", def.Order, "Savitzky-Golay polynomial order")
	fl.StringVarP(&out, "out", "o", "-", `distribution file ("-" for stdout)`)

	a.overrides[cmd.Name()] = func(cmd *cobra.Command, c *config.Config) {
		f := cmd.Flags()
		if f.Changed("chains") {
			c.Distribution.Chains = chains
		}
		if f.Changed("symbol") {
			c.Distribution.Symbol = symbol
		}
		if f.Changed("bins") {
			c.Distribution.Bins = bins
		}
		if f.Changed("smooth-window") {
			c.Distribution.Window = window
		}
		if f.Changed("smooth-order") {
			c.Distribution.Order = order
		}
		if f.Changed("out") || c.Output.Distribution == "" {
			c.Output.Distribution = out
		}
	}

	return cmd
}

func (a *app) runDistribution() error {
	cfg := a.cfg
	d := cfg.Distribution
	m, err := cfg.NewModel()
	if err != nil {
		return err
	}
	c, err := chain.Generate(d.Chains,
		chain.WithPath(cfg.ChainPath()),
		chain.WithSeed(cfg.Seed),
		chain.WithWorkers(cfg.Workers),
		chain.WithModel(m),
	)
	if err != nil {
		return err
	}

	binOpt := distribution.WithBinsFromLengths()
	if d.Bins > 0 {
		binOpt = distribution.WithBins(d.Bins)
	}
	h, err := distribution.Histogram(c.Fraction(cfg.Symbol()), c.Lengths, binOpt)
	if err != nil {
		return err
	}

	var smoothed []float64
	if d.Window > 0 {
		smoothed, err = distribution.Smooth(h.Weights, d.Window, d.Order)
		switch {
		case errors.Is(err, distribution.ErrInvalidWindow):
			// Too few bins for the requested polynomial; export the raw histogram.
			a.log.Warn("smoothing skipped", "bins", h.Bins(), "window", d.Window, "order", d.Order, "error", err)
			smoothed = nil
		case err != nil:
			return fmt.Errorf("smooth: %w", err)
		}
	}
	a.log.Info("distribution built", "symbol", cfg.Symbol().String(), "chains", d.Chains,
		"bins", h.Bins(), "smoothed", smoothed != nil)

	return a.writeOutput(cfg.Output.Distribution, func(w io.Writer, f report.Format) error {
		return report.WriteDistribution(w, h, smoothed, f)
	})
}
