// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chainsort/chain"
	"github.com/katalvlaran/chainsort/report"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		chains int
		out    string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate chains and write chain_id,length,freq_A,freq_B,freq_C",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if chains < 0 {
				return fmt.Errorf("--chains=%d: %w", chains, chain.ErrInvalidArgument)
			}
			m, err := a.cfg.NewModel()
			if err != nil {
				return err
			}
			t0 := time.Now()
			c, err := chain.Generate(chains,
				chain.WithPath(a.cfg.ChainPath()),
				chain.WithSeed(a.cfg.Seed),
				chain.WithWorkers(a.cfg.Workers),
				chain.WithModel(m),
			)
			if err != nil {
				return err
			}
			st := c.Stats()
			a.log.Info("chains generated", "chains", st.Count, "path", a.cfg.ChainPath().String(),
				"elapsed", time.Since(t0), "mean_length", st.MeanLength, "max_length", st.MaxLength)

			if out == "" {
				_, err = fmt.Fprintf(a.stdout, "chains=%d mean_length=%.1f max_length=%d composition=[%.4f %.4f %.4f]\n",
					st.Count, st.MeanLength, st.MaxLength, st.Composition[0], st.Composition[1], st.Composition[2])
				return err
			}
			return a.writeOutput(out, func(w io.Writer, f report.Format) error {
				return report.WriteChains(w, c, f)
			})
		},
	}
	cmd.Flags().IntVarP(&chains, "chains", "n", 1000, "number of chains")
	cmd.Flags().StringVarP(&out, "out", "o", "", `chains file ("-" for stdout; empty prints a summary line)`)

	return cmd
}
