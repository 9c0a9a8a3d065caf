// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chainsort/config"
	"github.com/katalvlaran/chainsort/report"
)

// app carries the resolved state shared by all subcommands.
type app struct {
	stdout, stderr io.Writer

	configPath string
	cfg        *config.Config
	log        *slog.Logger

	// overrides maps subcommand names to their flag-over-config hooks.
	overrides map[string]func(*cobra.Command, *config.Config)

	// persistent flag targets; applied over cfg only when changed
	seed      uint64
	path      string
	workers   int
	logLevel  string
	logFormat string
	format    string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdout:    stdout,
		stderr:    stderr,
		overrides: make(map[string]func(*cobra.Command, *config.Config)),
	}
	def := config.Default()

	root := &cobra.Command{
		Use:   "chainbench",
		Short: "Generate Markov symbol chains and benchmark paired sorts on them",
		Long: `chainbench simulates chains over the symbols A, B and C, then times
bubble, insertion, selection and an optimized merge sort ordering chain
lengths while carrying the composition fractions along.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.resolve(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	pf.Uint64Var(&a.seed, "seed", def.Seed, "random seed (0 selects the generator default)")
	pf.StringVar(&a.path, "path", def.Path, "generation path: interpreted or compiled")
	pf.IntVar(&a.workers, "workers", def.Workers, "compiled-path goroutines (0 = GOMAXPROCS)")
	pf.StringVar(&a.logLevel, "log-level", def.Log.Level, "debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", def.Log.Format, "auto, text or json")
	pf.StringVar(&a.format, "format", def.Output.Format, "force csv or tsv output (default: by extension)")

	root.AddCommand(
		newGenerateCmd(a),
		newBenchCmd(a),
		newDistributionCmd(a),
		newConfigCmd(a),
	)

	return root
}

// resolve loads the config file, applies changed flags, validates and
// builds the logger.
func (a *app) resolve(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	if flags.Changed("path") {
		cfg.Path = a.path
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if flags.Changed("format") {
		cfg.Output.Format = a.format
	}
	if fn, ok := a.overrides[cmd.Name()]; ok {
		fn(cmd, cfg)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.log = newLogger(a.stderr, cfg.Log)
	a.log.Debug("configuration resolved", "config", a.configPath, "seed", cfg.Seed, "path", cfg.Path)

	return nil
}

// outputFormat picks the configured format or falls back to the file extension.
func (a *app) outputFormat(path string) report.Format {
	if a.cfg.Output.Format != "" {
		f, err := report.ParseFormat(a.cfg.Output.Format)
		if err == nil {
			return f
		}
	}
	return report.FormatFromPath(path)
}

// writeOutput writes path atomically, or to stdout when path is "-".
func (a *app) writeOutput(path string, write func(io.Writer, report.Format) error) error {
	f := a.outputFormat(path)
	if path == "-" {
		return write(a.stdout, f)
	}
	if err := report.WriteFile(path, func(w io.Writer) error { return write(w, f) }); err != nil {
		return err
	}
	a.log.Info("wrote output", "file", path, "format", f.String())

	return nil
}
