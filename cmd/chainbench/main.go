// SPDX-License-Identifier: MIT

// Command chainbench generates Markov symbol chains, benchmarks paired sorts
// on them and exports timings and composition distributions as CSV/TSV.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "chainbench:", err)
		os.Exit(1)
	}
}
