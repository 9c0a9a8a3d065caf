// SPDX-License-Identifier: MIT

// Package report writes benchmark records, summaries, chains and
// distributions as CSV or TSV.
//
// Every writer emits a header row followed by one row per item, flushes, and
// returns the first write error. Durations are written in seconds, floats in
// the shortest representation that round-trips ('g', -1).
//
// WriteFile writes through a temporary file in the destination directory and
// renames it into place only when the writer callback succeeds, so a failed
// run never leaves a partial file behind.
package report
