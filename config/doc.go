// SPDX-License-Identifier: MIT

// Package config holds the chainbench run configuration: what to generate,
// which sorters to time, where to write results and how to log.
//
// A Config starts from Default(), is overlaid by a YAML file (Load) and then
// by command-line flags, and is checked by Validate before use. Validation
// combines go-playground/validator struct tags with a few cross-field rules
// (smoothing order below the window, parsable names).
package config
