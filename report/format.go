// SPDX-License-Identifier: MIT

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Format selects the field separator.
type Format int

const (
	// CSV separates fields with commas.
	CSV Format = iota
	// TSV separates fields with tabs.
	TSV
)

// String returns "csv" or "tsv".
func (f Format) String() string {
	switch f {
	case CSV:
		return "csv"
	case TSV:
		return "tsv"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseFormat maps "csv" or "tsv" (case-insensitive) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return CSV, nil
	case "tsv", "tab":
		return TSV, nil
	default:
		return CSV, fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
	}
}

// FormatFromPath picks TSV for .tsv/.tab extensions and CSV otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".tab":
		return TSV
	default:
		return CSV
	}
}

func (f Format) comma() (rune, error) {
	switch f {
	case CSV:
		return ',', nil
	case TSV:
		return '\t', nil
	default:
		return 0, fmt.Errorf("%v: %w", f, ErrUnknownFormat)
	}
}

// table is the shared write loop: header, rows, flush.
func table(w io.Writer, f Format, header []string, rows func(emit func([]string) error) error) error {
	comma, err := f.comma()
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err = cw.Write(header); err != nil {
		return err
	}
	if err = rows(cw.Write); err != nil {
		return err
	}
	cw.Flush()

	return cw.Error()
}

func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
func seconds(d time.Duration) string { return ftoa(d.Seconds()) }
