package pairsort

import (
	"fmt"
	"strings"
)

// Algorithm selects one of the paired sorting strategies.
type Algorithm int

const (
	// Bubble is repeated adjacent-swap passes.
	Bubble Algorithm = iota
	// Insertion is shift-and-insert.
	Insertion
	// Selection is repeated min-find and swap.
	Selection
	// Optimized is the stable O(n log n) merge sort.
	Optimized
)

// algorithmNames are the canonical names, also used as CSV identifiers.
var algorithmNames = [...]string{
	Bubble:    "bubble",
	Insertion: "insertion",
	Selection: "selection",
	Optimized: "optimized",
}

// aliases accepted by ParseAlgorithm in addition to the canonical names.
var aliases = map[string]Algorithm{
	"bubble_sort":    Bubble,
	"insertion_sort": Insertion,
	"selection_sort": Selection,
	"merge":          Optimized,
	"merge_sort":     Optimized,
	"tim_sort":       Optimized,
	"timsort":        Optimized,
}

// Algorithms returns every algorithm in enumeration order.
func Algorithms() []Algorithm {
	return []Algorithm{Bubble, Insertion, Selection, Optimized}
}

// String returns the canonical name.
func (a Algorithm) String() string {
	if a.Valid() {
		return algorithmNames[a]
	}
	return fmt.Sprintf("algorithm(%d)", int(a))
}

// Valid reports whether a belongs to the enumeration.
func (a Algorithm) Valid() bool { return a >= Bubble && a <= Optimized }

// Quadratic reports whether a is one of the O(n²) textbook sorts.
func (a Algorithm) Quadratic() bool { return a == Bubble || a == Insertion || a == Selection }

// Stable reports whether equal keys keep their original relative order.
func (a Algorithm) Stable() bool { return a != Selection }

// ParseAlgorithm maps a canonical name or alias (case-insensitive) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for a, n := range algorithmNames {
		if n == name {
			return Algorithm(a), nil
		}
	}
	if a, ok := aliases[name]; ok {
		return a, nil
	}

	return 0, fmt.Errorf("ParseAlgorithm(%q): %w", s, ErrUnknownAlgorithm)
}

// ParseAlgorithms parses a list of names; an empty list yields Algorithms().
func ParseAlgorithms(names []string) ([]Algorithm, error) {
	if len(names) == 0 {
		return Algorithms(), nil
	}
	out := make([]Algorithm, 0, len(names))
	for _, n := range names {
		a, err := ParseAlgorithm(n)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, nil
}
