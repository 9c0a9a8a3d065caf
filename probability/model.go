// SPDX-License-Identifier: MIT

package probability

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/chainsort/matrix"
)

const (
	opNew        = "New"
	opStationary = "StationaryComposition"
)

// stationary power-iteration policy.
const (
	stationaryTol     = 1e-12
	stationaryMaxIter = 10000
)

// Model holds the derived probabilities. It is immutable after New.
type Model struct {
	constants Constants

	// cont[y] is the probability that a chain whose last symbol is y grows.
	cont [NumSymbols]float64

	// trans[y][x] = P(y→x).
	trans [NumSymbols][NumSymbols]float64

	// cum[y] holds the cumulative thresholds P(y→A) and P(y→A)+P(y→B).
	cum [NumSymbols][NumSymbols - 1]float64
}

// New derives the continuation and transition tables from c.
//
// Implementation:
//   - Stage 1: validate every constant is finite and non-negative.
//   - Stage 2: continue_Y = f_Y·N / (f_Y·N + init_Y).
//   - Stage 3: P(Y→X) = (p_X/rate_YX) / Σ_Z (p_Z/rate_YZ), rate_YY = 1.
//   - Stage 4: check each row sums to 1 within Epsilon and build cumulative thresholds.
//
// Errors:
//   - ErrDivisionByZero (also matching ErrConfiguration) for a zero rate,
//     a zero continuation denominator or a zero row normaliser.
//   - ErrConfiguration for negative or non-finite constants, a continuation
//     probability that is not strictly below 1 (zero Init, or Init lost in
//     f·N rounding), and rows that do not sum to 1.
//
// Complexity: O(1).
func New(c Constants) (*Model, error) {
	// Stage 1: validate.
	if err := validateConstants(c); err != nil {
		return nil, err
	}

	m := &Model{constants: c}

	// Stage 2: continuation probabilities.
	var y, x Symbol
	for _, y = range Symbols {
		num := c.FreqFactor[y] * c.TotalEvents
		den := num + c.Init[y]
		if den == 0 {
			return nil, divisionByZerof(opNew, "continuation denominator for %s", y)
		}
		m.cont[y] = num / den
		// cont == 1 (init 0, or init negligible against f·N) never terminates.
		if !(m.cont[y] < 1) {
			return nil, fmt.Errorf("%s: continuation after %s is %v, chains would never end: %w",
				opNew, y, m.cont[y], ErrConfiguration)
		}
	}

	// Stage 3: transition rows.
	var weights [NumSymbols]float64
	for _, y = range Symbols {
		var sum float64
		for _, x = range Symbols {
			rate := 1.0
			if x != y {
				rate = c.Rate[y][x]
				if rate == 0 {
					return nil, divisionByZerof(opNew, "rate %s→%s", y, x)
				}
			}
			weights[x] = c.Prop[x] / rate
			sum += weights[x]
		}
		if sum == 0 {
			return nil, divisionByZerof(opNew, "row %s normaliser", y)
		}
		for _, x = range Symbols {
			m.trans[y][x] = weights[x] / sum
		}
	}

	// Stage 4: row sums and cumulative thresholds.
	for _, y = range Symbols {
		row := m.trans[y]
		if s := row[A] + row[B] + row[C]; math.Abs(s-1) > Epsilon {
			return nil, fmt.Errorf("%s: row %s sums to %.12g: %w", opNew, y, s, ErrConfiguration)
		}
		m.cum[y][0] = row[A]
		m.cum[y][1] = row[A] + row[B]
	}

	return m, nil
}

var defaultModel = sync.OnceValues(func() (*Model, error) {
	return New(DefaultConstants())
})

// Default returns the model built from DefaultConstants. It is computed once.
func Default() *Model {
	m, err := defaultModel()
	if err != nil {
		// DefaultConstants are fixed and valid; reaching this is a programming error.
		panic(err)
	}
	return m
}

// Constants returns a copy of the constants the model was built from.
func (m *Model) Constants() Constants { return m.constants }

// Continue returns the continuation probability after symbol s.
func (m *Model) Continue(s Symbol) float64 { return m.cont[s] }

// Transition returns P(from→to).
func (m *Model) Transition(from, to Symbol) float64 { return m.trans[from][to] }

// Row returns the transition row of from, indexed by the next symbol.
func (m *Model) Row(from Symbol) [NumSymbols]float64 { return m.trans[from] }

// Thresholds returns the cumulative thresholds P(from→A) and
// P(from→A)+P(from→B) used by Next.
func (m *Model) Thresholds(from Symbol) (ab, abc float64) {
	return m.cum[from][0], m.cum[from][1]
}

// Next selects the symbol following from for a uniform draw r in [0,1):
// r <= P(from→A) yields A, r <= P(from→A)+P(from→B) yields B, otherwise C.
func (m *Model) Next(from Symbol, r float64) Symbol {
	switch {
	case r <= m.cum[from][0]:
		return A
	case r <= m.cum[from][1]:
		return B
	default:
		return C
	}
}

// StationaryComposition returns the stationary distribution of the
// transition table, found by power iteration from the start state A.
// It describes the long-run composition of very long chains.
//
// Implementation:
//   - Stage 1: load the transition table into a matrix.Dense P and take Pᵀ.
//   - Stage 2: iterate π ← Pᵀ·π until the largest change is below stationaryTol.
//
// Errors: ErrConfiguration if the iteration does not converge, or wrapping
// a matrix error.
//
// Complexity: O(iterations), at most stationaryMaxIter.
func (m *Model) StationaryComposition() ([NumSymbols]float64, error) {
	// Stage 1
	data := make([]float64, 0, NumSymbols*NumSymbols)
	for _, y := range Symbols {
		data = append(data, m.trans[y][:]...)
	}
	p, err := matrix.NewDenseFrom(NumSymbols, NumSymbols, data)
	if err != nil {
		return [NumSymbols]float64{}, fmt.Errorf("%s: %w: %w", opStationary, err, ErrConfiguration)
	}
	pt, err := matrix.Transpose(p)
	if err != nil {
		return [NumSymbols]float64{}, fmt.Errorf("%s: %w: %w", opStationary, err, ErrConfiguration)
	}

	// Stage 2
	pi := []float64{A: 1, B: 0, C: 0}
	var out [NumSymbols]float64
	for iter := 0; iter < stationaryMaxIter; iter++ {
		next, err := matrix.MatVec(pt, pi)
		if err != nil {
			return out, fmt.Errorf("%s: %w: %w", opStationary, err, ErrConfiguration)
		}
		var delta float64
		for x := range next {
			delta = math.Max(delta, math.Abs(next[x]-pi[x]))
		}
		pi = next
		if delta < stationaryTol {
			copy(out[:], pi)
			return out, nil
		}
	}
	copy(out[:], pi)

	return out, fmt.Errorf("%s: no convergence after %d iterations: %w", opStationary, stationaryMaxIter, ErrConfiguration)
}

// validateConstants rejects NaN/Inf and negative values.
func validateConstants(c Constants) error {
	check := func(name string, v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%s: %s=%v must be finite and non-negative: %w", opNew, name, v, ErrConfiguration)
		}
		return nil
	}
	if err := check("TotalEvents", c.TotalEvents); err != nil {
		return err
	}
	for _, y := range Symbols {
		if err := check("Prop["+y.String()+"]", c.Prop[y]); err != nil {
			return err
		}
		if err := check("Init["+y.String()+"]", c.Init[y]); err != nil {
			return err
		}
		if err := check("FreqFactor["+y.String()+"]", c.FreqFactor[y]); err != nil {
			return err
		}
		for _, x := range Symbols {
			if x == y {
				continue
			}
			if err := check("Rate["+y.String()+x.String()+"]", c.Rate[y][x]); err != nil {
				return err
			}
		}
	}

	return nil
}

// divisionByZerof builds an error matching both ErrDivisionByZero and ErrConfiguration.
func divisionByZerof(op, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w: %w", op, fmt.Sprintf(format, args...), ErrDivisionByZero, ErrConfiguration)
}
