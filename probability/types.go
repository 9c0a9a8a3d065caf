// SPDX-License-Identifier: MIT

package probability

// Symbol identifies one of the three chain symbols.
type Symbol int

const (
	// A is the first symbol; every chain starts with it.
	A Symbol = iota
	// B is the second symbol.
	B
	// C is the third symbol.
	C
)

// NumSymbols is the alphabet size.
const NumSymbols = 3

// Symbols lists the alphabet in canonical order.
var Symbols = [NumSymbols]Symbol{A, B, C}

// String returns "A", "B", "C" or "?" for values outside the alphabet.
func (s Symbol) String() string {
	switch s {
	case A:
		return "A"
	case B:
		return "B"
	case C:
		return "C"
	default:
		return "?"
	}
}

// Valid reports whether s belongs to the alphabet.
func (s Symbol) Valid() bool { return s >= A && s <= C }

// Epsilon is the tolerance used when checking that transition rows sum to 1.
const Epsilon = 1e-9

// Default constants of the chain process.
const (
	DefaultTotalEvents = 1000.0

	DefaultPropA = 0.6
	DefaultPropB = 0.2
	DefaultPropC = 0.2

	DefaultRateAB = 5.0
	DefaultRateAC = 10.0
	DefaultRateBA = 0.2
	DefaultRateBC = 2.0
	DefaultRateCA = 0.1
	DefaultRateCB = 0.5

	DefaultInitA = 0.33
	DefaultInitB = 0.33
	DefaultInitC = 0.34

	DefaultFreqFactorA = 0.9091
	DefaultFreqFactorB = 0.0606
	DefaultFreqFactorC = 0.0303
)

// Constants are the raw inputs of the model. Arrays are indexed by Symbol.
//
// Rate[y][x] is the pairwise rate constant for a Y→X step. The diagonal is
// ignored: the self-rate is always 1.
type Constants struct {
	// TotalEvents is the normalization constant N.
	TotalEvents float64
	// Prop holds the propagation probabilities p_X.
	Prop [NumSymbols]float64
	// Rate holds the pairwise rate constants rate_YX.
	Rate [NumSymbols][NumSymbols]float64
	// Init holds the per-symbol initiation probabilities.
	Init [NumSymbols]float64
	// FreqFactor holds the per-symbol frequency factors f_Y.
	FreqFactor [NumSymbols]float64
}

// DefaultConstants returns the constants of the reference process.
func DefaultConstants() Constants {
	return Constants{
		TotalEvents: DefaultTotalEvents,
		Prop:        [NumSymbols]float64{DefaultPropA, DefaultPropB, DefaultPropC},
		Rate: [NumSymbols][NumSymbols]float64{
			A: {A: 1, B: DefaultRateAB, C: DefaultRateAC},
			B: {A: DefaultRateBA, B: 1, C: DefaultRateBC},
			C: {A: DefaultRateCA, B: DefaultRateCB, C: 1},
		},
		Init:       [NumSymbols]float64{DefaultInitA, DefaultInitB, DefaultInitC},
		FreqFactor: [NumSymbols]float64{DefaultFreqFactorA, DefaultFreqFactorB, DefaultFreqFactorC},
	}
}
