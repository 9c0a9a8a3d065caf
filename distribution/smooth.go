// SPDX-License-Identifier: MIT

package distribution

import "fmt"

// Smooth applies a Savitzky–Golay filter of the given window and polynomial
// order to y and returns a new slice.
//
// Implementation:
//   - Stage 1: validate; shrink window to the largest odd value < len(y) if
//     it does not fit.
//   - Stage 2: every window shares the abscissae (j-half)/half, so build the
//     Vandermonde matrix once and LU-factor its normal matrix VᵀV.
//   - Stage 3: for each point pick the window centred on it, or the nearest
//     full window at the edges, solve for the coefficients and evaluate the
//     polynomial at the point.
//
// Errors: ErrEmptyInput for empty y; ErrInvalidWindow for an even or
// non-positive window, a negative order, or order >= window (after shrinking);
// ErrSingular from the factorisation.
//
// Complexity: O(window · order² + order³) once, then O(n · window · order).
func Smooth(y []float64, window, order int) ([]float64, error) {
	// Stage 1
	n := len(y)
	if n == 0 {
		return nil, fmt.Errorf("Smooth: %w", ErrEmptyInput)
	}
	if window < 1 || window%2 == 0 || order < 0 {
		return nil, fmt.Errorf("Smooth: window=%d order=%d: %w", window, order, ErrInvalidWindow)
	}
	if window >= n {
		window = n - 1
		if window%2 == 0 {
			window--
		}
	}
	if window < 1 || order >= window {
		return nil, fmt.Errorf("Smooth: window=%d order=%d len=%d: %w", window, order, n, ErrInvalidWindow)
	}

	// Stage 2
	half := window / 2
	scale := float64(max(half, 1))
	xs := make([]float64, window)
	for j := range xs {
		xs[j] = float64(j-half) / scale
	}
	fitter, err := newPolyFitter(xs, order)
	if err != nil {
		return nil, fmt.Errorf("Smooth: %w", err)
	}

	// Stage 3
	out := make([]float64, n)
	var lo int
	for i := range y {
		lo = min(max(i-half, 0), n-window)
		coef, err := fitter.fit(y[lo : lo+window])
		if err != nil {
			return nil, fmt.Errorf("Smooth: point %d: %w", i, err)
		}
		out[i] = polyEval(coef, float64(i-lo-half)/scale)
	}

	return out, nil
}
