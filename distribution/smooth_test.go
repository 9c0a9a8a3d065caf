// SPDX-License-Identifier: MIT

package distribution_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chainsort/distribution"
)

// TestSmooth_PreservesPolynomials: a polynomial of degree <= order is its own
// least-squares fit on every window, including the edge windows.
func TestSmooth_PreservesPolynomials(t *testing.T) {
	y := make([]float64, 40)
	for i := range y {
		x := float64(i) / 10
		y[i] = 2 - 3*x + 0.5*x*x*x
	}
	out, err := distribution.Smooth(y, 11, 3)
	require.NoError(t, err)
	require.Len(t, out, len(y))
	for i := range y {
		assert.InDelta(t, y[i], out[i], 1e-8, "i=%d", i)
	}
}

// TestSmooth_MovingAverage: order 0 is a moving average in the interior.
func TestSmooth_MovingAverage(t *testing.T) {
	y := []float64{0, 0, 3, 0, 0, 6, 0, 0}
	out, err := distribution.Smooth(y, 3, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, out[1], 1e-12)
	assert.InDelta(t, 1.0, out[2], 1e-12)
	assert.InDelta(t, 2.0, out[4], 1e-12)
	// edges reuse the first/last full window
	assert.InDelta(t, out[1], out[0], 1e-12)
	assert.InDelta(t, out[6], out[7], 1e-12)
}

// TestSmooth_QuadraticKernel: the interior response to a unit impulse is the
// classic 5-point quadratic kernel (-3, 12, 17, 12, -3)/35.
func TestSmooth_QuadraticKernel(t *testing.T) {
	y := make([]float64, 11)
	y[5] = 1
	out, err := distribution.Smooth(y, 5, 2)
	require.NoError(t, err)
	want := []float64{-3, 12, 17, 12, -3}
	for k, w := range want {
		assert.InDelta(t, w/35, out[3+k], 1e-12, "i=%d", 3+k)
	}
	assert.InDelta(t, 0.0, out[1], 1e-12)
	assert.InDelta(t, 0.0, out[9], 1e-12)
}

// TestSmooth_ReducesNoise checks smoothing lowers the residual against a known curve.
func TestSmooth_ReducesNoise(t *testing.T) {
	const n = 200
	clean := make([]float64, n)
	noisy := make([]float64, n)
	rng := rand.New(rand.NewPCG(42, 1))
	for i := range clean {
		clean[i] = math.Sin(float64(i) / 20)
		noisy[i] = clean[i] + 0.2*(rng.Float64()-0.5)
	}
	out, err := distribution.Smooth(noisy, distribution.DefaultWindow, distribution.DefaultOrder)
	require.NoError(t, err)

	var before, after float64
	for i := range clean {
		before += (noisy[i] - clean[i]) * (noisy[i] - clean[i])
		after += (out[i] - clean[i]) * (out[i] - clean[i])
	}
	assert.Less(t, after, before/2)
}

// TestSmooth_ShrinksWindow: window 51 on 10 points becomes 9.
func TestSmooth_ShrinksWindow(t *testing.T) {
	y := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	out, err := distribution.Smooth(y, 51, 3)
	require.NoError(t, err)
	for i := range y {
		assert.InDelta(t, y[i], out[i], 1e-9)
	}
	// 11 points: 51 -> 10 -> 9
	out, err = distribution.Smooth(append(y, 11), 51, 1)
	require.NoError(t, err)
	assert.Len(t, out, 11)
}

func TestSmooth_Errors(t *testing.T) {
	_, err := distribution.Smooth(nil, 5, 2)
	assert.ErrorIs(t, err, distribution.ErrEmptyInput)

	y := make([]float64, 20)
	for _, tc := range []struct{ w, o int }{{4, 2}, {0, 0}, {-3, 1}, {5, -1}, {5, 5}, {3, 7}} {
		_, err = distribution.Smooth(y, tc.w, tc.o)
		assert.ErrorIs(t, err, distribution.ErrInvalidWindow, "w=%d o=%d", tc.w, tc.o)
	}
	// shrinks to 1, order 3 no longer fits
	_, err = distribution.Smooth([]float64{1, 2, 3}, 51, 3)
	assert.ErrorIs(t, err, distribution.ErrInvalidWindow)
	_, err = distribution.Smooth([]float64{1}, 1, 0)
	assert.ErrorIs(t, err, distribution.ErrInvalidWindow)
}
