// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chainsort/matrix"
)

const eps = 1e-9

func dense(t *testing.T, rows, cols int, data ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows, cols, data)
	require.NoError(t, err)
	return m
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(2, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 7.5))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, posInf()), matrix.ErrNaNInf)

	c := m.Clone()
	require.NoError(t, m.Set(1, 2, 0))
	v, _ = c.At(1, 2)
	assert.Equal(t, 7.5, v, "clone is independent")
}

func TestMul(t *testing.T) {
	a := dense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := dense(t, 3, 2, 7, 8, 9, 10, 11, 12)

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{58, 64}, c.RawRow(0))
	assert.Equal(t, []float64{139, 154}, c.RawRow(1))

	_, err = matrix.Mul(a, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, b)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTranspose(t *testing.T) {
	a := dense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	assert.Equal(t, 3, at.Rows())
	assert.Equal(t, 2, at.Cols())
	assert.Equal(t, []float64{1, 4}, at.RawRow(0))
	assert.Equal(t, []float64{3, 6}, at.RawRow(2))

	var nilDense *matrix.Dense
	_, err = matrix.Transpose(nilDense)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMatVec(t *testing.T) {
	a := dense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	y, err := matrix.MatVec(a, []float64{1, 0, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, y)

	_, err = matrix.MatVec(a, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestLU_Reconstructs(t *testing.T) {
	a := dense(t, 3, 3,
		4, 3, 2,
		3, 5, 1,
		2, 1, 6,
	)
	l, u, err := matrix.LU(a)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		v, _ := l.At(i, i)
		assert.Equal(t, 1.0, v, "unit diagonal")
		for j := i + 1; j < 3; j++ {
			v, _ = l.At(i, j)
			assert.Zero(t, v, "L upper part")
			v, _ = u.At(j, i)
			assert.Zero(t, v, "U lower part")
		}
	}

	lu, err := matrix.Mul(l, u)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.InDeltaSlice(t, a.RawRow(i), lu.RawRow(i), eps)
	}
}

func TestSolve(t *testing.T) {
	a := dense(t, 3, 3,
		2, 1, 0,
		1, 3, 1,
		0, 1, 4,
	)
	want := []float64{1, -2, 3}
	b, err := matrix.MatVec(a, want)
	require.NoError(t, err)

	x, err := matrix.Solve(a, b)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, x, eps)
}

func TestLU_Errors(t *testing.T) {
	_, _, err := matrix.LU(dense(t, 2, 2, 0, 1, 1, 0))
	assert.ErrorIs(t, err, matrix.ErrSingular, "zero leading pivot")

	_, _, err = matrix.LU(dense(t, 2, 3, 1, 2, 3, 4, 5, 6))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	l, u, err := matrix.LU(dense(t, 2, 2, 2, 0, 0, 2))
	require.NoError(t, err)
	_, err = matrix.SolveLU(l, u, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.SolveLU(nil, u, []float64{1, 1})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func posInf() float64 {
	var zero float64
	return 1 / zero
}
