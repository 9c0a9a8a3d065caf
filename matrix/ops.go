// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opLU        = "LU"
	opSolveLU   = "SolveLU"
	opSolve     = "Solve"
)

// matrixErrorf prefixes err with the operation tag. err must be non-nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns C = A·B.
//
// Implementation:
//   - Stage 1: validate shapes (A.Cols == B.Rows).
//   - Stage 2: *Dense operands use an i→k→j loop over the flat buffers and
//     skip zero A[i,k]; other implementations go through At.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(r·n·c) time, O(r·c) space.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, j, k int
	var av, bv float64
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for i = 0; i < rows; i++ {
			for k = 0; k < inner; k++ {
				av = da.data[i*inner+k]
				if av == 0 {
					continue
				}
				for j = 0; j < cols; j++ {
					res.data[i*cols+j] += av * db.data[k*cols+j]
				}
			}
		}
		return res, nil
	}

	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			var sum float64
			for k = 0; k < inner; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				sum += av * bv
			}
			res.data[i*cols+j] = sum
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a new matrix.
//
// Complexity: O(r·c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = d.data[i*cols+j]
			}
		}
		return res, nil
	}
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// MatVec returns y = m·x.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != m.Cols()).
//
// Complexity: O(r·c) time, O(r) space.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	var i, j int
	var acc float64
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			acc = 0
			for j = 0; j < cols; j++ {
				if x[j] != 0 {
					acc += d.data[i*cols+j] * x[j]
				}
			}
			y[i] = acc
		}
		return y, nil
	}
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		acc = 0
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			acc += v * x[j]
		}
		y[i] = acc
	}

	return y, nil
}
