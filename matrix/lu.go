// SPDX-License-Identifier: MIT

package matrix

// zeroPivot is the exact pivot value treated as singular.
const zeroPivot = 0.0

// LU computes the Doolittle factorization A = L·U, L unit lower triangular,
// U upper triangular, without pivoting.
//
// Implementation:
//   - Stage 1: validate A square; copy it into flat storage.
//   - Stage 2: for i = 0..n-1 build row i of U, check the pivot, then
//     column i of L.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular on a zero pivot.
//
// Complexity: O(n³) time, O(n²) space.
func LU(a Matrix) (*Dense, *Dense, error) {
	// Stage 1
	if err := ValidateSquare(a); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	n := a.Rows()
	src, ok := a.(*Dense)
	if !ok {
		src = &Dense{r: n, c: n, data: make([]float64, n*n)}
		var v float64
		var err error
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if v, err = a.At(i, j); err != nil {
					return nil, nil, matrixErrorf(opLU, err)
				}
				src.data[i*n+j] = v
			}
		}
	}
	l, err := Identity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	u, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Stage 2
	var i, j, k int
	var sum, pivot float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += l.data[i*n+k] * u.data[k*n+j]
			}
			u.data[i*n+j] = src.data[i*n+j] - sum
		}
		pivot = u.data[i*n+i]
		if pivot == zeroPivot {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}
		for j = i + 1; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += l.data[j*n+k] * u.data[k*n+i]
			}
			l.data[j*n+i] = (src.data[j*n+i] - sum) / pivot
		}
	}

	return l, u, nil
}

// SolveLU solves L·U·x = b for x given the factors from LU.
//
// Implementation:
//   - Stage 1: forward substitution L·y = b (top-down; L has a unit diagonal).
//   - Stage 2: backward substitution U·x = y (bottom-up).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular on a zero U[i,i].
//
// Complexity: O(n²).
func SolveLU(l, u *Dense, b []float64) ([]float64, error) {
	if l == nil || u == nil {
		return nil, matrixErrorf(opSolveLU, ErrNilMatrix)
	}
	if err := ValidateSquare(l); err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}
	n := l.r
	if u.r != n || u.c != n {
		return nil, matrixErrorf(opSolveLU, ErrDimensionMismatch)
	}
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}

	var i, k int
	var sum float64
	// Stage 1
	y := make([]float64, n)
	for i = 0; i < n; i++ {
		sum = b[i]
		for k = 0; k < i; k++ {
			sum -= l.data[i*n+k] * y[k]
		}
		y[i] = sum
	}
	// Stage 2
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		sum = y[i]
		for k = i + 1; k < n; k++ {
			sum -= u.data[i*n+k] * x[k]
		}
		if u.data[i*n+i] == zeroPivot {
			return nil, matrixErrorf(opSolveLU, ErrSingular)
		}
		x[i] = sum / u.data[i*n+i]
	}

	return x, nil
}

// Solve solves a·x = b through LU and SolveLU.
func Solve(a Matrix, b []float64) ([]float64, error) {
	l, u, err := LU(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x, err := SolveLU(l, u, b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	return x, nil
}
