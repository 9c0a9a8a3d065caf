// SPDX-License-Identifier: MIT

package distribution

import (
	"fmt"

	"github.com/katalvlaran/chainsort/matrix"
)

// polyFitter solves the least-squares polynomial fit for a fixed set of
// abscissae. The normal matrix VᵀV is factorised once; each fit costs one
// MatVec and one pair of triangular solves.
type polyFitter struct {
	vt   *matrix.Dense // Vᵀ, (order+1)×len(xs)
	l, u *matrix.Dense // LU factors of VᵀV
}

// newPolyFitter builds the Vandermonde matrix V[j][k] = xs[j]^k and factors
// VᵀV. With distinct xs and len(xs) > order, VᵀV is symmetric positive
// definite, so LU without pivoting succeeds.
//
// Errors: ErrSingular (matrix.ErrSingular) if the factorisation hits a zero pivot.
func newPolyFitter(xs []float64, order int) (*polyFitter, error) {
	m := order + 1
	v, err := matrix.NewDense(len(xs), m)
	if err != nil {
		return nil, err
	}
	var pw float64
	for j, x := range xs {
		pw = 1
		for k := 0; k < m; k++ {
			if err = v.Set(j, k, pw); err != nil {
				return nil, err
			}
			pw *= x
		}
	}

	vt, err := matrix.Transpose(v)
	if err != nil {
		return nil, err
	}
	normal, err := matrix.Mul(vt, v)
	if err != nil {
		return nil, err
	}
	l, u, err := matrix.LU(normal)
	if err != nil {
		return nil, fmt.Errorf("normal equations (order %d, %d points): %w", order, len(xs), err)
	}

	return &polyFitter{vt: vt, l: l, u: u}, nil
}

// fit returns c[0..order] minimising Σ (ys_j - Σ c_k xs_j^k)².
func (p *polyFitter) fit(ys []float64) ([]float64, error) {
	rhs, err := matrix.MatVec(p.vt, ys)
	if err != nil {
		return nil, err
	}
	return matrix.SolveLU(p.l, p.u, rhs)
}

// polyEval evaluates Σ coef[k]·x^k by Horner's rule.
func polyEval(coef []float64, x float64) float64 {
	var v float64
	for k := len(coef) - 1; k >= 0; k-- {
		v = v*x + coef[k]
	}
	return v
}
