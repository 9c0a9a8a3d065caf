// SPDX-License-Identifier: MIT

// Package matrix is the small dense linear-algebra kernel behind the
// numeric parts of chainsort: Markov transition steps for the stationary
// composition, and the normal equations of the Savitzky–Golay fit.
//
// 🧱 Storage
//
//	Dense is row-major (offset = i*cols + j) in one flat slice. At and Set
//	return errors instead of panicking; Set and NewDenseFrom reject NaN/Inf.
//
// 🧮 Kernels
//
//	Mul, Transpose and MatVec allocate fresh results and never mutate their
//	operands. LU is a Doolittle factorization without pivoting; SolveLU
//	runs the forward and backward substitutions against it and Solve chains
//	the two.
//
// Pivoting:
//
//	LU does not pivot, so it is meant for matrices whose leading minors are
//	non-zero: symmetric positive-definite normal matrices, diagonally
//	dominant systems. A zero pivot is reported as ErrSingular.
//
// Determinism: fixed loop orders, no maps, no randomness.
package matrix
