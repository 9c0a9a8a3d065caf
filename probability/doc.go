// SPDX-License-Identifier: MIT

// Package probability derives the fixed start/continuation and transition
// probabilities that drive the three-symbol chain process.
//
// 🚀 What is modelled?
//
//	A chain grows one symbol at a time. After each symbol Y the chain either
//	terminates or continues; when it continues, the next symbol X is drawn
//	from the transition row of Y:
//
//	  continue_Y = (f_Y·N) / (f_Y·N + init_Y)
//	  P(Y→X)     = (p_X / rate_YX) / Σ_Z (p_Z / rate_YZ),   rate_YY = 1
//
//	where p_X are propagation probabilities, rate_YX pairwise rate constants,
//	f_Y frequency factors, init_Y initiation probabilities and N the
//	normalization constant (total random events).
//
// ✨ Guarantees:
//   - A Model is immutable once built and safe for concurrent use.
//   - Every transition row sums to 1 within Epsilon.
//   - Zero rate constants fail with ErrDivisionByZero (also ErrConfiguration).
//
// ⚙️ Usage:
//
//	m, err := probability.New(probability.DefaultConstants())
//	if err != nil {
//	    return err
//	}
//	next := m.Next(probability.A, r) // cumulative selection from row A
//
// Complexity: New is O(1); every accessor is O(1).
package probability
