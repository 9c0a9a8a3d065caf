// Package pairsort sorts a key slice while carrying a same-length satellite
// slice along through the identical permutation.
//
// 🚀 Why paired?
//
//	Chain lengths are sorted together with one of their composition
//	fractions; after sorting, sat[i] must still be the value that was
//	originally paired with the key now at position i. Every algorithm here
//	moves (key, satellite) as one unit.
//
// ✨ Algorithms (closed enumeration, see Algorithm):
//   - Bubble: adjacent swaps, early exit on a clean pass; O(n²), stable.
//   - Insertion: shift-and-insert; O(n²), O(n) on sorted input, stable.
//   - Selection: min-find and joint swap; O(n²) always, not stable.
//   - Optimized: bottom-up merge sort over insertion-sorted runs;
//     O(n log n) worst case, stable. Baseline for the benchmarks.
//
// The quadratic sorts are textbook on purpose: they exist to be measured.
//
// ⚙️ Usage:
//
//	keys := []int{5, 2, 9}
//	sat := []float64{0.5, 0.2, 0.9}
//	if err := pairsort.Sort(pairsort.Optimized, keys, sat); err != nil {
//	    // ErrShapeMismatch or ErrUnknownAlgorithm
//	}
//
// Errors are sentinels matched with errors.Is; length checks happen before
// any element moves.
package pairsort
