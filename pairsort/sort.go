package pairsort

import (
	"cmp"
	"fmt"
	"slices"
)

// Func is the shared shape of every paired sort: it reorders keys
// non-decreasingly and applies the same permutation to sat.
// Callers guarantee len(keys) == len(sat).
type Func[K cmp.Ordered, V any] func(keys []K, sat []V)

// For returns the implementation designated for alg.
//
// Errors: ErrUnknownAlgorithm.
func For[K cmp.Ordered, V any](alg Algorithm) (Func[K, V], error) {
	switch alg {
	case Bubble:
		return bubble[K, V], nil
	case Insertion:
		return insertion[K, V], nil
	case Selection:
		return selection[K, V], nil
	case Optimized:
		return mergeSort[K, V], nil
	default:
		return nil, fmt.Errorf("For(%v): %w", alg, ErrUnknownAlgorithm)
	}
}

// Sort reorders keys and sat in place with alg.
//
// Errors:
//   - ErrShapeMismatch if len(keys) != len(sat); nothing is moved.
//   - ErrUnknownAlgorithm for an Algorithm outside the enumeration.
func Sort[K cmp.Ordered, V any](alg Algorithm, keys []K, sat []V) error {
	if len(keys) != len(sat) {
		return fmt.Errorf("Sort(%v): keys=%d satellite=%d: %w", alg, len(keys), len(sat), ErrShapeMismatch)
	}
	fn, err := For[K, V](alg)
	if err != nil {
		return err
	}
	fn(keys, sat)

	return nil
}

// Sorted returns sorted copies of keys and sat; the inputs are not modified.
func Sorted[K cmp.Ordered, V any](alg Algorithm, keys []K, sat []V) ([]K, []V, error) {
	k, v := slices.Clone(keys), slices.Clone(sat)
	if err := Sort(alg, k, v); err != nil {
		return nil, nil, err
	}

	return k, v, nil
}

// IsSorted reports whether keys is non-decreasing.
func IsSorted[K cmp.Ordered](keys []K) bool {
	for i := 1; i < len(keys); i++ {
		if keys[i] < keys[i-1] {
			return false
		}
	}
	return true
}
