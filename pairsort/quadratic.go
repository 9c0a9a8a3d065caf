package pairsort

import "cmp"

// bubble performs adjacent-swap passes; the i-th pass bubbles the i-th largest
// key to its final slot. A pass without swaps ends the sort early.
//
// Complexity: O(n²) worst/average, O(n) on sorted input. Stable.
func bubble[K cmp.Ordered, V any](keys []K, sat []V) {
	n := len(keys)
	var i, j int
	for i = 0; i < n-1; i++ {
		swapped := false
		for j = 0; j < n-1-i; j++ {
			if keys[j] > keys[j+1] {
				keys[j], keys[j+1] = keys[j+1], keys[j]
				sat[j], sat[j+1] = sat[j+1], sat[j]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// insertion shifts larger keys right and drops each (key, satellite) pair
// into its slot.
//
// Complexity: O(n²) worst/average, O(n) on sorted input. Stable.
func insertion[K cmp.Ordered, V any](keys []K, sat []V) {
	var i, j int
	for i = 1; i < len(keys); i++ {
		k, v := keys[i], sat[i]
		for j = i - 1; j >= 0 && keys[j] > k; j-- {
			keys[j+1] = keys[j]
			sat[j+1] = sat[j]
		}
		keys[j+1] = k
		sat[j+1] = v
	}
}

// selection swaps the minimum of the unsorted suffix into place.
// The joint swap keeps pairs aligned; equal keys may be reordered.
//
// Complexity: O(n²) always.
func selection[K cmp.Ordered, V any](keys []K, sat []V) {
	n := len(keys)
	var i, j, m int
	for i = 0; i < n-1; i++ {
		m = i
		for j = i + 1; j < n; j++ {
			if keys[j] < keys[m] {
				m = j
			}
		}
		if m != i {
			keys[i], keys[m] = keys[m], keys[i]
			sat[i], sat[m] = sat[m], sat[i]
		}
	}
}
