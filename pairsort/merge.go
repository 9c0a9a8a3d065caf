package pairsort

import "cmp"

// mergeRun is the length of the runs sorted by insertion before merging.
const mergeRun = 32

// mergeSort is a stable bottom-up merge sort. Runs of mergeRun elements are
// insertion-sorted in place, then merged pairwise with widths doubling,
// ping-ponging between the input and one scratch buffer per slice.
//
// Complexity: O(n log n) time worst case, O(n) extra space. Stable.
func mergeSort[K cmp.Ordered, V any](keys []K, sat []V) {
	n := len(keys)
	if n < 2 {
		return
	}

	// Stage 1: insertion-sort fixed runs.
	var lo, hi int
	for lo = 0; lo < n; lo += mergeRun {
		hi = min(lo+mergeRun, n)
		insertion(keys[lo:hi], sat[lo:hi])
	}
	if n <= mergeRun {
		return
	}

	// Stage 2: merge runs of doubling width.
	srcK, srcV := keys, sat
	dstK, dstV := make([]K, n), make([]V, n)
	inScratch := false
	var mid int
	for width := mergeRun; width < n; width *= 2 {
		for lo = 0; lo < n; lo += 2 * width {
			mid = min(lo+width, n)
			hi = min(lo+2*width, n)
			merge(dstK[lo:hi], dstV[lo:hi], srcK[lo:mid], srcV[lo:mid], srcK[mid:hi], srcV[mid:hi])
		}
		srcK, dstK = dstK, srcK
		srcV, dstV = dstV, srcV
		inScratch = !inScratch
	}

	// Stage 3: the last pass may have landed in the scratch buffers.
	if inScratch {
		copy(keys, srcK)
		copy(sat, srcV)
	}
}

// merge writes the stable merge of (ak, av) and (bk, bv) into (dk, dv).
// On ties the left element goes first.
func merge[K cmp.Ordered, V any](dk []K, dv []V, ak []K, av []V, bk []K, bv []V) {
	// Already ordered: a single copy.
	if len(ak) == 0 || len(bk) == 0 || ak[len(ak)-1] <= bk[0] {
		copy(dk, ak)
		copy(dk[len(ak):], bk)
		copy(dv, av)
		copy(dv[len(av):], bv)
		return
	}

	var i, j, k int
	for i < len(ak) && j < len(bk) {
		if bk[j] < ak[i] {
			dk[k], dv[k] = bk[j], bv[j]
			j++
		} else {
			dk[k], dv[k] = ak[i], av[i]
			i++
		}
		k++
	}
	copy(dv[k:], av[i:])
	k += copy(dk[k:], ak[i:])
	copy(dk[k:], bk[j:])
	copy(dv[k:], bv[j:])
}
