// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ptrie

import "slices"

// bucketSearch performs the ordered linear search over a bucket: scan
// slots (ordered by (first, body)) until the first slot whose key is
// >= the target, then compare bodies on a tie. Returns the slot index
// and whether an exact match was found; on a miss, the index is the
// correct insertion position.
func bucketSearch(slots []slot, first uint16, body []byte) (idx int, found bool) {
	// bart's prefixCBTree keeps its bitset/slice ordered by baseIdx and
	// finds position with Rank(); here the ordering key is (first,
	// body), a variable-width comparison, so this walks linearly
	// instead of binary-searching (buckets are bounded by SplitBound,
	// so this stays cheap in practice).
	for i := range slots {
		c := compareResidue(slots[i].first, slots[i].residue(), first, body)
		if c == 0 {
			return i, true
		}
		if c > 0 {
			return i, false
		}
	}
	return len(slots), false
}

// bucketInsertAt builds the new slot for (first, body, id) and inserts
// it at idx, shifting trailing slots.
func bucketInsertAt(slots []slot, idx int, first uint16, body []byte, id uint64, heapBound int) []slot {
	var s slot
	s.first = first
	s.id = id
	s.setResidue(body, heapBound)
	return slices.Insert(slots, idx, s)
}

// bucketRemoveAt reclaims the slot at idx. Heap-escaped bodies are
// simply dropped; Go's GC reclaims them once unreferenced.
func bucketRemoveAt(slots []slot, idx int) []slot {
	return slices.Delete(slots, idx, idx+1)
}

// bucketConcat concatenates two ordered slot slices that are known to
// be disjoint ranges (low entirely before high), used by the merge
// protocol's sibling-coalesce step.
func bucketConcat(low, high []slot) []slot {
	out := make([]slot, 0, len(low)+len(high))
	out = append(out, low...)
	out = append(out, high...)
	return out
}
