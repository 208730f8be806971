// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ptrie

// splitNode restores bucket b, reached at chunk-depth depth (the depth
// at which its parent branch chose the chunk leading here), to fewer
// than SplitBound residues, recursing as needed.
//
// Two distinct moves are available: a regular split consumes a single
// extra bit of the residue already sitting in b (possible while
// b.typ < BSIZE); once a bucket fully occupies one parent slot
// (b.typ == BSIZE) the only way to make progress is a forward split,
// which replaces the bucket with a new branch node and regroups its
// residues by their next, still-unconsumed chunk.
func (t *trie) splitNode(b *bucketNode, depth uint) {
	cfg := t.cfg
	if len(b.slots) < cfg.splitBound {
		return
	}
	assertInvariant(b.typ <= cfg.bsize, "splitNode: bucket typ exceeds BSIZE")
	if b.typ >= cfg.bsize {
		t.forwardSplit(b, depth)
		return
	}
	t.regularSplitStep(b, depth)
}

// regularSplitStep partitions b's residues by the next bit not yet
// pinned down by b.typ. If every residue falls on the same side, no
// new bucket is needed: b simply narrows to that half (its path and/or
// typ advance) and splitNode recurses on the narrowed bucket. Otherwise
// a new sibling bucket is allocated for the "high" half, the parent's
// child range is rewritten to point at both halves, and splitNode
// recurses independently on each, including the "all one side"
// optimization that avoids allocating and avoids any entry
// back-pointer rewrite.
func (t *trie) regularSplitStep(b *bucketNode, depth uint) {
	cfg := t.cfg

	bitIdx := cfg.bsize - b.typ - 1
	mask := uint(1) << bitIdx

	var low, high []slot
	for _, s := range b.slots {
		hi := byte(s.first >> 8)
		v := chunkFromByte(hi, depth, cfg)
		if v&mask != 0 {
			high = append(high, s)
		} else {
			low = append(low, s)
		}
	}

	span := b.span(cfg.bsize)
	half := span / 2

	switch {
	case len(high) == 0:
		// Nothing resolves to the high half: it was never really
		// occupied by this bucket, so free it and narrow b to the low
		// half in place. No residue moved, so no entry rewrite.
		b.parent.setChildRange(b.path+uint(half), half, nil)
		b.typ++
		t.splitNode(b, depth)

	case len(low) == 0:
		// Mirror image: narrow b to the high half.
		b.parent.setChildRange(b.path, half, nil)
		b.path += uint(half)
		b.typ++
		t.splitNode(b, depth)

	default:
		newTyp := b.typ + 1
		sib := newBucketNode(b.path+uint(half), newTyp, b.parent)
		sib.slots = high
		b.slots = low
		b.typ = newTyp

		if t.entries != nil {
			for i := range sib.slots {
				t.entries.setNode(sib.slots[i].id, sib)
			}
		}

		b.parent.setChildRange(b.path, half, b)
		b.parent.setChildRange(sib.path, half, sib)

		t.splitNode(b, depth)
		t.splitNode(sib, depth)
	}
}

// forwardSplit replaces the single-slot bucket b with a new branch
// node and regroups its residues by their next chunk. Each resulting
// chunk-value group becomes a child bucket of the new branch,
// recursively split again if it is still at or above SplitBound.
//
// Regrouping works entirely off each slot's tail (its "first" bytes
// plus residue body, tailOf in slot.go), never the caller's original
// key, and is proven order-preserving within each resulting group
// without re-sorting: every slot in b shares the same already-consumed
// prefix (that's what made them siblings), so the bytes the new
// chunk/first/residue split reads are all drawn from the same
// alignment of the tail, and slicing a sorted sequence by a chunk of
// its own ordering key can only partition it, never reorder it within
// a partition.
func (t *trie) forwardSplit(b *bucketNode, depth uint) {
	cfg := t.cfg
	parent := b.parent
	slotIdx := b.path
	newDepth := depth + 1

	branch := newBranchNode(cfg.width, slotIdx, parent)
	parent.setChild(slotIdx, branch)

	shift := byteOffset(newDepth, cfg) - byteOffset(depth, cfg)
	relDepth := newDepth - uint(byteOffset(depth, cfg))*cfg.bdiv

	order := make([]uint, 0, len(b.slots))
	groups := make(map[uint][]slot, len(b.slots))
	for _, s := range b.slots {
		tail := tailOf(s)
		cv := chunkAt(tail, relDepth, cfg)
		if _, ok := groups[cv]; !ok {
			order = append(order, cv)
		}
		ns := s
		ns.first = firstWord(tail, shift)
		ns.setResidue(residueBytes(tail, shift), cfg.heapBound)
		groups[cv] = append(groups[cv], ns)
	}

	reused := false
	for _, cv := range order {
		gslots := groups[cv]
		var child *bucketNode
		if !reused {
			// Reuse b's own identity for the first group: the residues
			// that land here never moved to a different bucket object,
			// so no entry back-pointer needs rewriting.
			b.path = cv
			b.typ = cfg.bsize
			b.parent = branch
			b.slots = gslots
			child = b
			reused = true
		} else {
			child = newBucketNode(cv, cfg.bsize, branch)
			child.slots = gslots
			if t.entries != nil {
				for i := range child.slots {
					t.entries.setNode(child.slots[i].id, child)
				}
			}
		}
		branch.setChild(cv, child)
		if len(child.slots) >= cfg.splitBound {
			t.splitNode(child, newDepth)
		}
	}
}

// widenEmptySlot handles the case where fastForward landed on an empty
// parent slot at the given chunk value and depth. A brand-new
// single-residue bucket is created
// there, then widened outward bit by bit (narrowing typ from BSIZE) for
// as long as its neighboring slots, at each successively wider span,
// remain entirely empty, so a lone new key claims as much of the
// parent's fanout as it safely can without colliding with an existing
// sibling.
func (t *trie) widenEmptySlot(parent *branchNode, chunkVal uint) *bucketNode {
	cfg := t.cfg
	b := newBucketNode(chunkVal, cfg.bsize, parent)
	parent.setChild(chunkVal, b)

	for b.typ > 0 {
		span := b.span(cfg.bsize)
		// The sibling half this widening step would absorb: the other
		// half of the next-wider span that isn't b's current half.
		widerLow := b.path &^ uint(span)
		siblingLow := widerLow
		if b.path == widerLow {
			siblingLow = widerLow + uint(span)
		}
		if !rangeEmpty(parent, siblingLow, span) {
			break
		}
		parent.setChildRange(b.path, span, nil)
		b.typ--
		b.path = widerLow
		parent.setChildRange(b.path, b.span(cfg.bsize), b)
	}
	return b
}

// rangeEmpty reports whether all `span` parent slots starting at low
// are unoccupied.
func rangeEmpty(parent *branchNode, low uint, span int) bool {
	for i := uint(0); i < uint(span); i++ {
		if parent.childAt(low+i) != nil {
			return false
		}
	}
	return true
}
