// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ptrie

// mergeNode is the inverse of splitNode: after an erase leaves bucket b
// under-populated, restore it towards the invariant that every non-root
// bucket either holds more than SplitBound/3 residues or is the sole
// occupant of its parent branch. It tries, in order,
// to detach an emptied bucket entirely, widen into an adjacent empty
// sibling range, or coalesce with an adjacent sibling bucket; if none
// apply, an under-full bucket is simply left as-is, which is always
// safe (SplitBound only bounds search cost, never correctness).
func (t *trie) mergeNode(b *bucketNode, depth uint) {
	cfg := t.cfg
	parent := b.parent

	if len(b.slots) == 0 {
		parent.setChildRange(b.path, b.span(cfg.bsize), nil)
		t.collapseIfPossible(parent, depth)
		return
	}

	if len(b.slots) > cfg.splitBound/3 {
		return
	}

	if t.tryWidenMerge(b, depth) {
		return
	}
	if t.tryCoalesceSibling(b, depth) {
		return
	}
	// Either b is the sole occupant of its parent (invariant already
	// satisfied) or its neighbors are occupied buckets too large to
	// absorb it without immediately re-splitting; either way, leaving
	// it under-full is acceptable.
	_, _, sole := b.parent.soleChild()
	assertInvariant(sole || len(b.slots) > 0, "mergeNode: left an empty, non-sole bucket in place")
}

// siblingLowBound returns the low slot index of the sibling range
// adjacent to a span-wide range starting at low, at the next-wider
// span (2*span).
func siblingLowBound(low uint, span int) uint {
	wider := low &^ uint(span)
	if low == wider {
		return wider + uint(span)
	}
	return wider
}

// tryWidenMerge absorbs an adjacent, entirely empty sibling range into
// b by narrowing b.typ (the inverse of the insert-time widening in
// split.go's widenEmptySlot), repeating while further neighbors remain
// empty.
func (t *trie) tryWidenMerge(b *bucketNode, depth uint) bool {
	cfg := t.cfg
	widened := false
	for b.typ > 0 {
		span := b.span(cfg.bsize)
		sibLow := siblingLowBound(b.path, span)
		if !rangeEmpty(b.parent, sibLow, span) {
			break
		}
		low := b.path
		if sibLow < low {
			low = sibLow
		}
		b.parent.setChildRange(b.path, span, nil)
		b.path = low
		b.typ--
		b.parent.setChildRange(b.path, b.span(cfg.bsize), b)
		widened = true
	}
	if widened {
		t.mergeNode(b, depth)
	}
	return widened
}

// tryCoalesceSibling merges b with its adjacent sibling bucket, if one
// exists at the same span and the combined population stays under
// SplitBound. The lower-addressed bucket survives; the other's
// residues are appended (still ordered, since the two buckets cover
// disjoint, adjacent ranges) and its entry back-pointers, if any, are
// rewritten onto the survivor.
func (t *trie) tryCoalesceSibling(b *bucketNode, depth uint) bool {
	cfg := t.cfg
	if b.typ == 0 {
		// b already spans every slot of its parent: it has no sibling.
		return false
	}
	span := b.span(cfg.bsize)
	sibLow := siblingLowBound(b.path, span)

	sib, ok := b.parent.childAt(sibLow).(*bucketNode)
	if !ok || sib.typ != b.typ {
		return false
	}
	if len(b.slots)+len(sib.slots) >= cfg.splitBound {
		return false
	}

	survivor, absorbed := b, sib
	if sibLow < b.path {
		survivor, absorbed = sib, b
	}
	merged := bucketConcat(survivor.slots, absorbed.slots)

	if t.entries != nil {
		for i := range absorbed.slots {
			t.entries.setNode(absorbed.slots[i].id, survivor)
		}
	}

	low := b.path
	if sibLow < low {
		low = sibLow
	}
	survivor.path = low
	survivor.typ = b.typ - 1
	survivor.slots = merged

	b.parent.setChildRange(low, survivor.span(cfg.bsize), survivor)

	t.mergeNode(survivor, depth)
	return true
}

// collapseIfPossible checks whether branch br, after one of its
// children was just cleared, now carries exactly one distinct occupant
// and, if so and br is not the trie root, splices br out: its parent
// points directly at the surviving child instead.
//
// Splicing only happens when that sole occupant is a bucket: demoting
// it re-encodes its residues to fold br's consumed chunk back in, the
// exact inverse of forwardSplit. A sole occupant that is itself a
// branch cannot be spliced the same way: reparenting it without
// re-encoding would drop the chunk-depth of every bucket in its
// subtree by one level, misaligning their stored residues, while
// re-encoding a whole subtree on every collapse would be far more
// invasive than the problem warrants. Leaving br in place as a
// redundant pass-through level costs one pointer hop and is always
// safe, so that case is left alone.
func (t *trie) collapseIfPossible(br *branchNode, depth uint) {
	if br == t.root {
		return
	}
	child, _, ok := br.soleChild()
	if !ok {
		return
	}
	bucket, ok := child.(*bucketNode)
	if !ok {
		return
	}
	gp := br.parent
	t.demoteBucket(bucket, br, depth)
	gp.setChild(br.path, bucket)
	t.collapseIfPossible(gp, depth-1)
}

// demoteBucket rewrites bucket child's encoding (and position) to
// reflect that it now sits one chunk-depth higher, taking over br's
// position under br.parent. It is the exact inverse of the
// forwardSplit regroup in split.go: where forwardSplit peels one chunk
// out of a bucket's encoding to create a routing branch, demoteBucket
// folds that chunk back in.
func (t *trie) demoteBucket(child *bucketNode, br *branchNode, depth uint) {
	cfg := t.cfg

	oldDepth := depth - 1 // br's own incoming chunk-depth, i.e. the depth one level up
	shift := byteOffset(depth, cfg) - byteOffset(oldDepth, cfg)

	// With shift == 0 the same byte still covers both depths and the
	// stored bytes already contain every bit. Otherwise each residue is
	// re-encoded from its full key (read while child still hangs below
	// br) the way insert encodes it, so zero padding past the end of a
	// short key never turns into a stored residue byte.
	if shift != 0 {
		byte0 := byteOffset(oldDepth, cfg)
		for i := range child.slots {
			v := virtualKey(unpackKey(child, child.slots[i], depth, cfg))
			child.slots[i].first = firstWord(v, byte0)
			child.slots[i].setResidue(residueBytes(v, byte0), cfg.heapBound)
		}
	}

	child.path = br.path
	child.typ = cfg.bsize
	child.parent = br.parent
}

// ancestorByte reconstructs the raw virtual-key byte at byteOffset(d,
// cfg) where d = byteOffset(d,cfg)*cfg.bdiv spans multiple chunk
// depths, given the chunk value at the byte's final depth (chunkVal,
// at depth d) and the chain of ancestor branch nodes whose own .path
// fields record the chunk values consumed at each depth below d within
// the same byte.
func ancestorByte(fromBranch *branchNode, chunkVal uint, d uint, cfg *resolved) byte {
	byte0 := uint(byteOffset(d, cfg)) * cfg.bdiv
	var b uint
	b = chunkVal << chunkBitShift(d, cfg)
	cur := fromBranch.parent
	for d > byte0 {
		d--
		b |= cur.path << chunkBitShift(d, cfg)
		cur = cur.parent
	}
	return byte(b)
}
