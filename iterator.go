// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ptrie

import "iter"

// all walks every (key, id) pair in the trie in ascending slot order
// (a forward-only walk; no lexicographic ordering is promised).
// allRec follows the same "return false to stop" yield-propagation
// shape bart's own node iterators (bartnode.go, litenode.go) use for
// their iter.Seq2 walks.
func (t *trie) all() iter.Seq2[[]byte, uint64] {
	return func(yield func([]byte, uint64) bool) {
		t.root.allRec(0, t.cfg, yield)
	}
}

// allRec recurses over b's children in ascending slot index, unpacking
// each bucket it finds.
func (br *branchNode) allRec(depth uint, cfg *resolved, yield func([]byte, uint64) bool) bool {
	for i := 0; i < len(br.children); {
		switch c := br.childAt(uint(i)).(type) {
		case nil:
			i++
		case *branchNode:
			if !c.allRec(depth+1, cfg, yield) {
				return false
			}
			i++
		case *bucketNode:
			if !c.allRec(depth, cfg, yield) {
				return false
			}
			i += c.span(cfg.bsize)
		}
	}
	return true
}

// allRec yields every residue stored in bucket b, reconstructed into a
// full key via unpackKey.
func (b *bucketNode) allRec(depth uint, cfg *resolved, yield func([]byte, uint64) bool) bool {
	for i := range b.slots {
		key := unpackKey(b, b.slots[i], depth, cfg)
		if !yield(key, b.slots[i].id) {
			return false
		}
	}
	return true
}

// unpackKey reconstructs a full caller key for a residue stored in
// bucket b at chunk-depth depth: every chunk depth before b's own
// window was resolved by exactly one ancestor branch
// node, whose .path field records the chunk value consumed there (the
// same fact merge.go's ancestorByte exploits for a single byte); walking
// from b up to the root recovers all of them, byte by byte. Combined
// with the bucket's own (first, residue) this gives the full virtual
// key, and stripping its 2-byte length header gives the real key.
func unpackKey(b *bucketNode, s slot, depth uint, cfg *resolved) []byte {
	byte0 := byteOffset(depth, cfg)
	prefix := make([]byte, byte0)

	cur := b.parent
	d := depth
	for d > 0 {
		d--
		// Chunks that fall inside byte0 itself are already part of the
		// stored first word.
		if bi := byteOffset(d, cfg); bi < byte0 {
			prefix[bi] |= byte(cur.path << chunkBitShift(d, cfg))
		}
		cur = cur.parent
	}

	full := append(prefix, tailOf(s)...)
	n := int(full[0])<<8 | int(full[1])
	if n > len(full)-2 {
		n = len(full) - 2
	}
	return full[2 : 2+n]
}
