// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ptrie

// clone deep-copies t's entire node graph and, where present, rebuilds
// the entry table from scratch so every surviving residue gets a
// fresh, densely packed id bound to its place in the cloned graph.
// Ids are not preserved across Clone: only liveness and key
// membership are.
func (t *trie) clone() *trie {
	return t.cloneWithHook(nil)
}

// cloneWithHook is like clone, but additionally invokes onEntry(oldID,
// newID) for every residue as its fresh id is assigned, letting a
// caller that keeps auxiliary per-id state (Map's values slice) carry
// it over to the new id without a second full-trie walk.
func (t *trie) cloneWithHook(onEntry func(oldID, newID uint64)) *trie {
	nt := &trie{cfg: t.cfg, size: t.size}
	if t.entries != nil {
		nt.entries = newEntryTable(t.cfg.allocSize)
	}
	nt.root = cloneBranch(t.root, nil, nt, onEntry)
	return nt
}

func cloneBranch(b *branchNode, parent *branchNode, nt *trie, onEntry func(uint64, uint64)) *branchNode {
	nb := newBranchNode(len(b.children), b.path, parent)
	for i := 0; i < len(b.children); {
		switch c := b.childAt(uint(i)).(type) {
		case nil:
			i++
		case *branchNode:
			nb.setChild(uint(i), cloneBranch(c, nb, nt, onEntry))
			i++
		case *bucketNode:
			nc := cloneBucket(c, nb, nt, onEntry)
			span := nc.span(nt.cfg.bsize)
			nb.setChildRange(uint(i), span, nc)
			i += span
		}
	}
	return nb
}

func cloneBucket(b *bucketNode, parent *branchNode, nt *trie, onEntry func(uint64, uint64)) *bucketNode {
	nb := newBucketNode(b.path, b.typ, parent)
	nb.slots = make([]slot, len(b.slots))
	for i, s := range b.slots {
		ns := s.clone()
		oldID := s.id
		if nt.entries != nil {
			ns.id = nt.entries.next(nb)
		}
		if onEntry != nil {
			onEntry(oldID, ns.id)
		}
		nb.slots[i] = ns
	}
	return nb
}
