// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ptrie

// Iterator is a bidirectional cursor over a trie's (key, id) pairs,
// for callers that need to step backward as well as forward, the one
// thing the range-over-func all() in iterator.go cannot do. It visits
// bucket slots in the same ascending child-slot order as all();
// stepping past either end leaves the cursor in the zero, invalid
// "one past the end" position, mirroring a C++ forward/bidirectional
// iterator's end() sentinel.
//
// An Iterator is invalidated by any Insert/Erase on the trie it was
// taken from; a fresh Begin()/End() must be taken afterwards.
type Iterator struct {
	t      *trie
	frames []cursorFrame
	bucket *bucketNode
	slot   int
}

// cursorFrame records that br's child at pos is the node currently on
// the path from the root to the cursor's bucket.
type cursorFrame struct {
	br  *branchNode
	pos uint
}

func (t *trie) begin() *Iterator {
	it := &Iterator{t: t}
	it.descendFirst(t.root)
	return it
}

func (t *trie) end() *Iterator {
	return &Iterator{t: t}
}

// Valid reports whether the cursor currently denotes a live entry.
func (it *Iterator) Valid() bool {
	return it.bucket != nil
}

// Index returns the entry id at the cursor's current position (0 for
// a Set, which carries no entry table).
func (it *Iterator) Index() uint64 {
	return it.bucket.slots[it.slot].id
}

// Key reconstructs the full key at the cursor's current position.
func (it *Iterator) Key() []byte {
	return unpackKey(it.bucket, it.bucket.slots[it.slot], bucketDepth(it.bucket), it.t.cfg)
}

// Next advances the cursor by one position, reporting whether it still
// denotes a live entry afterwards.
func (it *Iterator) Next() bool {
	if it.bucket == nil {
		return false
	}
	if it.slot+1 < len(it.bucket.slots) {
		it.slot++
		return true
	}
	for len(it.frames) > 0 {
		top := it.frames[len(it.frames)-1]
		it.frames = it.frames[:len(it.frames)-1]

		span := uint(1)
		if bn, ok := top.br.childAt(top.pos).(*bucketNode); ok {
			span = uint(bn.span(it.t.cfg.bsize))
		}
		if next, ok := top.br.occupied.NextSet(top.pos + span); ok {
			it.enter(top.br, next)
			return true
		}
	}
	it.bucket = nil
	return false
}

// Prev retreats the cursor by one position, reporting whether it still
// denotes a live entry afterwards. Calling Prev on an End() cursor
// moves it to the last entry, the way decrementing end() does for a
// C++ bidirectional iterator.
func (it *Iterator) Prev() bool {
	if it.bucket == nil && len(it.frames) == 0 {
		return it.descendLast(it.t.root)
	}
	if it.slot > 0 {
		it.slot--
		return true
	}
	for len(it.frames) > 0 {
		top := it.frames[len(it.frames)-1]
		it.frames = it.frames[:len(it.frames)-1]

		if top.pos == 0 {
			continue
		}
		if prev, ok := lastOccupiedAt(top.br, top.pos-1); ok {
			it.enterLast(top.br, prev)
			return true
		}
	}
	it.bucket = nil
	return false
}

func (it *Iterator) descendFirst(br *branchNode) bool {
	i, ok := br.occupied.NextSet(0)
	if !ok {
		return false
	}
	return it.enter(br, i)
}

func (it *Iterator) descendLast(br *branchNode) bool {
	if len(br.children) == 0 {
		return false
	}
	i, ok := lastOccupiedAt(br, uint(len(br.children))-1)
	if !ok {
		return false
	}
	return it.enterLast(br, i)
}

func (it *Iterator) enter(br *branchNode, i uint) bool {
	it.frames = append(it.frames, cursorFrame{br: br, pos: i})
	switch c := br.childAt(i).(type) {
	case *branchNode:
		return it.descendFirst(c)
	case *bucketNode:
		it.bucket = c
		it.slot = 0
		return true
	default:
		return false
	}
}

func (it *Iterator) enterLast(br *branchNode, i uint) bool {
	it.frames = append(it.frames, cursorFrame{br: br, pos: i})
	switch c := br.childAt(i).(type) {
	case *branchNode:
		return it.descendLast(c)
	case *bucketNode:
		// Record the bucket's lowest slot, as enter does, so stepping
		// on from this frame skips the bucket's whole span.
		it.frames[len(it.frames)-1].pos = c.path
		it.bucket = c
		it.slot = len(c.slots) - 1
		return true
	default:
		return false
	}
}

// lastOccupiedAt returns the highest occupied slot index at or below
// hi. WIDTH is at most 256, so a linear scan costs nothing next to the
// pointer-chasing the descent itself already does.
func lastOccupiedAt(br *branchNode, hi uint) (uint, bool) {
	for i := hi + 1; i > 0; i-- {
		if br.occupied.Test(i - 1) {
			return i - 1, true
		}
	}
	return 0, false
}

// bucketDepth returns the chunk-depth unpackKey needs for b: the
// number of branch levels from the root down to b's own parent, i.e.
// the parent's own depth (0 when b hangs directly off the root).
func bucketDepth(b *bucketNode) uint {
	d := uint(0)
	cur := b.parent
	for cur.parent != nil {
		d++
		cur = cur.parent
	}
	return d
}
