// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ptrie

import (
	"iter"

	"github.com/bits-and-blooms/bitset"
)

// Map is a compact prefix trie associating a value of type V with each
// byte-slice key, additionally handing out a stable entry id for every
// live key. Ids are assigned monotonically and never reused; Get is
// the fast path by id, GetByKey walks the trie the same way Exists
// does.
//
// The zero value is not ready to use; construct with NewMap.
//
// Map is not safe for concurrent use.
type Map[V any] struct {
	t      *trie
	values []V
	live   bitset.BitSet
}

// NewMap creates an empty Map. A nil cfg selects DefaultConfig.
func NewMap[V any](cfg *Config) (*Map[V], error) {
	t, err := newTrie(cfg, true)
	if err != nil {
		return nil, err
	}
	return &Map[V]{t: t}, nil
}

// Insert associates value with key. If key is already present, its
// existing value is left untouched and inserted is false.
func (m *Map[V]) Insert(key []byte, value V) (id uint64, inserted bool, err error) {
	id, inserted, err = m.t.insert(key)
	if err != nil || !inserted {
		return id, inserted, err
	}
	m.growTo(id)
	m.values[id] = value
	m.live.Set(uint(id))
	return id, true, nil
}

// GetOrInsert returns key's existing id if present, leaving its stored
// value untouched; otherwise it inserts value and returns the freshly
// assigned id. It does not return the stored value; read that with Get.
func (m *Map[V]) GetOrInsert(key []byte, value V) (id uint64, inserted bool, err error) {
	return m.Insert(key, value)
}

// Exists reports whether key is present, along with its id.
func (m *Map[V]) Exists(key []byte) (id uint64, ok bool, err error) {
	return m.t.search(key)
}

// GetByKey looks up key and returns its value.
func (m *Map[V]) GetByKey(key []byte) (value V, ok bool, err error) {
	id, found, err := m.t.search(key)
	if err != nil || !found {
		return value, false, err
	}
	return m.values[id], true, nil
}

// Get returns the value for a previously returned id, if it still
// identifies a live entry.
func (m *Map[V]) Get(id uint64) (value V, ok bool) {
	if !m.live.Test(uint(id)) {
		return value, false
	}
	return m.values[id], true
}

// Erase removes key, reporting whether it was present and its
// (now-dead) id.
func (m *Map[V]) Erase(key []byte) (id uint64, erased bool, err error) {
	id, erased, err = m.t.erase(key)
	if err != nil || !erased {
		return id, erased, err
	}
	m.live.Clear(uint(id))
	return id, true, nil
}

// Size returns the number of live keys currently stored.
func (m *Map[V]) Size() int {
	return m.t.size
}

// Clone returns a deep copy of the map. Ids are reassigned densely
// across surviving entries; callers must not assume an id valid
// before Clone still identifies the same entry afterwards.
func (m *Map[V]) Clone() *Map[V] {
	out := &Map[V]{}
	out.t = m.t.cloneWithHook(func(oldID, newID uint64) {
		out.growTo(newID)
		out.values[newID] = m.values[oldID]
		out.live.Set(uint(newID))
	})
	return out
}

// All returns an iterator over every live (key, value) pair, in an
// unspecified, forward-only order. It makes no ordering guarantee and
// in particular is not lexicographic.
func (m *Map[V]) All() iter.Seq2[[]byte, V] {
	return func(yield func([]byte, V) bool) {
		for k, id := range m.t.all() {
			if !yield(k, m.values[id]) {
				return
			}
		}
	}
}

// Begin returns a cursor positioned at the map's first entry, or an
// invalid cursor if the map is empty.
func (m *Map[V]) Begin() *Iterator {
	return m.t.begin()
}

// End returns a cursor one past the map's last entry. Its only use is
// as a sentinel to compare against or to step backward from with
// Prev.
func (m *Map[V]) End() *Iterator {
	return m.t.end()
}

// UnpackKey reconstructs the original key for a still-live id, the way
// the stable map variant's unpack(id) is expected to.
func (m *Map[V]) UnpackKey(id uint64) ([]byte, bool) {
	if !m.live.Test(uint(id)) {
		return nil, false
	}
	b := m.t.entries.get(id).node
	for i := range b.slots {
		if b.slots[i].id == id {
			return unpackKey(b, b.slots[i], bucketDepth(b), m.t.cfg), true
		}
	}
	return nil, false
}

func (m *Map[V]) growTo(id uint64) {
	if int(id) < len(m.values) {
		return
	}
	grown := make([]V, id+1)
	copy(grown, m.values)
	m.values = grown
}
