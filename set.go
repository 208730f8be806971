// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ptrie

import "iter"

// Set is a compact prefix trie over byte-slice keys with no associated
// value and no entry table. Keeping Set lean this way mirrors bart's
// own Lite table, which drops bart's prefix-value bookkeeping for
// callers that only need membership.
//
// The zero value is not ready to use; construct with NewSet.
//
// Set is not safe for concurrent use.
type Set struct {
	t *trie
}

// NewSet creates an empty Set. A nil cfg selects DefaultConfig.
func NewSet(cfg *Config) (*Set, error) {
	t, err := newTrie(cfg, false)
	if err != nil {
		return nil, err
	}
	return &Set{t: t}, nil
}

// Insert adds key to the set. It reports whether key was newly added
// (false if it was already present).
func (s *Set) Insert(key []byte) (bool, error) {
	_, inserted, err := s.t.insert(key)
	return inserted, err
}

// Exists reports whether key is present.
func (s *Set) Exists(key []byte) (bool, error) {
	_, ok, err := s.t.search(key)
	return ok, err
}

// Erase removes key, reporting whether it was present.
func (s *Set) Erase(key []byte) (bool, error) {
	_, erased, err := s.t.erase(key)
	return erased, err
}

// Size returns the number of keys currently stored.
func (s *Set) Size() int {
	return s.t.size
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{t: s.t.clone()}
}

// Keys returns an iterator over every stored key, in an unspecified,
// forward-only order. It makes no ordering guarantee and in
// particular is not lexicographic.
func (s *Set) Keys() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for k := range s.t.all() {
			if !yield(k) {
				return
			}
		}
	}
}

// Begin returns a cursor positioned at the set's first entry, or an
// invalid cursor if the set is empty.
func (s *Set) Begin() *Iterator {
	return s.t.begin()
}

// End returns a cursor one past the set's last entry. Its only use is
// as a sentinel to compare against or to step backward from with
// Prev.
func (s *Set) End() *Iterator {
	return s.t.end()
}
