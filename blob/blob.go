// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package blob is a thin, non-generic []byte-in/[]byte-out front door
// over ptrie.Set and ptrie.Map, for callers stuck with opaque byte
// blobs and no convenient way to thread a type parameter through their
// own code.
//
// It mirrors the narrow external-facing shim pattern used elsewhere for
// exposing a node-graph-shaped API without handing out the internal
// types themselves.
package blob

import "github.com/gaissmai/ptrie"

// Set wraps a ptrie.Set behind a []byte-only API. It adds nothing over
// ptrie.Set itself; it exists purely so packages that can't or won't
// import the generic core still get a usable type name of their own.
type Set struct {
	inner *ptrie.Set
}

// New constructs a blob Set. A nil cfg selects ptrie.DefaultConfig.
func New(cfg *ptrie.Config) (*Set, error) {
	s, err := ptrie.NewSet(cfg)
	if err != nil {
		return nil, err
	}
	return &Set{inner: s}, nil
}

func (s *Set) Insert(key []byte) (bool, error) { return s.inner.Insert(key) }
func (s *Set) Exists(key []byte) (bool, error) { return s.inner.Exists(key) }
func (s *Set) Erase(key []byte) (bool, error)  { return s.inner.Erase(key) }
func (s *Set) Size() int                        { return s.inner.Size() }

// Map wraps a ptrie.Map[[]byte]: both keys and values are opaque blobs.
type Map struct {
	inner *ptrie.Map[[]byte]
}

// NewMap constructs a blob Map. A nil cfg selects ptrie.DefaultConfig.
func NewMap(cfg *ptrie.Config) (*Map, error) {
	m, err := ptrie.NewMap[[]byte](cfg)
	if err != nil {
		return nil, err
	}
	return &Map{inner: m}, nil
}

func (m *Map) Insert(key, value []byte) (uint64, bool, error) {
	return m.inner.Insert(key, value)
}

func (m *Map) GetByKey(key []byte) ([]byte, bool, error) {
	return m.inner.GetByKey(key)
}

func (m *Map) Get(id uint64) ([]byte, bool) {
	return m.inner.Get(id)
}

func (m *Map) Erase(key []byte) (uint64, bool, error) {
	return m.inner.Erase(key)
}

func (m *Map) Size() int { return m.inner.Size() }
