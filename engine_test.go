// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ptrie

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestSetBasic(t *testing.T) {
	t.Parallel()

	s, err := NewSet(nil)
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}

	inserted, err := s.Insert([]byte("hello"))
	if err != nil || !inserted {
		t.Fatalf("Insert: inserted=%v err=%v", inserted, err)
	}
	inserted, err = s.Insert([]byte("hello"))
	if err != nil || inserted {
		t.Fatalf("duplicate Insert: inserted=%v err=%v", inserted, err)
	}

	ok, err := s.Exists([]byte("hello"))
	if err != nil || !ok {
		t.Fatalf("Exists: ok=%v err=%v", ok, err)
	}
	ok, err = s.Exists([]byte("world"))
	if err != nil || ok {
		t.Fatalf("Exists(absent): ok=%v err=%v", ok, err)
	}

	if s.Size() != 1 {
		t.Fatalf("Size = %d, want 1", s.Size())
	}

	erased, err := s.Erase([]byte("hello"))
	if err != nil || !erased {
		t.Fatalf("Erase: erased=%v err=%v", erased, err)
	}
	ok, _ = s.Exists([]byte("hello"))
	if ok {
		t.Fatalf("Exists after Erase: got true")
	}
	if s.Size() != 0 {
		t.Fatalf("Size after Erase = %d, want 0", s.Size())
	}
}

// TestAllOneByteKeys inserts all 256 one-byte keys and queries each.
func TestAllOneByteKeys(t *testing.T) {
	t.Parallel()

	s, err := NewSet(nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 256; i++ {
		if _, err := s.Insert([]byte{byte(i)}); err != nil {
			t.Fatalf("Insert(%d): %v", i, err)
		}
	}
	if s.Size() != 256 {
		t.Fatalf("Size = %d, want 256", s.Size())
	}
	for i := 0; i < 256; i++ {
		ok, err := s.Exists([]byte{byte(i)})
		if err != nil || !ok {
			t.Fatalf("Exists(%d): ok=%v err=%v", i, ok, err)
		}
	}
}

// TestDescendingEraseOutward inserts 256 one-byte keys descending, then
// erases alternating outward from the midpoint, checking membership
// after each erase.
func TestDescendingEraseOutward(t *testing.T) {
	t.Parallel()

	s, err := NewSet(nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 255; i >= 0; i-- {
		if _, err := s.Insert([]byte{byte(i)}); err != nil {
			t.Fatal(err)
		}
	}

	order := outwardFromMidpoint(256)
	erased := make(map[int]bool, 256)
	for _, k := range order {
		if _, err := s.Erase([]byte{byte(k)}); err != nil {
			t.Fatal(err)
		}
		erased[k] = true

		for v := 0; v < 256; v++ {
			ok, err := s.Exists([]byte{byte(v)})
			if err != nil {
				t.Fatal(err)
			}
			want := !erased[v]
			if ok != want {
				t.Fatalf("after erasing %v: Exists(%d) = %v, want %v", k, v, ok, want)
			}
		}
	}
	if s.Size() != 0 {
		t.Fatalf("Size after full erase = %d, want 0", s.Size())
	}
}

func outwardFromMidpoint(n int) []int {
	mid := n / 2
	out := make([]int, 0, n)
	out = append(out, mid-1) // the key just below the midpoint first, so erase order brackets the midpoint
	lo, hi := mid-2, mid
	for lo >= 0 || hi < n {
		if hi < n {
			out = append(out, hi)
			hi++
		}
		if lo >= 0 {
			out = append(out, lo)
			lo--
		}
	}
	// The erase order starts at the max key, so prepend it and drop its
	// duplicate further down the sequence if present.
	full := append([]int{n - 1}, out...)
	seen := make(map[int]bool, n)
	dedup := full[:0]
	for _, v := range full {
		if seen[v] {
			continue
		}
		seen[v] = true
		dedup = append(dedup, v)
	}
	return dedup
}

// TestUnpackRoundTrip inserts random 20-byte keys, then confirms every
// (key, id) pair the iterator yields reconstructs its original key.
func TestUnpackRoundTrip(t *testing.T) {
	t.Parallel()

	m, err := NewMap[int](nil)
	if err != nil {
		t.Fatal(err)
	}

	prng := rand.New(rand.NewSource(314))
	const n = 2048 // scaled down from the literal scenario size for test speed
	want := make(map[uint64][]byte, n)

	for i := 0; i < n; i++ {
		key := make([]byte, 20)
		prng.Read(key)
		id, inserted, err := m.Insert(key, i)
		if err != nil {
			t.Fatal(err)
		}
		if inserted {
			want[id] = append([]byte(nil), key...)
		}
	}

	got := 0
	for key, id := range m.t.all() {
		orig, ok := want[id]
		if !ok {
			t.Fatalf("unpacked id %d not among inserted ids", id)
		}
		if !bytes.Equal(key, orig) {
			t.Fatalf("unpack(id=%d) = %x, want %x", id, key, orig)
		}
		got++
	}
	if got != len(want) {
		t.Fatalf("iterator yielded %d entries, want %d", got, len(want))
	}
}

// TestCloneIndependence inserts integer keys via the map variant,
// clones, then erases half the keys from the clone only.
func TestCloneIndependence(t *testing.T) {
	t.Parallel()

	m, err := NewMap[int](nil)
	if err != nil {
		t.Fatal(err)
	}

	const n = 2000 // scaled down from the literal scenario size for test speed
	for i := 0; i < n; i++ {
		if _, _, err := m.Insert(beKey(uint64(i)), i); err != nil {
			t.Fatal(err)
		}
	}

	clone := m.Clone()
	for i := 0; i < n/2; i++ {
		if _, erased, err := clone.Erase(beKey(uint64(i))); err != nil || !erased {
			t.Fatalf("Erase(%d) on clone: erased=%v err=%v", i, erased, err)
		}
	}

	for i := 0; i < n; i++ {
		v, ok, err := m.GetByKey(beKey(uint64(i)))
		if err != nil || !ok || v != i {
			t.Fatalf("original missing/changed key %d: v=%d ok=%v err=%v", i, v, ok, err)
		}
	}

	for i := 0; i < n/2; i++ {
		_, ok, err := clone.GetByKey(beKey(uint64(i)))
		if err != nil || ok {
			t.Fatalf("clone still has erased key %d", i)
		}
	}
	for i := n / 2; i < n; i++ {
		v, ok, err := clone.GetByKey(beKey(uint64(i)))
		if err != nil || !ok || v != i {
			t.Fatalf("clone missing/changed surviving key %d: v=%d ok=%v err=%v", i, v, ok, err)
		}
	}
}

func beKey(v uint64) []byte {
	b := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
	return b
}

// TestSmallBSIZEIteration configures BSIZE=4 with a low SplitBound,
// inserts random keys, and confirms forward iteration yields exactly
// Size distinct entries.
func TestSmallBSIZEIteration(t *testing.T) {
	t.Parallel()

	cfg := &Config{BSIZE: 4, HeapBound: pointerSize + 1, SplitBound: 6}
	s, err := NewSet(cfg)
	if err != nil {
		t.Fatal(err)
	}

	prng := rand.New(rand.NewSource(99))
	const n = 2048 // scaled down from the literal scenario size for test speed
	for i := 0; i < n; i++ {
		key := make([]byte, 20)
		prng.Read(key)
		if _, err := s.Insert(key); err != nil {
			t.Fatal(err)
		}
	}

	count := 0
	for range s.Keys() {
		count++
	}
	if count != s.Size() {
		t.Fatalf("iterator yielded %d entries, want %d", count, s.Size())
	}
}
