// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ptrie

import (
	"math/rand"
	"testing"
)

func TestSetCloneIndependence(t *testing.T) {
	t.Parallel()

	s, err := NewSet(nil)
	if err != nil {
		t.Fatal(err)
	}

	prng := rand.New(rand.NewSource(11))
	var keys [][]byte
	for i := 0; i < 300; i++ {
		k := make([]byte, 8)
		prng.Read(k)
		keys = append(keys, k)
		if _, err := s.Insert(k); err != nil {
			t.Fatal(err)
		}
	}

	clone := s.Clone()
	for _, k := range keys[:100] {
		if _, err := clone.Erase(k); err != nil {
			t.Fatal(err)
		}
	}

	for i, k := range keys {
		ok, err := s.Exists(k)
		if err != nil || !ok {
			t.Fatalf("original lost key %d after cloning and mutating the clone", i)
		}
	}
	for i, k := range keys[:100] {
		ok, _ := clone.Exists(k)
		if ok {
			t.Fatalf("clone still has erased key %d", i)
		}
	}
	for i, k := range keys[100:] {
		ok, err := clone.Exists(k)
		if err != nil || !ok {
			t.Fatalf("clone lost surviving key %d", i)
		}
	}
	if s.Size() != len(keys) {
		t.Fatalf("original Size = %d, want %d", s.Size(), len(keys))
	}
	if clone.Size() != len(keys)-100 {
		t.Fatalf("clone Size = %d, want %d", clone.Size(), len(keys)-100)
	}
}

// TestIteratorEarlyStop confirms Keys honors the yield-returns-false
// early-stop protocol instead of always walking every entry.
func TestIteratorEarlyStop(t *testing.T) {
	t.Parallel()

	s, err := NewSet(nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 50; i++ {
		if _, err := s.Insert([]byte{byte(i)}); err != nil {
			t.Fatal(err)
		}
	}

	count := 0
	for range s.Keys() {
		count++
		if count == 5 {
			break
		}
	}
	if count != 5 {
		t.Fatalf("iteration stopped at %d, want 5", count)
	}
}
