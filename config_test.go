// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ptrie

import "testing"

func TestResolveDefaults(t *testing.T) {
	t.Parallel()

	r, err := (*Config)(nil).resolve()
	if err != nil {
		t.Fatalf("resolve(nil): %v", err)
	}
	if r.bsize != DefaultBSIZE || r.width != 256 || r.bdiv != 1 {
		t.Fatalf("resolve(nil) = %+v, want BSIZE=8 width=256 bdiv=1", r)
	}
	if r.heapBound != DefaultHeapBound || r.splitBound != DefaultSplitBound || r.allocSize != DefaultAllocSize {
		t.Fatalf("resolve(nil) defaults = %+v", r)
	}
}

func TestResolveBSIZEVariants(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		bsize     int
		wantWidth int
		wantBDiv  uint
	}{
		{2, 4, 4},
		{4, 16, 2},
		{8, 256, 1},
	} {
		cfg := &Config{BSIZE: tt.bsize, HeapBound: 4, SplitBound: 6, AllocSize: 1024}
		r, err := cfg.resolve()
		if err != nil {
			t.Fatalf("resolve(BSIZE=%d): %v", tt.bsize, err)
		}
		if r.width != tt.wantWidth || r.bdiv != tt.wantBDiv {
			t.Fatalf("resolve(BSIZE=%d) = width=%d bdiv=%d, want width=%d bdiv=%d",
				tt.bsize, r.width, r.bdiv, tt.wantWidth, tt.wantBDiv)
		}
	}
}

func TestResolveRejectsBadConfig(t *testing.T) {
	t.Parallel()

	for _, cfg := range []*Config{
		{BSIZE: 3, HeapBound: 4, SplitBound: 6, AllocSize: 1},
		{BSIZE: 8, HeapBound: -1, SplitBound: 6, AllocSize: 1},
		{BSIZE: 8, HeapBound: maxInlineWidth + 1, SplitBound: 6, AllocSize: 1},
		{BSIZE: 8, HeapBound: 4, SplitBound: 5, AllocSize: 1},
		{BSIZE: 8, HeapBound: 4, SplitBound: 6, AllocSize: -1},
	} {
		if _, err := cfg.resolve(); err == nil {
			t.Fatalf("resolve(%+v): want error, got nil", cfg)
		}
	}
}
