// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

//go:build ptriedebug

package ptrie

// assertHook panics when an internal invariant does not hold. Built
// only under -tags ptriedebug; see SPEC_FULL.md §7.
func assertHook(ok bool, msg string) {
	if !ok {
		panic("ptrie: invariant violated: " + msg)
	}
}
