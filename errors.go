// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ptrie

import "errors"

// ErrKeyTooLong is returned when a key longer than the 65535-byte
// virtual-key limit is presented to Insert, Exists, Erase, or
// GetOrInsert.
var ErrKeyTooLong = errors.New("ptrie: key too long")

// assertInvariant panics with msg when ok is false. It is only reachable when
// built with the ptriedebug tag (see assert_debug.go/assert_release.go);
// release builds compile it to a no-op so invariant checks cost
// nothing in production, the same trade bart makes with its own
// debug-only assertions gated behind a build tag.
func assertInvariant(ok bool, msg string) {
	assertHook(ok, msg)
}
