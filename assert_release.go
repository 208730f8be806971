// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

//go:build !ptriedebug

package ptrie

// assertHook is a no-op outside of -tags ptriedebug builds.
func assertHook(ok bool, msg string) {}
