// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package ptrie provides a compact prefix trie for arbitrary byte-keyed
// sets and maps.
//
// ptrie is optimized for large populations of similar binary keys: it
// branches on small bit groups (chunks) near the root and batches the
// remaining key suffixes ("residues") into buckets of siblings that
// share a prefix. This compacts the tree dramatically compared to a
// classic radix trie, at the cost of O(bucket size) work on the last
// few levels of a lookup.
//
// Set stores keys with no associated value. Map additionally associates
// a value with each key and hands out a stable entry id on first
// insert, valid for the lifetime of the trie (or until the key is
// erased).
//
// ptrie is not safe for concurrent use: readers and writers must be
// serialized by the caller, the same contract bart.Table documents for
// its own update methods.
package ptrie
