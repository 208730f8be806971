// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/spaolacci/murmur3"
)

// genKeys produces n reproducible pseudo-random byte keys of the given
// length from seed. Each key is itself derived by hashing a
// little-endian counter with Murmur3 and expanding the 128-bit digest
// to the requested length, so distinct runs with the same seed always
// produce the same key set (the harness's own PRNG, rand/v2, only
// picks the counter order once up front).
func genKeys(n int, seed uint64, keyBytes int, maxByteValue int) [][]byte {
	prng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	order := prng.Perm(n)

	keys := make([][]byte, n)
	for i, counter := range order {
		var ctr [8]byte
		binary.LittleEndian.PutUint64(ctr[:], uint64(counter))

		key := make([]byte, 0, keyBytes)
		blockSeed := uint32(seed)
		for len(key) < keyBytes {
			h1, h2 := murmur3.Sum128WithSeed(ctr[:], blockSeed)
			var block [16]byte
			binary.LittleEndian.PutUint64(block[:8], h1)
			binary.LittleEndian.PutUint64(block[8:], h2)
			key = append(key, block[:]...)
			blockSeed++
		}
		key = key[:keyBytes]
		if maxByteValue < 255 {
			for j := range key {
				key[j] = key[j] % byte(maxByteValue+1)
			}
		}
		keys[i] = key
	}
	return keys
}
