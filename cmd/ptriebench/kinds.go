// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/gaissmai/ptrie"
)

type benchResult struct {
	insertDur time.Duration
	queryDur  time.Duration
	deleteDur time.Duration
	finalSize int
}

// kindFunc runs one full load/query/delete pass for a single
// comparison target and reports timings.
type kindFunc func(runConfig) (benchResult, error)

var kinds = map[string]kindFunc{
	"ptrie":  runPtrie,
	"std":    runStdMap,
	"sparse": runSparse,
	"dense":  runDense,
	"tbb":    runTBB,
}

func runPtrie(cfg runConfig) (benchResult, error) {
	keys := genKeys(cfg.n, cfg.seed, cfg.keyBytes, cfg.maxByteValue)

	s, err := ptrie.NewSet(nil)
	if err != nil {
		return benchResult{}, err
	}

	t0 := time.Now()
	for _, k := range keys {
		if _, err := s.Insert(k); err != nil {
			return benchResult{}, err
		}
	}
	insertDur := time.Since(t0)

	nRead := int(float64(cfg.n) * cfg.readRate)
	t1 := time.Now()
	for i := 0; i < nRead; i++ {
		if _, err := s.Exists(keys[i%len(keys)]); err != nil {
			return benchResult{}, err
		}
	}
	queryDur := time.Since(t1)

	nDelete := int(float64(cfg.n) * cfg.deleteRatio)
	t2 := time.Now()
	for i := 0; i < nDelete; i++ {
		if _, err := s.Erase(keys[i]); err != nil {
			return benchResult{}, err
		}
	}
	deleteDur := time.Since(t2)

	return benchResult{insertDur, queryDur, deleteDur, s.Size()}, nil
}

func runStdMap(cfg runConfig) (benchResult, error) {
	keys := genKeys(cfg.n, cfg.seed, cfg.keyBytes, cfg.maxByteValue)
	m := make(map[string]struct{}, cfg.n)

	t0 := time.Now()
	for _, k := range keys {
		m[string(k)] = struct{}{}
	}
	insertDur := time.Since(t0)

	nRead := int(float64(cfg.n) * cfg.readRate)
	t1 := time.Now()
	for i := 0; i < nRead; i++ {
		_ = m[string(keys[i%len(keys)])]
	}
	queryDur := time.Since(t1)

	nDelete := int(float64(cfg.n) * cfg.deleteRatio)
	t2 := time.Now()
	for i := 0; i < nDelete; i++ {
		delete(m, string(keys[i]))
	}
	deleteDur := time.Since(t2)

	return benchResult{insertDur, queryDur, deleteDur, len(m)}, nil
}

// runSparse compares against a map-backed membership index keyed by the
// first byte of each key, standing in for the original's small
// dense-array baseline.
func runSparse(cfg runConfig) (benchResult, error) {
	counts := make(map[byte]int, 256)
	return runByteIndexed(cfg, func(b byte) { counts[b]++ }, func(b byte) (int, bool) { v, ok := counts[b]; return v, ok }, func(b byte) { delete(counts, b) }, func() int { return len(counts) })
}

// runDense compares against a full [256]int array, standing in for the
// original's large dense-array baseline.
func runDense(cfg runConfig) (benchResult, error) {
	var counts [256]int
	size := 256
	return runByteIndexed(cfg,
		func(b byte) { counts[b]++ },
		func(b byte) (int, bool) { return counts[b], counts[b] > 0 },
		func(b byte) { counts[b] = 0 },
		func() int { return size })
}

func runByteIndexed(cfg runConfig, insertOne func(byte), lookupOne func(byte) (int, bool), eraseOne func(byte), finalSize func() int) (benchResult, error) {
	keys := genKeys(cfg.n, cfg.seed, cfg.keyBytes, cfg.maxByteValue)

	t0 := time.Now()
	for _, k := range keys {
		insertOne(k[0])
	}
	insertDur := time.Since(t0)

	nRead := int(float64(cfg.n) * cfg.readRate)
	t1 := time.Now()
	for i := 0; i < nRead; i++ {
		lookupOne(keys[i%len(keys)][0])
	}
	queryDur := time.Since(t1)

	nDelete := int(float64(cfg.n) * cfg.deleteRatio)
	t2 := time.Now()
	for i := 0; i < nDelete; i++ {
		eraseOne(keys[i][0])
	}
	deleteDur := time.Since(t2)

	return benchResult{insertDur, queryDur, deleteDur, finalSize()}, nil
}

func runTBB(runConfig) (benchResult, error) {
	return benchResult{}, fmt.Errorf("kind=tbb has no Go-idiomatic equivalent to Intel TBB's concurrent containers; unsupported on this platform")
}
