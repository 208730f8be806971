// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command ptriebench is a micro-benchmark / standard-container
// comparison harness, kept as a separate command never imported by the
// core ptrie package.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	log.SetFlags(0)

	app := &cli.App{
		Name:      "ptriebench",
		Usage:     "micro-benchmark harness for ptrie and standard-container baselines",
		ArgsUsage: "<kind> <n> [seed] [bytes] [delete-ratio] [read-rate] [max-byte-value]",
		Flags: []cli.Flag{
			&cli.Uint64Flag{Name: "seed", Value: 42, Usage: "PRNG seed"},
			&cli.IntFlag{Name: "bytes", Value: 20, Usage: "key length in bytes"},
			&cli.Float64Flag{Name: "delete-ratio", Value: 0, Usage: "fraction of inserted keys to erase"},
			&cli.Float64Flag{Name: "read-rate", Value: 1, Usage: "fraction of keys to query after load"},
			&cli.IntFlag{Name: "max-byte-value", Value: 255, Usage: "upper bound (inclusive) for generated key bytes"},
		},
		Action: runBench,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "ptriebench:", err)
		os.Exit(2)
	}
}

func runBench(c *cli.Context) error {
	if c.Args().Len() < 2 {
		return cli.Exit("expected: <kind> <n> [seed] [bytes] [delete-ratio] [read-rate] [max-byte-value]", 2)
	}

	kindName := c.Args().Get(0)
	n, err := parsePositiveInt(c.Args().Get(1))
	if err != nil {
		return cli.Exit(fmt.Sprintf("bad n: %v", err), 2)
	}

	cfg := runConfig{
		n:            n,
		seed:         c.Uint64("seed"),
		keyBytes:     c.Int("bytes"),
		deleteRatio:  c.Float64("delete-ratio"),
		readRate:     c.Float64("read-rate"),
		maxByteValue: c.Int("max-byte-value"),
	}
	if v := c.Args().Get(2); v != "" {
		if cfg.seed, err = parseUint64(v); err != nil {
			return cli.Exit(fmt.Sprintf("bad seed: %v", err), 2)
		}
	}
	if v := c.Args().Get(3); v != "" {
		if cfg.keyBytes, err = parsePositiveInt(v); err != nil {
			return cli.Exit(fmt.Sprintf("bad bytes: %v", err), 2)
		}
	}
	if v := c.Args().Get(4); v != "" {
		if _, err = fmt.Sscanf(v, "%g", &cfg.deleteRatio); err != nil {
			return cli.Exit(fmt.Sprintf("bad delete-ratio: %v", err), 2)
		}
	}
	if v := c.Args().Get(5); v != "" {
		if _, err = fmt.Sscanf(v, "%g", &cfg.readRate); err != nil {
			return cli.Exit(fmt.Sprintf("bad read-rate: %v", err), 2)
		}
	}
	if v := c.Args().Get(6); v != "" {
		if _, err = fmt.Sscanf(v, "%d", &cfg.maxByteValue); err != nil {
			return cli.Exit(fmt.Sprintf("bad max-byte-value: %v", err), 2)
		}
	}

	kind, ok := kinds[kindName]
	if !ok {
		return cli.Exit(fmt.Sprintf("unsupported kind %q (want one of ptrie, std, sparse, dense, tbb)", kindName), 2)
	}

	result, err := kind(cfg)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	log.Printf("kind=%s n=%d bytes=%d insertDur=%s queryDur=%s deleteDur=%s finalSize=%d",
		kindName, cfg.n, cfg.keyBytes, result.insertDur, result.queryDur, result.deleteDur, result.finalSize)
	return nil
}

type runConfig struct {
	n            int
	seed         uint64
	keyBytes     int
	deleteRatio  float64
	readRate     float64
	maxByteValue int
}

func parsePositiveInt(s string) (int, error) {
	var v int
	_, err := fmt.Sscanf(s, "%d", &v)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("want a positive integer, got %q", s)
	}
	return v, nil
}

func parseUint64(s string) (uint64, error) {
	var v uint64
	_, err := fmt.Sscanf(s, "%d", &v)
	return v, err
}
