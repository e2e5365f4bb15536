// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command chasebench measures pointer-chasing throughput of the sequential,
// interleaved and stepped traversal strategies.
//
// Usage:
//
//	chasebench [flags]
//
// Flags:
//
//	-t, -traveller   strategy: sync, async or stepped (default async)
//	-r, -repetition  timed traversals per worker (default 3)
//	-a, -array-size  cells per list (default 1048576)
//	-group           lists traversed together (default 4)
//	-seed            deterministic list seed, 0 for random
//	-parallel        independent workers (default 1)
//	-cpu             pin worker w to CPU+w, -1 to disable
//	-warmup          untimed traversals before timing
//	-log-level       debug, info, notice, warning, error or off
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"code.hybscloud.com/interleave/internal/bench"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := bench.DefaultConfig()
	logLevel := "info"

	fs := flag.NewFlagSet("chasebench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Traveller, "traveller", cfg.Traveller, "traversal strategy: sync, async or stepped")
	fs.StringVar(&cfg.Traveller, "t", cfg.Traveller, "shorthand for -traveller")
	fs.IntVar(&cfg.Repetitions, "repetition", cfg.Repetitions, "timed traversals per worker")
	fs.IntVar(&cfg.Repetitions, "r", cfg.Repetitions, "shorthand for -repetition")
	fs.IntVar(&cfg.ArraySize, "array-size", cfg.ArraySize, "cells per list")
	fs.IntVar(&cfg.ArraySize, "a", cfg.ArraySize, "shorthand for -array-size")
	fs.IntVar(&cfg.GroupSize, "group", cfg.GroupSize, "lists traversed together")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "deterministic list seed, 0 for random")
	fs.IntVar(&cfg.Parallel, "parallel", cfg.Parallel, "independent workers")
	fs.IntVar(&cfg.CPU, "cpu", cfg.CPU, "pin worker w to CPU+w, -1 to disable")
	fs.IntVar(&cfg.Warmup, "warmup", cfg.Warmup, "untimed traversals before timing")
	fs.StringVar(&logLevel, "log-level", logLevel, "debug, info, notice, warning, error or off")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "chasebench: unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "chasebench: %v\n", err)
		return 2
	}

	logger, err := bench.NewLogger(stderr, logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "chasebench: %v\n", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := bench.Run(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(stderr, "chasebench: %v\n", err)
		return 1
	}
	if err := report.Print(stdout); err != nil {
		fmt.Fprintf(stderr, "chasebench: %v\n", err)
		return 1
	}
	return 0
}
