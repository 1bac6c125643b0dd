// SPDX-License-Identifier: MIT

// Package main multiplies two random integer matrices on the worker-pool
// engine and prints the product and the engine counters.
//
// Configuration comes from CONCURRENCY_* environment variables (see package
// config); shapes and output from flags:
//
//	matmul -m 3 -k 4 -n 2 -print -verify
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/concurrency/config"
	"github.com/katalvlaran/concurrency/matrix"
	"github.com/katalvlaran/concurrency/metrics"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "matmul:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		m      = flag.Int("m", 2, "rows of A")
		k      = flag.Int("k", 3, "cols of A / rows of B")
		n      = flag.Int("n", 2, "cols of B")
		seed   = flag.Int64("seed", time.Now().UnixNano(), "random seed")
		show   = flag.Bool("print", true, "print operands and product")
		verify = flag.Bool("verify", false, "check the product against a sequential triple loop")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := cfg.Logger()
	reg := metrics.NewFixed(matrix.CounterNames(cfg.Workers)...)
	engine := matrix.NewEngine(cfg.EngineOptions(logger, reg)...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rng := rand.New(rand.NewSource(*seed))
	a, err := random(rng, *m, *k)
	if err != nil {
		return err
	}
	b, err := random(rng, *k, *n)
	if err != nil {
		return err
	}

	start := time.Now()
	c, err := matrix.MultiplyWith(ctx, engine, a, b)
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "multiplied",
		"a", fmt.Sprintf("%dx%d", a.Rows(), a.Cols()),
		"b", fmt.Sprintf("%dx%d", b.Rows(), b.Cols()),
		"workers", engine.Workers(),
		"duration", time.Since(start),
	)

	if *show {
		fmt.Printf("A = %v\nB = %v\nA×B = %v\n", a, b, c)
	}
	if *verify {
		if !sequential(a, b).Equal(c) {
			return fmt.Errorf("verification failed for seed %d", *seed)
		}
		fmt.Println("verified against sequential product")
	}
	fmt.Print(reg)

	return nil
}

// random builds a rows×cols matrix with entries in [-9, 9].
func random(rng *rand.Rand, rows, cols int) (*matrix.Matrix[int], error) {
	data := make([]int, rows*cols)
	for i := range data {
		data[i] = rng.Intn(19) - 9
	}
	return matrix.New(data, rows, cols)
}

// sequential is the single-goroutine i→j→k product.
func sequential(a, b *matrix.Matrix[int]) *matrix.Matrix[int] {
	ad, bd := a.Data(), b.Data()
	r, n, c := a.Rows(), a.Cols(), b.Cols()
	out := make([]int, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			for k := 0; k < n; k++ {
				out[i*c+j] += ad[i*n+k] * bd[k*c+j]
			}
		}
	}
	return matrix.MustNew(out, r, c)
}
