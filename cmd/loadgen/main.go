// SPDX-License-Identifier: MIT

// Package main drives a counter registry with random background load and
// prints it periodically.
//
// Scenario:
//
//	-tasks goroutines stand in for background workers and bump
//	"call.thread.worker.<i>" every 0.5–5s; -requests goroutines stand in for
//	request handlers and bump a random "req.page.<1..4>" every 0.1–1s, with
//	the total request rate capped by -rps. The registry is printed every
//	-every until -duration elapses or the process is interrupted.
//
//	loadgen -backend fixed -tasks 2 -requests 4 -duration 10s
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/concurrency/config"
	"github.com/katalvlaran/concurrency/metrics"
)

const pages = 4

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "loadgen:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		backend  = flag.String("backend", "dynamic", "counter backend: dynamic or fixed")
		tasks    = flag.Int("tasks", 2, "number of task workers")
		requests = flag.Int("requests", 4, "number of request workers")
		rps      = flag.Float64("rps", 20, "cap on total request increments per second")
		every    = flag.Duration("every", 2*time.Second, "print interval")
		duration = flag.Duration("duration", 0, "stop after this long (0 runs until interrupted)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := cfg.Logger()

	reg, err := newRegistry(*backend, *tasks)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	limiter := rate.NewLimiter(rate.Limit(*rps), 1)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < *tasks; i++ {
		name := fmt.Sprintf("call.thread.worker.%d", i)
		seed := int64(i)
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed))
			return loop(ctx, rng, 500*time.Millisecond, 5*time.Second, func(*rand.Rand) error {
				return reg.Inc(name)
			})
		})
	}
	for i := 0; i < *requests; i++ {
		seed := int64(1000 + i)
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed))
			return loop(ctx, rng, 100*time.Millisecond, time.Second, func(rng *rand.Rand) error {
				if err := limiter.Wait(ctx); err != nil {
					return err
				}
				return reg.Inc(fmt.Sprintf("req.page.%d", 1+rng.Intn(pages)))
			})
		})
	}
	g.Go(func() error {
		ticker := time.NewTicker(*every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				fmt.Print(reg, "\n")
			}
		}
	})

	err = g.Wait()
	fmt.Print(reg)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		logger.Error("load generator stopped", "error", err)
		return err
	}
	logger.Info("load generator stopped", "backend", *backend)

	return nil
}

// newRegistry picks the backend. The fixed backend pre-registers every name
// the workers will use.
func newRegistry(backend string, tasks int) (metrics.Registry, error) {
	switch backend {
	case "dynamic":
		return metrics.NewDynamic(), nil
	case "fixed":
		names := make([]string, 0, tasks+pages)
		for p := 1; p <= pages; p++ {
			names = append(names, fmt.Sprintf("req.page.%d", p))
		}
		for i := 0; i < tasks; i++ {
			names = append(names, fmt.Sprintf("call.thread.worker.%d", i))
		}
		return metrics.NewFixed(names...), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}

// loop sleeps a random duration in [lo, hi) and calls fn until ctx is done or
// fn fails.
func loop(ctx context.Context, rng *rand.Rand, lo, hi time.Duration, fn func(*rand.Rand) error) error {
	for {
		wait := lo + time.Duration(rng.Int63n(int64(hi-lo)))
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		if err := fn(rng); err != nil {
			return err
		}
	}
}
