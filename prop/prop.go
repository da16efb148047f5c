// Package prop provides property-based testing functionality for Go.
// It allows you to test properties of your code by generating random test cases
// and automatically shrinking counterexamples when failures are found.
package prop

import (
	"errors"
	"flag"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/lucaskalb/rapidx/eff"
	"github.com/lucaskalb/rapidx/gen"
	"github.com/lucaskalb/rapidx/replay"
	"github.com/lucaskalb/rapidx/shrink"
	"github.com/lucaskalb/rapidx/strategy"
)

// Config holds the configuration for property-based testing.
type Config struct {
	// Seed is the random seed used for test case generation.
	// If zero, a random seed will be generated based on the current time.
	Seed int64

	// Examples is the number of test cases to generate and run.
	Examples int

	// MaxShrink is the maximum number of shrinking steps to perform
	// when a counterexample is found.
	MaxShrink int

	// ShrinkStrat specifies the shrinking strategy to use.
	// Supported strategies: "bfs" (breadth-first), "dfs" (depth-first).
	ShrinkStrat string

	// StopOnFirstFailure determines whether to stop testing
	// after the first failing test case is found.
	StopOnFirstFailure bool

	// Parallelism specifies the number of parallel workers to use
	// for running test cases. Must be at least 1.
	Parallelism int

	// ReplayDir, if non-empty, persists minimized counterexamples as one
	// JSON file per property under this directory, so a later run of the
	// same test replays the failure instead of rediscovering it by
	// chance. Empty keeps counterexamples in memory for this process
	// only.
	ReplayDir string

	// MaxSize caps the Size report ForAll scales up to across Examples;
	// the teacher's own generators default to small bounded ranges, so
	// 100 mirrors that scale unless a caller asks for bigger inputs.
	MaxSize uint64
}

// flagParallelism and flagReplayDir are the only flags this package
// registers itself: Seed/Examples/MaxShrink/ShrinkStrat are read from
// strategy's flags instead (see strategy.FlagSeed and siblings) — both
// packages registering flag.Int64/flag.Int/flag.String under the same
// names on flag.CommandLine would panic at package-init time with "flag
// redefined", and prop already imports strategy for Config.Build.
var (
	// flagParallelism sets the number of parallel workers.
	// Default: 1.
	flagParallelism = flag.Int("rapidx.shrink.parallel", 1, "Number of parallel workers")

	// flagReplayDir sets the directory minimized counterexamples persist
	// under. Default: "" (in-memory only, nothing survives the process).
	flagReplayDir = flag.String("rapidx.replay.dir", "", "Directory to persist minimized counterexamples under")
)

// Default returns a Config with default values based on command-line flags.
// This is the recommended way to create a configuration for property-based testing.
func Default() Config {
	return Config{
		Seed:               strategy.FlagSeed(),
		Examples:           strategy.FlagExamples(),
		MaxShrink:          strategy.FlagMaxShrink(),
		ShrinkStrat:        strategy.FlagShrinkStrat(),
		StopOnFirstFailure: true,
		Parallelism:        *flagParallelism,
		ReplayDir:          *flagReplayDir,
		MaxSize:            100,
	}
}

// effectiveSeed returns the effective seed to use for random number generation.
// If the configured seed is zero, it returns a random seed based on the current time.
func (c Config) effectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

func (c Config) shrinkOrder() shrink.Strategy {
	if c.ShrinkStrat == "dfs" {
		return shrink.DFS
	}
	return shrink.BFS
}

func (c Config) strategyConfig(seed int64) strategy.Config {
	return strategy.Config{
		Seed:        seed,
		Examples:    c.Examples,
		MaxShrink:   c.MaxShrink,
		ShrinkStrat: c.shrinkOrder(),
	}
}

func (c Config) store() replay.Store {
	if c.ReplayDir == "" {
		return replay.NewMemoryStore()
	}
	return replay.FileStore{Dir: c.ReplayDir}
}

func (c Config) maxSize() uint64 {
	if c.MaxSize == 0 {
		return 100
	}
	return c.MaxSize
}

// ForAll creates a property-based test that generates test cases using the provided generator
// and runs them against the given test function. It returns a function that takes the test
// body as a parameter.
//
// The test will generate cfg.Examples number of test cases, and if any fail, it will attempt
// to shrink the counterexample to find a minimal failing case.
//
// Example usage:
//
//	ForAll(t, prop.Default(), gen.Int(gen.Size{}))(func(t *testing.T, x int) {
//	    // Test property: x + 0 == x
//	    if x+0 != x {
//	        t.Errorf("addition identity failed for %d", x)
//	    }
//	})
func ForAll[T any](t *testing.T, cfg Config, g gen.Generator[T]) func(func(*testing.T, T)) {
	return func(body func(*testing.T, T)) {
		seed := cfg.effectiveSeed()
		gen.SetShrinkStrategy(cfg.ShrinkStrat)

		t.Logf("[rapidx] seed=%d examples=%d maxshrink=%d strategy=%s parallelism=%d",
			seed, cfg.Examples, cfg.MaxShrink, cfg.ShrinkStrat, cfg.Parallelism)

		if cfg.Parallelism <= 1 {
			runSequential(t, cfg, g, body, seed)
		} else {
			runParallel(t, cfg, g, body, seed)
		}
	}
}

// runSequential executes property-based tests sequentially (single-threaded).
// It generates test cases one by one through a strategy.Config-built Strategy and
// runs them against the test function, shrinking any counterexample it finds.
func runSequential[T any](t *testing.T, cfg Config, g gen.Generator[T], body func(*testing.T, T), seed int64) {
	store := cfg.store()
	sc := cfg.strategyConfig(seed)
	propName := t.Name()

	scope := replay.Install(store, propName)
	defer scope.Close()

	var input *shrink.Trie
	if trie, ok := replay.ReadTrie(); ok {
		input = trie
	}

	for i := 0; i < cfg.Examples; i++ {
		name := fmt.Sprintf("ex#%d", i+1)
		size := strategy.LinearSize(i, cfg.Examples, cfg.maxSize())

		step := 0
		run := func() error {
			v := g()
			sname := name
			if step > 0 {
				sname = fmt.Sprintf("%s/shrink#%d", name, step)
			}
			step++
			if !t.Run(sname, func(st *testing.T) { body(st, v) }) {
				return fmt.Errorf("property failed for %#v", v)
			}
			return nil
		}

		err := sc.BuildFrom(size, input)(run)
		input = nil
		if err == nil {
			continue
		}

		var perr *strategy.PropertyError
		if errors.As(err, &perr) {
			replay.WriteTrie(perr.Trie)
			full := fmt.Sprintf("^%s$/%s(/|$)", t.Name(), name)
			t.Fatalf("[rapidx] property failed; seed=%d; examples_run=%d; shrunk_steps=%d\n"+
				"replay: go test -run '%s' -rapidx.seed=%d",
				seed, i+1, len(perr.Trace), full, seed)
		} else if strategy.IsDiscardLimit(err) {
			t.Fatalf("[rapidx] %s: too many discarded cases: %v", name, err)
		} else {
			t.Fatalf("[rapidx] %s: %v", name, err)
		}

		if cfg.StopOnFirstFailure {
			return
		}
	}
}

// runParallel executes property-based tests in parallel using multiple goroutines.
// Each worker owns its own Strategy invocation (the eff handler stack is
// goroutine-local — see eff's package doc — so workers never contend over a
// shared *rand.Rand the way the teacher's version had to).
func runParallel[T any](t *testing.T, cfg Config, g gen.Generator[T], body func(*testing.T, T), seed int64) {
	store := cfg.store()
	sc := cfg.strategyConfig(seed)
	propName := t.Name()

	scope := replay.Install(store, propName)
	defer scope.Close()
	replayState := eff.Save()

	testChan := make(chan int, cfg.Examples)
	for i := 0; i < cfg.Examples; i++ {
		testChan <- i
	}
	close(testChan)

	var wg sync.WaitGroup
	var mu sync.Mutex
	failureChan := make(chan failureResult, cfg.Examples)

	for w := 0; w < cfg.Parallelism; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rscope := eff.Restore(replayState)
			defer rscope.Close()
			for i := range testChan {
				name := fmt.Sprintf("ex#%d", i+1)
				size := strategy.LinearSize(i, cfg.Examples, cfg.maxSize())

				step := 0
				run := func() error {
					v := g()
					sname := name
					if step > 0 {
						sname = fmt.Sprintf("%s/shrink#%d", name, step)
					}
					step++
					mu.Lock()
					ok := t.Run(sname, func(st *testing.T) { body(st, v) })
					mu.Unlock()
					if !ok {
						return fmt.Errorf("property failed for %#v", v)
					}
					return nil
				}

				err := sc.BuildFrom(size, nil)(run)
				if err == nil {
					continue
				}

				var perr *strategy.PropertyError
				if errors.As(err, &perr) {
					replay.WriteTrie(perr.Trie)
				}
				failureChan <- failureResult{testIndex: i, name: name, err: err}
				if cfg.StopOnFirstFailure {
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(failureChan)
	}()

	for failure := range failureChan {
		full := fmt.Sprintf("^%s$/%s(/|$)", t.Name(), failure.name)
		t.Fatalf("[rapidx] property failed; seed=%d; examples_run=%d\n"+
			"error: %v\nreplay: go test -run '%s' -rapidx.seed=%d",
			seed, failure.testIndex+1, failure.err, full, seed)
		if cfg.StopOnFirstFailure {
			return
		}
	}
}

// failureResult holds information about a failed test case found by a
// parallel worker.
type failureResult struct {
	testIndex int
	name      string
	err       error
}
