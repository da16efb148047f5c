package gen

import (
	"testing"

	"github.com/lucaskalb/rapidx/eff"
	"github.com/lucaskalb/rapidx/strategy"
)

// runGen installs a deterministic Random strategy around f, so a
// generator's Sample/Next/Shrink effects have a concrete handler the way
// they would inside a real property run.
func runGen(t *testing.T, seed int64, f func()) {
	t.Helper()
	if err := strategy.Random(seed)(func() error {
		f()
		return nil
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// strategyRandomTrueAlways runs f with Next forced to true (so a Bool's
// initial draw is always true) and Shrink forced to the first alternative,
// the combination TestBoolShrinksToFalse needs to exercise Bool's
// true-shrinks-to-false rule deterministically.
func strategyRandomTrueAlways(f func()) error {
	scope := eff.Install(
		eff.BindNext(func(eff.Weight, eff.Weight) bool { return true }),
		eff.BindShrink(func(size uint64) (uint64, bool) {
			if size == 0 {
				return 0, false
			}
			return 0, true
		}),
	)
	defer scope.Close()
	f()
	return nil
}

// installShrinkFirst runs f under a Random strategy plus a Shrink handler
// that always takes the first offered alternative — simulating what a
// minimizer converges toward without running a whole RunRetrospective
// search, for tests that just want to see a generator's "most shrunk"
// value at a given site.
func installShrinkFirst(f func()) error {
	return strategy.Random(123)(func() error {
		scope := eff.Install(eff.BindShrink(func(size uint64) (uint64, bool) {
			if size == 0 {
				return 0, false
			}
			return 0, true
		}))
		defer scope.Close()
		f()
		return nil
	})
}
