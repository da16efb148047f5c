package prop

import (
	"testing"

	"github.com/lucaskalb/rapidx/eff"
	"github.com/lucaskalb/rapidx/strategy"
)

// runGen installs a deterministic Random strategy around f, the same
// helper gen's own tests use, so a generator's Sample/Next/Shrink effects
// have a concrete handler outside of a full ForAll run.
func runGen(t *testing.T, seed int64, f func()) {
	t.Helper()
	if err := strategy.Random(seed)(func() error {
		f()
		return nil
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// runGenSized is runGen, plus a fixed ambient ForAll-style Size, for
// generators (like CommandSequenceGenerator with maxLength 0) that fall
// back to whatever Size the enclosing strategy provides.
func runGenSized(t *testing.T, seed int64, size uint64, f func()) {
	t.Helper()
	err := strategy.Random(seed)(func() error {
		scope := eff.Install(eff.BindSize(func() uint64 { return size }))
		defer scope.Close()
		f()
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// installShrinkFirst runs f under a Random strategy plus a Shrink handler
// that always takes the first offered alternative, mirroring what a
// minimizer converges toward without running a whole RunRetrospective
// search.
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
