package strategy

import (
	"flag"
	"time"

	"github.com/lucaskalb/rapidx/eff"
	"github.com/lucaskalb/rapidx/shrink"
)

// Config mirrors prop.Config's fields; it lives here too so a caller that
// only wants the bare strategy machinery (no *testing.T adapter) can build
// one without importing prop.
type Config struct {
	Seed        int64
	Examples    int
	MaxShrink   int
	ShrinkStrat shrink.Strategy
	Discards    int
}

var (
	flagSeed        = flag.Int64("rapidx.seed", 0, "random seed for test case generation")
	flagExamples    = flag.Int("rapidx.examples", 100, "number of test cases to generate")
	flagMaxShrink   = flag.Int("rapidx.maxshrink", 400, "maximum number of shrinking steps")
	flagShrinkStrat = flag.String("rapidx.shrink.strategy", "bfs", "shrinking strategy (bfs or dfs)")
	flagDiscards    = flag.Int("rapidx.discards", 100, "maximum consecutive discards before giving up")
)

// FlagSeed, FlagExamples, FlagMaxShrink, and FlagShrinkStrat expose the raw
// flag values Default() resolves, so a package that wants the same
// command-line defaults (prop, notably) doesn't need to register its own
// competing flag.Int64/flag.Int/flag.String calls for the same names — two
// packages defining the same flag on flag.CommandLine panics at
// package-init time with "flag redefined".
func FlagSeed() int64         { return *flagSeed }
func FlagExamples() int       { return *flagExamples }
func FlagMaxShrink() int      { return *flagMaxShrink }
func FlagShrinkStrat() string { return *flagShrinkStrat }

// Default returns a Config built from command-line flags, the same
// convention prop.Default() follows.
func Default() Config {
	order := shrink.BFS
	if *flagShrinkStrat == "dfs" {
		order = shrink.DFS
	}
	seed := *flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return Config{
		Seed:        seed,
		Examples:    *flagExamples,
		MaxShrink:   *flagMaxShrink,
		ShrinkStrat: order,
		Discards:    *flagDiscards,
	}
}

// Build composes Random, Sized (per the given size), and Shrinking into
// one Strategy for a single example, in the teacher's layering order:
// random sampling is the innermost concern, size and shrinking sit above
// it (Pipe nests g inside f's scope, so the outermost argument here —
// Shrinking — is the first handler a Shrink call reaches).
func (c Config) Build(size uint64) Strategy {
	return c.BuildFrom(size, nil)
}

// BuildFrom is Build, but seeds the shrink search from input instead of
// starting empty — used to resume minimizing a previously recorded
// counterexample (see replay.Store) rather than rediscovering it.
func (c Config) BuildFrom(size uint64, input *shrink.Trie) Strategy {
	random := Random(c.Seed)
	sized := Sized(size)
	// Random reseeds its *rand.Rand fresh on every invocation, which
	// already reproduces the same samples on replay; eff.Rewind is the
	// explicit effect a generator can call to ask for the same reset
	// without relying on that incidental per-invocation behavior.
	shrinking := ShrinkingFrom(c.ShrinkStrat, eff.Rewind, input)
	return Pipe(shrinking, Pipe(random, sized))
}
