package gen

import (
	"github.com/lucaskalb/rapidx/atom"
	"github.com/lucaskalb/rapidx/eff"
)

var int64Site = atom.Symbol("gen.Int64")

// Int64 generates int64 values with the same automatic-range rule as Int.
func Int64(size Size) Generator[int64] {
	return func() int64 {
		min, max := localSize(size, -100, 100)
		base := min + int64(eff.Sample(uint64(max-min)))
		return shrinkSite(int64Site, base, min, max)
	}
}

// Int64Range generates int64 values uniformly in [min, max] (inclusive).
func Int64Range(min, max int64) Generator[int64] {
	if min > max {
		min, max = max, min
	}
	return func() int64 {
		base := min + int64(eff.Sample(uint64(max-min)))
		return shrinkSite(int64Site, base, min, max)
	}
}
