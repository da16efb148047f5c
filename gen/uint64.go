package gen

import (
	"github.com/lucaskalb/rapidx/atom"
	"github.com/lucaskalb/rapidx/eff"
)

var uint64Site = atom.Symbol("gen.Uint64")

// Uint64 generates uint64 values in [0, M], the same rule as Uint.
func Uint64(size Size) Generator[uint64] {
	return func() uint64 {
		_, max := localSize(size, 0, 100)
		if max < 0 {
			max = -max
		}
		base := int64(eff.Sample(uint64(max)))
		return uint64(shrinkSite(uint64Site, base, 0, max))
	}
}

// Uint64Range generates uint64 values uniformly in [min, max] (inclusive).
func Uint64Range(min, max uint64) Generator[uint64] {
	if min > max {
		min, max = max, min
	}
	return func() uint64 {
		base := int64(min) + int64(eff.Sample(max-min))
		return uint64(shrinkSite(uint64Site, base, int64(min), int64(max)))
	}
}
