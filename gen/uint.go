package gen

import (
	"github.com/lucaskalb/rapidx/atom"
	"github.com/lucaskalb/rapidx/eff"
)

var uintSite = atom.Symbol("gen.Uint")

// Uint generates uint values in [0, M] where M comes from Size or the
// ambient size, defaulting to 100 with neither.
func Uint(size Size) Generator[uint] {
	return func() uint {
		_, max := localSize(size, 0, 100)
		if max < 0 {
			max = -max
		}
		base := int64(eff.Sample(uint64(max)))
		return uint(shrinkSite(uintSite, base, 0, max))
	}
}

// UintRange generates uint values uniformly in [min, max] (inclusive).
func UintRange(min, max uint) Generator[uint] {
	if min > max {
		min, max = max, min
	}
	return func() uint {
		base := int64(min) + int64(eff.Sample(uint64(max-min)))
		return uint(shrinkSite(uintSite, base, int64(min), int64(max)))
	}
}
