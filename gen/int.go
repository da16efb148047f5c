// File: gen/int.go
package gen

import (
	"github.com/lucaskalb/rapidx/atom"
	"github.com/lucaskalb/rapidx/eff"
)

var intSite = atom.Symbol("gen.Int")

// Int generates ints with automatic range based on Size:
//   - if sz.Max (or |sz.Min|) > 0: range := [-M, M], where M = max(|sz.Min|, |sz.Max|)
//   - otherwise, uses the ambient ForAll/strategy size, or [-100, 100] with
//     no size at all.
func Int(size Size) Generator[int] {
	return func() int {
		min, max := localSize(size, -100, 100)
		base := min + int64(eff.Sample(uint64(max-min)))
		return int(shrinkSite(intSite, base, min, max))
	}
}

// IntRange generates integers uniformly in the range [min, max] (inclusive),
// ignoring the ambient size.
func IntRange(min, max int) Generator[int] {
	if min > max {
		min, max = max, min
	}
	return func() int {
		base := int64(min) + int64(eff.Sample(uint64(max-min)))
		return int(shrinkSite(intSite, base, int64(min), int64(max)))
	}
}
