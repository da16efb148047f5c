package gen

import (
	"math"

	"github.com/lucaskalb/rapidx/atom"
	"github.com/lucaskalb/rapidx/eff"
)

var float64Site = atom.Symbol("gen.Float64")

// Float64 generates floats with automatic range based on Size. Without a
// Size it uses [-100, 100] and never produces NaN/Inf.
func Float64(size Size) Generator[float64] {
	return func() float64 {
		min, max := localSize(size, -100, 100)
		lo, hi := float64(min), float64(max)
		return floatSite(float64Site, uniformF(lo, hi), lo, hi)
	}
}

// Float64Range generates float64 in [min, max]; can optionally produce
// NaN/±Inf a small fraction of the time.
func Float64Range(min, max float64, includeNaN, includeInf bool) Generator[float64] {
	if min > max {
		min, max = max, min
	}
	return func() float64 {
		v := uniformF(min, max)
		if includeNaN && eff.Sample(49) == 0 {
			v = math.NaN()
		} else if includeInf && eff.Sample(49) == 1 {
			if eff.Next(eff.W(1), eff.W(1)) {
				v = math.Inf(1)
			} else {
				v = math.Inf(-1)
			}
		}
		return floatSite(float64Site, v, min, max)
	}
}
