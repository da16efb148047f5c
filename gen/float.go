package gen

import (
	"math"

	"github.com/lucaskalb/rapidx/atom"
	"github.com/lucaskalb/rapidx/eff"
)

var float32Site = atom.Symbol("gen.Float32")

// Float32 generates float32 values with automatic range based on Size.
// Default: [-100, 100]. Never produces NaN/Inf.
func Float32(size Size) Generator[float32] {
	return func() float32 {
		min, max := autoRangeF32(size)
		return float32(floatSite(float32Site, uniformF(min, max), float64(min), float64(max)))
	}
}

// Float32Range generates float32 in [min, max]; can optionally produce
// NaN/±Inf a small fraction of the time.
func Float32Range(min, max float32, includeNaN, includeInf bool) Generator[float32] {
	if min > max {
		min, max = max, min
	}
	return func() float32 {
		v := uniformF(float64(min), float64(max))
		if includeNaN && eff.Sample(49) == 0 {
			v = math.NaN()
		} else if includeInf && eff.Sample(49) == 1 {
			if eff.Next(eff.W(1), eff.W(1)) {
				v = math.Inf(1)
			} else {
				v = math.Inf(-1)
			}
		}
		return float32(floatSite(float32Site, v, float64(min), float64(max)))
	}
}

func autoRangeF32(size Size) (float32, float32) {
	min, max := localSize(size, -100, 100)
	return float32(min), float32(max)
}

// uniformF generates a uniform random float64 in [min, max].
func uniformF(min, max float64) float64 {
	if max < min {
		min, max = max, min
	}
	if min == max {
		return min
	}
	frac := float64(eff.Sample(1<<53)) / float64(1<<53)
	return min + frac*(max-min)
}

// floatSite offers floatAlternatives(base, min, max) under label.
func floatSite(label atom.Atom, base, min, max float64) float64 {
	return eff.Label(label, func() float64 {
		alts := floatAlternatives(base, min, max)
		if len(alts) == 0 {
			return base
		}
		idx, ok := eff.Shrink(uint64(len(alts)))
		if !ok || idx >= uint64(len(alts)) {
			return base
		}
		return alts[idx]
	})
}
