package gen

import "github.com/lucaskalb/rapidx/atom"

// Numeric is the set of built-in types Range accepts.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Range generates a value of any numeric type uniformly in [min, max],
// reusing the float bisection heuristic (floatSite) for shrinking — a
// convenience wrapper for call sites that don't need a dedicated Int/Uint/
// Float generator per type.
func Range[T Numeric](label atom.Atom, min, max T) T {
	lo, hi := float64(min), float64(max)
	if hi < lo {
		lo, hi = hi, lo
	}
	return T(floatSite(label, uniformF(lo, hi), lo, hi))
}
