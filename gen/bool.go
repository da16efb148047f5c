package gen

import (
	"github.com/lucaskalb/rapidx/atom"
	"github.com/lucaskalb/rapidx/eff"
)

var boolSite = atom.Symbol("gen.Bool")

// Bool generates boolean values uniformly. Shrink: prioritizes reducing to
// false (smaller counterexample by convention).
func Bool() Generator[bool] {
	return func() bool {
		v := eff.Next(eff.W(1), eff.W(1))
		return eff.Label(boolSite, func() bool {
			if !v {
				return false
			}
			// true shrinks toward false: offer exactly one alternative.
			idx, ok := eff.Shrink(1)
			if ok && idx == 0 {
				return false
			}
			return true
		})
	}
}
