package gen

import (
	"github.com/lucaskalb/rapidx/atom"
	"github.com/lucaskalb/rapidx/eff"
)

var elementIndexSite = atom.Symbol("gen.Element.index")

// Element picks uniformly among items, shrinking toward the first one.
// It panics if items is empty, the same contract Variant/Weighted use for
// an empty generator list.
func Element[T any](label atom.Atom, items ...T) T {
	return ElementOf(label, items)
}

// ElementOf is Element taking a slice instead of variadic args, for
// callers that already have one.
func ElementOf[T any](label atom.Atom, items []T) T {
	if len(items) == 0 {
		panic("gen.ElementOf: items must be non-empty")
	}
	base := int64(eff.Sample(uint64(len(items) - 1)))
	return eff.Label(label, func() T {
		idx := shrinkSite(elementIndexSite, base, 0, int64(len(items)-1))
		if idx < 0 {
			idx = 0
		} else if idx >= int64(len(items)) {
			idx = int64(len(items) - 1)
		}
		return items[idx]
	})
}
