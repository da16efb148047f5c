package gen

import (
	"github.com/lucaskalb/rapidx/atom"
	"github.com/lucaskalb/rapidx/eff"
)

var sliceLenSite = atom.Symbol("gen.Container.len")
var sliceSite = atom.Symbol("gen.Slice")

// Container generates []T from an element generator, with length
// controlled by size (default [0, 16] with no size at all). Shrinking
// tries shorter lengths first (a prefix of the current elements, via the
// same target-then-bisection heuristic numeric generators use), then lets
// each remaining element — labeled by its index — shrink on its own.
func Container[T any](label atom.Atom, elem Generator[T], size Size) Generator[[]T] {
	return func() []T {
		min, max := localSize(size, 0, 16)
		if min < 0 {
			min = 0
		}
		length := min + int64(eff.Sample(uint64(max-min)))
		return eff.Label(label, func() []T {
			n := shrinkSite(sliceLenSite, length, min, max)
			if n < 0 {
				n = 0
			}
			out := make([]T, n)
			for i := int64(0); i < n; i++ {
				out[i] = eff.Label(atom.Number(i), elem)
			}
			return out
		})
	}
}

// SliceOf is Container with a fixed label, kept as an alias for
// teacher-call-site compatibility.
func SliceOf[T any](elem Generator[T], size Size) Generator[[]T] {
	return Container(sliceSite, elem, size)
}
