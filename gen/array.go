package gen

import (
	"github.com/lucaskalb/rapidx/atom"
	"github.com/lucaskalb/rapidx/eff"
)

var arraySite = atom.Symbol("gen.Array")

// ArrayOf generates a slice of exact length n from the element generator.
// It is "array-like": length never shrinks, only each position, labeled by
// index, shrinks on its own.
func ArrayOf[T any](elem Generator[T], n int) Generator[[]T] {
	if n < 0 {
		n = 0
	}
	return func() []T {
		return eff.Label(arraySite, func() []T {
			out := make([]T, n)
			for i := 0; i < n; i++ {
				out[i] = eff.Label(atom.Number(int64(i)), elem)
			}
			return out
		})
	}
}
