// File: gen/comb.go
package gen

import (
	"github.com/lucaskalb/rapidx/atom"
	"github.com/lucaskalb/rapidx/eff"
)

var weightedIndexSite = atom.Symbol("gen.Weighted.index")

// OneOf chooses uniformly among gs. It is sugar for Variant with a fixed
// label, kept for call sites that don't need to distinguish multiple OneOf
// sites by name (the surrounding Label/index nesting from a container or
// ForAll argument still keeps sibling calls apart).
func OneOf[T any](gs ...Generator[T]) Generator[T] {
	return Variant(oneOfSite, gs...)
}

var oneOfSite = atom.Symbol("gen.OneOf")

// Variant chooses uniformly among gens, shrinking first by migrating to an
// earlier-indexed generator, then shrinking within the chosen one.
func Variant[T any](label atom.Atom, gens ...Generator[T]) Generator[T] {
	pairs := make([]WeightedGen[T], len(gens))
	for i, g := range gens {
		pairs[i] = WeightedGen[T]{Weight: eff.W(1), Gen: g}
	}
	return Weighted(label, pairs...)
}

// WeightedGen pairs a generator with a Weight biasing how often Weighted
// picks it.
type WeightedGen[T any] struct {
	Weight eff.Weight
	Gen    Generator[T]
}

// Weighted picks one of pairs, biased by each pair's Weight resolved
// against the ambient size, then runs its generator. A weight of 0 for
// every pair falls back to a uniform pick (the same advisory-zero rule
// Next documents). Shrinking tries migrating to an earlier index before
// shrinking within the chosen generator.
func Weighted[T any](label atom.Atom, pairs ...WeightedGen[T]) Generator[T] {
	if len(pairs) == 0 {
		panic("gen.Weighted: at least one generator required")
	}
	return func() T {
		size := eff.Size()
		weights := make([]uint64, len(pairs))
		var total uint64
		for i, p := range pairs {
			weights[i] = p.Weight(size)
			total += weights[i]
		}
		var base int64
		if total == 0 {
			base = int64(eff.Sample(uint64(len(pairs) - 1)))
		} else {
			roll := eff.Sample(total - 1)
			var cum uint64
			for i, w := range weights {
				cum += w
				if roll < cum {
					base = int64(i)
					break
				}
			}
		}
		return eff.Label(label, func() T {
			idx := shrinkSite(weightedIndexSite, base, 0, int64(len(pairs)-1))
			if idx < 0 {
				idx = 0
			} else if idx >= int64(len(pairs)) {
				idx = int64(len(pairs) - 1)
			}
			return pairs[idx].Gen()
		})
	}
}

// WeightedValuePair pairs a plain value with a Weight, for WeightedValue.
type WeightedValuePair[T any] struct {
	Weight eff.Weight
	Value  T
}

// WeightedValue is Weighted specialized to plain values instead of nested
// generators, for picking among a small fixed set of weighted constants.
func WeightedValue[T any](label atom.Atom, pairs ...WeightedValuePair[T]) Generator[T] {
	gens := make([]WeightedGen[T], len(pairs))
	for i, p := range pairs {
		v := p.Value
		gens[i] = WeightedGen[T]{Weight: p.Weight, Gen: Const(v)}
	}
	return Weighted(label, gens...)
}

// Optional produces *T or nil, with presence likelihood that rises as the
// ambient size grows, and shrinks toward nil.
func Optional[T any](label atom.Atom, elem Generator[T]) Generator[*T] {
	return func() *T {
		present := eff.Next(eff.W(1), eff.ScaledWeight(1))
		return eff.Label(label, func() *T {
			keep := present
			if present {
				idx, ok := eff.Shrink(1)
				if ok && idx == 0 {
					keep = false
				}
			}
			if !keep {
				return nil
			}
			v := elem()
			return &v
		})
	}
}

// Map applies f to every value ga produces, carrying shrinking through
// unchanged (a shrink replay just re-samples ga and re-applies f).
func Map[A, B any](ga Generator[A], f func(A) B) Generator[B] {
	return func() B { return f(ga()) }
}

// Filter resamples g up to maxTries times until pred holds, discarding the
// case if it never does. maxTries <= 0 defaults to 1000, matching the
// teacher's original bound.
func Filter[T any](g Generator[T], pred func(T) bool, maxTries int) Generator[T] {
	if maxTries <= 0 {
		maxTries = 1000
	}
	return func() T {
		for tries := 0; tries < maxTries; tries++ {
			v := g()
			if pred(v) {
				return v
			}
		}
		eff.Discard()
		panic("unreachable: Discard never returns")
	}
}

var bindSite = atom.Symbol("gen.Bind.a")

// Bind lets the generator for B depend on the value A produced — a flatMap.
// A's draw happens under its own Label so its shrink sites don't collide
// with a sibling Bind's.
func Bind[A, B any](ga Generator[A], f func(A) Generator[B]) Generator[B] {
	return func() B {
		a := eff.Label(bindSite, ga)
		gb := f(a)
		return gb()
	}
}

// Guard discards the current case when cond is false, the same way a
// precondition check in a hand-written property would.
func Guard(cond bool) {
	if !cond {
		eff.Discard()
	}
}
