// Package gen provides the generator library for property-based testing:
// scalar generators (Int, Bool, Float64, String, ...), container generators
// (Slice, Array), and combinators (Map, Filter, Bind, OneOf, Weighted) that
// build bigger generators out of smaller ones. Every generator is, at
// bottom, a plain function that calls the eff package's Sample/Next/Shrink
// effects — there is no explicit *rand.Rand or Shrinker[T] to thread
// through combinators any more, because sampling and shrinking are now
// ambient effects a strategy installs around the whole property rather
// than arguments passed hand-to-hand.
package gen

import (
	"math"

	"github.com/lucaskalb/rapidx/atom"
	"github.com/lucaskalb/rapidx/eff"
	"github.com/lucaskalb/rapidx/shrink"
)

// Size controls the scale and limits of generators, exactly as it did
// before: the minimum and maximum bounds for generated values, or (for
// container generators) for lengths.
type Size struct {
	Min int
	Max int
}

// Generator is a value-producing, shrink-aware function: calling it both
// samples a fresh value (when no shrink override applies) and replays a
// previously recorded one (when a strategy's Shrink handler has one for
// the current label path). Combinators below are just functions from
// Generator to Generator.
type Generator[T any] func() T

// T is an optional alias for Generator[T], kept for call sites that read
// more naturally as gen.T[int] than gen.Generator[int].
type T[T any] = Generator[T]

// From wraps a plain func() T as a Generator[T]. It exists purely for
// symmetry with the combinators below, which all return values of this
// same function type.
func From[T any](f func() T) Generator[T] { return Generator[T](f) }

// Const always returns v, with no shrink alternatives.
func Const[T any](v T) Generator[T] { return func() T { return v } }

// SetShrinkStrategy sets the child-enumeration order used by every
// generator's Shrink calls. Valid strategies are "bfs" and "dfs"; any
// other value defaults to "bfs" (matching the teacher's original
// contract).
func SetShrinkStrategy(s string) {
	if s == "dfs" {
		shrinkStrategy = shrink.DFS
	} else {
		shrinkStrategy = shrink.BFS
	}
}

// GetShrinkStrategy returns the current shrinking strategy name.
func GetShrinkStrategy() string {
	if shrinkStrategy == shrink.DFS {
		return "dfs"
	}
	return "bfs"
}

var shrinkStrategy = shrink.BFS

// localSize resolves the effective [min,max] range for a scalar generator,
// the same "local override beats ambient size" rule the teacher's
// autoRange helpers implemented, just centralized instead of repeated
// per numeric type.
func localSize(local Size, fallbackMin, fallbackMax int64) (int64, int64) {
	if local.Max != 0 || local.Min != 0 {
		lo, hi := int64(local.Min), int64(local.Max)
		if lo > hi {
			lo, hi = hi, lo
		}
		return lo, hi
	}
	if sz := int64(eff.Size()); sz > 0 {
		return -sz, sz
	}
	return fallbackMin, fallbackMax
}

// shrinkSite offers shrink.Alternatives(base, min, max) under label, and
// returns either the replayed/chosen alternative or base unchanged if no
// shrink handler picks one.
func shrinkSite(label atom.Atom, base, min, max int64) int64 {
	return eff.Label(label, func() int64 {
		alts := shrink.Alternatives(base, min, max, shrinkStrategy)
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

// floatAlternatives mirrors shrink.Alternatives' heuristic (target, then
// bisection, then bounds) directly in float64, since the integer version
// can't represent a fractional midpoint. NaN and the two infinities get
// their own fixed alternative lists, matching the teacher's float.go
// special-casing.
func floatAlternatives(base, min, max float64) []float64 {
	if math.IsNaN(base) {
		out := []float64{0, 1, -1}
		if !math.IsInf(min, 0) {
			out = append(out, min)
		}
		if !math.IsInf(max, 0) {
			out = append(out, max)
		}
		return out
	}
	if math.IsInf(base, 0) {
		if base > 0 && !math.IsInf(max, 0) {
			return []float64{max, 0}
		}
		if base < 0 && !math.IsInf(min, 0) {
			return []float64{min, 0}
		}
		return []float64{0}
	}

	target := 0.0
	switch {
	case min <= 0 && max >= 0:
		target = 0
	case math.Abs(min) < math.Abs(max):
		target = min
	default:
		target = max
	}

	seen := map[float64]struct{}{base: {}}
	var out []float64
	push := func(x float64) {
		if !math.IsInf(min, 0) && !math.IsInf(max, 0) && (x < min || x > max) {
			return
		}
		if _, ok := seen[x]; ok {
			return
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}

	if base != target {
		push(target)
		series := base + (target-base)/2
		for i := 0; i < 12 && series != target; i++ {
			push(series)
			series += (target - series) / 2
		}
		push(math.Nextafter(base, target))
	}
	if target == 0 && base != 0 {
		push(-base)
	}
	if !math.IsInf(min, 0) && base != min {
		push(min)
	}
	if !math.IsInf(max, 0) && base != max {
		push(max)
	}
	return out
}
