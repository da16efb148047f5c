// Package strategy composes the effect handlers that turn a bare
// eff.Property into a runnable test: a source of randomness, a size
// schedule, a shrinking discipline, and limits on how many cases and
// discards to tolerate. It is grounded on prop/prop.go's runSequential and
// runParallel loops, generalized so the sampling primitives are effects
// instead of an explicitly threaded *rand.Rand and gen.Shrinker[T].
package strategy

import "github.com/lucaskalb/rapidx/eff"

// Strategy installs some handlers, runs body under them, and reports
// whatever body reports — the same shape prop.Config's loops have, just
// factored into composable pieces instead of one monolithic function.
type Strategy func(body eff.Property) error

// Pipe composes f and g so that g's handlers sit *underneath* f's: f drives
// the outer loop and, wherever f would call body directly, it instead calls
// g(body), giving g a chance to install its own handlers around the same
// body before f's handlers ever see it run. This is the f | g operator:
// Pipe(f, g)(body) = f(wrap-body-in-g).
func Pipe(f, g Strategy) Strategy {
	return func(body eff.Property) error {
		return f(func() error { return g(body) })
	}
}

// Then composes f and g sequentially: f runs to completion, then g runs,
// neither nested inside the other's handler scope. This is the f & g
// operator, for strategies that don't need to share a scope (e.g. running
// one named sub-property after another).
func Then(f, g Strategy) Strategy {
	return func(body eff.Property) error {
		if err := f(body); err != nil {
			return err
		}
		return g(body)
	}
}

// Identity runs body with no additional handlers installed.
func Identity(body eff.Property) error { return body() }
