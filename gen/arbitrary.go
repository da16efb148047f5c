package gen

import (
	"reflect"

	"github.com/lucaskalb/rapidx/atom"
	"github.com/lucaskalb/rapidx/eff"
)

var arbitraryRegistry = map[reflect.Type]func(atom.Atom) any{}

// RegisterArbitrary registers the generator Arbitrary[T] dispatches to for
// type T, keyed by reflect.Type so a later RegisterArbitrary for the same
// T replaces the earlier one (handy for overriding a built-in).
func RegisterArbitrary[T any](f func(atom.Atom) Generator[T]) {
	var zero T
	t := reflect.TypeOf(&zero).Elem()
	arbitraryRegistry[t] = func(label atom.Atom) any {
		return f(label)()
	}
}

// Arbitrary generates a value of type T by looking up the generator
// registered for T via RegisterArbitrary, panicking if none was. Built-ins
// are pre-registered for bool, int, int64, uint, uint64, float32, float64,
// and string.
func Arbitrary[T any](label atom.Atom) T {
	var zero T
	t := reflect.TypeOf(&zero).Elem()
	f, ok := arbitraryRegistry[t]
	if !ok {
		panic("gen.Arbitrary: no generator registered for " + t.String())
	}
	return f(label).(T)
}

func init() {
	RegisterArbitrary(func(label atom.Atom) Generator[bool] {
		return func() bool { return eff.Label(label, Bool()) }
	})
	RegisterArbitrary(func(label atom.Atom) Generator[int] {
		return func() int { return eff.Label(label, Int(Size{})) }
	})
	RegisterArbitrary(func(label atom.Atom) Generator[int64] {
		return func() int64 { return eff.Label(label, Int64(Size{})) }
	})
	RegisterArbitrary(func(label atom.Atom) Generator[uint] {
		return func() uint { return eff.Label(label, Uint(Size{})) }
	})
	RegisterArbitrary(func(label atom.Atom) Generator[uint64] {
		return func() uint64 { return eff.Label(label, Uint64(Size{})) }
	})
	RegisterArbitrary(func(label atom.Atom) Generator[float32] {
		return func() float32 { return eff.Label(label, Float32(Size{})) }
	})
	RegisterArbitrary(func(label atom.Atom) Generator[float64] {
		return func() float64 { return eff.Label(label, Float64(Size{})) }
	})
	RegisterArbitrary(func(label atom.Atom) Generator[string] {
		return func() string { return eff.Label(label, String(AlphabetAlphaNum, Size{})) }
	})
}
