package strategy

import "github.com/lucaskalb/rapidx/eff"

// Sized installs a fixed Size handler for the duration of body. Callers
// that run many cases (prop.ForAll's loop) construct a fresh Sized
// strategy per case, typically growing the size with the case index the
// way gen.Size{} scaled with the teacher's own runner loop, so later
// examples explore larger values and longer containers.
func Sized(size uint64) Strategy {
	return func(body eff.Property) error {
		scope := eff.Install(eff.BindSize(func() uint64 { return size }))
		defer scope.Close()
		return body()
	}
}

// LinearSize returns the size to use for the i-th (0-based) of n examples,
// growing linearly from 1 up to cap as i approaches n. It mirrors the
// common QuickCheck convention of scaling size with progress through the
// run instead of fixing it for the whole property.
func LinearSize(i, n int, cap uint64) uint64 {
	if n <= 1 {
		return cap
	}
	size := uint64(i) * cap / uint64(n-1)
	if size > cap {
		size = cap
	}
	if size == 0 {
		size = 1
	}
	return size
}
