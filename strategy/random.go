package strategy

import (
	"math/rand"

	"github.com/lucaskalb/rapidx/eff"
)

// Random installs Sample and Next handlers backed by a *rand.Rand seeded
// from seed, and binds the internal Rewind effect to reset that source
// back to its seeded state — which is what makes a shrink retrial sample
// the same values as the original run at every site it doesn't explicitly
// override (see RunRetrospective/RunForward, which call eff.Rewind before
// every replay).
func Random(seed int64) Strategy {
	return func(body eff.Property) error {
		r := rand.New(rand.NewSource(seed))
		scope := eff.Install(
			eff.BindSample(func(max uint64) uint64 {
				if max == 0 {
					return 0
				}
				return uint64(r.Int63n(int64(max) + 1))
			}),
			eff.BindNext(func(w0, w1 eff.Weight) bool {
				size := eff.Size()
				a, b := w0(size), w1(size)
				if a+b == 0 {
					return r.Intn(2) == 1
				}
				return uint64(r.Int63n(int64(a+b))) >= a
			}),
			eff.BindRewind(func() {
				*r = *rand.New(rand.NewSource(seed))
			}),
		)
		defer scope.Close()
		return body()
	}
}
