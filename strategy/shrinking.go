package strategy

import (
	"github.com/lucaskalb/rapidx/eff"
	"github.com/lucaskalb/rapidx/shrink"
)

// PropertyError wraps the minimized failing case's own error together with
// the trace of shrink decisions that produced it, so a caller (prop.ForAll)
// can report both the failure and a way to replay it.
type PropertyError struct {
	Err   error
	Trace []shrink.CallEntry
	Trie  *shrink.Trie
}

func (e *PropertyError) Error() string { return e.Err.Error() }
func (e *PropertyError) Unwrap() error { return e.Err }

// Shrinking runs body once; if it fails, it hands control to
// shrink.RunRetrospective to minimize the failing trie before reporting.
// rewind is called before every replay (including the first) so a strategy
// like Random can reset its sample source to reproduce the same values at
// every untouched site — see eff.Rewind's doc comment.
func Shrinking(order shrink.Strategy, rewind func()) Strategy {
	return ShrinkingFrom(order, rewind, nil)
}

// ShrinkingFrom is Shrinking, but starts RunRetrospective's search from
// input instead of the empty trie — the hook prop.ForAll uses to resume
// minimizing a counterexample a replay.Store already recorded for this
// property, instead of rediscovering it from a fresh random sample.
func ShrinkingFrom(order shrink.Strategy, rewind func(), input *shrink.Trie) Strategy {
	return func(body eff.Property) error {
		propertyBody := func() error {
			rewind()
			return body()
		}

		trie, trace, failed := shrink.RunRetrospective(input, order, propertyBody)
		if !failed {
			return nil
		}

		// Re-run once more against the minimized trie so the error
		// returned is the one the minimized case actually produced
		// (RunRetrospective's internal replay already discarded it).
		scope := eff.Install(shrinkFromTrie(trie))
		defer scope.Close()
		rewind()
		result := eff.RunCase(body)
		return &PropertyError{Err: result.Err, Trace: trace, Trie: trie}
	}
}

// shrinkFromTrie binds Shrink to replay exactly the (path -> value)
// overrides recorded in trie, the same lookup shrink.RunRetrospective's own
// internal replay uses, so a final confirmation run reproduces the
// minimized case instead of sampling a fresh one.
func shrinkFromTrie(trie *shrink.Trie) eff.Binding {
	return eff.BindShrink(func(size uint64) (uint64, bool) {
		if size == 0 {
			return 0, false
		}
		used, ok := trie.Get(eff.Path())
		return used, ok
	})
}
