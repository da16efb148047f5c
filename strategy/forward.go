package strategy

import (
	"github.com/lucaskalb/rapidx/eff"
	"github.com/lucaskalb/rapidx/shrink"
)

// Forward runs body once; if it fails, it hands control to
// shrink.RunForward/shrink.ForwardChildren to minimize the failing list
// before reporting — the flat-list counterpart to Shrinking, for a case
// whose decisions form one linear sequence (a single container's element
// generators) rather than a branching tree of labels. rewind is called
// before every replay, the same role it plays in Shrinking.
func Forward(order shrink.Strategy, rewind func()) Strategy {
	return ForwardFrom(order, rewind, nil)
}

// ForwardFrom is Forward, but starts the search from input instead of an
// empty list — the hook a caller uses to resume minimizing a previously
// recorded forward-shrunk counterexample rather than rediscovering it.
func ForwardFrom(order shrink.Strategy, rewind func(), input shrink.List) Strategy {
	return func(body eff.Property) error {
		var lastErr error
		pass := func(list shrink.List) (shrink.List, uint64, bool) {
			var result eff.CaseResult
			consumed, remaining := shrink.RunForward(list, func() {
				rewind()
				result = eff.RunCase(body)
			})
			lastErr = result.Err
			return consumed, remaining, result.Outcome == eff.OutcomeFail
		}

		consumed, remaining, failed := pass(input)
		if !failed {
			return nil
		}

		improved := true
		for improved {
			improved = false
			for _, child := range shrink.ForwardChildren(consumed, remaining, order) {
				c, r, f := pass(child)
				if f {
					consumed, remaining = c, r
					improved = true
					break
				}
			}
		}

		// Re-run once more against the minimized list so the reported
		// error is the one the minimized case actually produced (the
		// search loop above already discarded intermediate passes' own
		// CaseResult once they were superseded).
		_, _, _ = pass(consumed)
		return &ForwardError{Err: lastErr, List: consumed}
	}
}

// ForwardError wraps a minimized forward-shrunk failure, the List
// counterpart to PropertyError.
type ForwardError struct {
	Err  error
	List shrink.List
}

func (e *ForwardError) Error() string { return e.Err.Error() }
func (e *ForwardError) Unwrap() error { return e.Err }
