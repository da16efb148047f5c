package shrink

import (
	"github.com/lucaskalb/rapidx/atom"
	"github.com/lucaskalb/rapidx/eff"
)

// CallEntry records one Shrink call observed during a retrospective replay:
// where it happened (Path), how many alternatives were on offer, and which
// one the replay actually used. RunRetrospective needs this list to know
// which sites it can still try overriding on the next candidate.
type CallEntry struct {
	Path  atom.Path
	Count uint64
	Used  uint64
}

// RunRetrospective replays body once per candidate trie, starting from
// input, and keeps whichever candidate still fails with a strictly smaller
// or equal footprint (fewer or equal recorded overrides and no larger
// values at any shared site). It returns the final (possibly unchanged)
// trie together with the call trace of the last replay, which the caller
// (strategy.Shrinking) uses to report the minimized case.
//
// Because it replays the whole case from scratch every time, it can edit
// any earlier site regardless of where the case currently is — the
// "retrospective" half of spec.md's two shrinking disciplines — at the
// cost of O(n) body executions per accepted step.
func RunRetrospective(input *Trie, order Strategy, body func() error) (*Trie, []CallEntry, bool) {
	best := input
	bestTrace, bestFailed := replay(best, body)
	if !bestFailed {
		return best, bestTrace, false
	}

	improved := true
	for improved {
		improved = false
		for _, call := range bestTrace {
			if call.Count == 0 {
				continue
			}
			for _, alt := range altIndices(call.Count, order) {
				if alt == call.Used {
					continue
				}
				candidate := best.Set(call.Path, alt)
				trace, failed := replay(candidate, body)
				if failed {
					best, bestTrace = candidate, trace
					improved = true
					break
				}
			}
			if improved {
				break
			}
		}
	}
	return best, bestTrace, true
}

func altIndices(count uint64, order Strategy) []uint64 {
	idx := make([]uint64, count)
	for i := range idx {
		idx[i] = uint64(i)
	}
	if order == DFS {
		for l, r := 0, len(idx)-1; l < r; l, r = l+1, r-1 {
			idx[l], idx[r] = idx[r], idx[l]
		}
	}
	return idx
}

// replay executes body once with trie installed as the Shrink handler and
// Rewind bound to reset nothing extra (the caller's own strategy is
// responsible for rewinding its sample source; RunRetrospective only owns
// the shrink decisions), recording every Shrink call it observes.
func replay(trie *Trie, body func() error) ([]CallEntry, bool) {
	var trace []CallEntry
	handler := eff.BindShrink(func(size uint64) (uint64, bool) {
		path := eff.Path()
		used, ok := trie.Get(path)
		if !ok {
			used = 0
		}
		if size > 0 {
			trace = append(trace, CallEntry{Path: path, Count: size, Used: used})
		}
		return used, ok && size > 0
	})
	scope := eff.Install(handler)
	defer scope.Close()

	result := eff.RunCase(body)
	return trace, result.Outcome == eff.OutcomeFail
}
