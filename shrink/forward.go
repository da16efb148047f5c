package shrink

import "github.com/lucaskalb/rapidx/eff"

// cursor is the mutable handler state one RunForward pass installs: how
// far into list it has consumed (index) and how many units of shrink(size)
// demand it has seen past list's end (remaining).
type cursor struct {
	list      List
	index     int
	remaining uint64
	owner     int64
}

// shrink implements the forward-shrinking handler: a request past list's
// end only grows remaining and defers (None); a request the current head
// doesn't fit within gets the head trimmed down by size and also defers,
// so the next, smaller request at the same index can still consume what's
// left; only a request the head does fit within consumes it and advances.
func (c *cursor) shrink(size uint64) (uint64, bool) {
	if id := eff.GoroutineID(); c.owner != 0 && id != c.owner {
		panic("shrink: List accessed from more than one goroutine at once")
	}
	if c.index >= len(c.list) {
		c.remaining += size
		return 0, false
	}
	h := c.list[c.index]
	if h >= size {
		c.list[c.index] = h - size
		return 0, false
	}
	c.index++
	return h, true
}

// RunForward replays body once with input installed as the Shrink
// handler, driving the forward-shrinking discipline. It reports the list
// as this one pass actually left it (consumed, trimmed in place wherever
// a site asked for less than the recorded head) and how many shrink sites
// it saw past input's end (remaining) — together the
// raw material ForwardChildren turns into candidates to try on the next
// pass. Unlike RunRetrospective, RunForward does not itself judge body's
// outcome or search for a smaller failing case; that loop belongs to the
// caller (strategy.Forward), which is what lets a plain func() body here
// report failure however it likes (eff.RunCase, a closed-over bool, a
// panic) instead of committing to one error-return convention.
func RunForward(input List, body func()) (List, uint64) {
	c := &cursor{list: input.Clone(), owner: eff.GoroutineID()}
	scope := eff.Install(eff.BindShrink(c.shrink))
	defer scope.Close()
	body()
	return c.list, c.remaining
}

// ForwardChildren enumerates the children of a forward-shrunk pass: one
// candidate per value in [0, remaining), each equal to consumed with that
// value appended. Appending past the end is the only direction
// forward shrinking can extend in — nothing at or before consumed's last
// index is ever revisited — so asking for value v next means "let the
// first site that ran past consumed's end take v instead of sampling
// freely." order controls whether v=0 (narrowest) or the far end of the
// range is offered first, the same knob Alternatives uses for numeric
// sites.
func ForwardChildren(consumed List, remaining uint64, strat Strategy) []List {
	if remaining == 0 {
		return nil
	}
	idx := order(int(remaining), strat)
	children := make([]List, len(idx))
	for i, v := range idx {
		child := make(List, len(consumed)+1)
		copy(child, consumed)
		child[len(consumed)] = uint64(v)
		children[i] = child
	}
	return children
}
