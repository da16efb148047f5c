package shrink

// List is the forward-shrinking counterpart to Trie: a flat, append-only
// sequence of previously recorded shrink(size) alternatives, replayed
// head-first. Unlike Trie, which a replay can edit at any depth, a List
// can only be extended at its tail — RunForward's cursor never revisits
// an index once it has passed it, which is what gives forward shrinking
// its cheaper but less precise character (it cannot re-visit earlier
// sites once passed).
type List []uint64

// Clone returns a copy of l, so a candidate built from it can be mutated
// by RunForward without disturbing the caller's copy.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	cp := make(List, len(l))
	copy(cp, l)
	return cp
}
