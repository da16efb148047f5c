package shrink

import (
	"strconv"

	"github.com/lucaskalb/rapidx/atom"
)

// trieKey renders a as a map key that disambiguates by kind, the same "#"/
// "$" convention replay/codec.go uses for serialization — plain
// a.String() alone would conflate Number(3) and Symbol("3").
func trieKey(a atom.Atom) string {
	if n, ok := a.Int(); ok {
		return "#" + strconv.FormatInt(n, 10)
	}
	return "$" + a.String()
}

// Trie is a persistent, copy-on-write map from label Path to a chosen
// shrink-alternative index. Retrospective shrinking replays a whole case
// with a Trie installed as the Shrink effect's handler; wherever the case
// revisits a path the trie has an entry for, it gets the recorded
// alternative instead of sampling fresh, which is what lets shrinking
// revisit and edit an earlier decision without disturbing the ones around
// it. The zero value is the empty trie (no overrides).
type Trie struct {
	has      bool
	value    uint64
	children map[string]*edge
}

// edge keeps the original Atom alongside its child subtree so Paths can
// reconstruct exact paths (a map keyed purely by Atom.String() would
// conflate a number and the symbol of its decimal spelling).
type edge struct {
	label atom.Atom
	node  *Trie
}

// Get looks up the recorded alternative at path, if any.
func (t *Trie) Get(path atom.Path) (uint64, bool) {
	n := t
	for _, a := range path {
		if n == nil {
			return 0, false
		}
		e, ok := n.children[trieKey(a)]
		if !ok {
			return 0, false
		}
		n = e.node
	}
	if n == nil {
		return 0, false
	}
	return n.value, n.has
}

// Set returns a new Trie with path bound to value, sharing every subtree
// not on the path with the receiver (copy-on-write: the receiver is left
// untouched, so callers can keep exploring sibling alternatives from the
// same base trie).
func (t *Trie) Set(path atom.Path, value uint64) *Trie {
	if t == nil {
		t = &Trie{}
	}
	if len(path) == 0 {
		cp := *t
		cp.has = true
		cp.value = value
		return &cp
	}
	head, rest := path[0], path[1:]
	cp := *t
	cp.children = make(map[string]*edge, len(t.children)+1)
	for k, v := range t.children {
		cp.children[k] = v
	}
	key := trieKey(head)
	var child *Trie
	if e, ok := cp.children[key]; ok {
		child = e.node
	}
	cp.children[key] = &edge{label: head, node: child.Set(rest, value)}
	return &cp
}

// Unset returns a new Trie with no entry at path (but any deeper entries
// under it preserved, matching Set's copy-on-write discipline).
func (t *Trie) Unset(path atom.Path) *Trie {
	if t == nil {
		return nil
	}
	if len(path) == 0 {
		cp := *t
		cp.has = false
		return &cp
	}
	head, rest := path[0], path[1:]
	key := trieKey(head)
	e, ok := t.children[key]
	if !ok {
		return t
	}
	cp := *t
	cp.children = make(map[string]*edge, len(t.children))
	for k, v := range t.children {
		cp.children[k] = v
	}
	cp.children[key] = &edge{label: e.label, node: e.node.Unset(rest)}
	return &cp
}

// Paths returns every path with a recorded value, in no particular order.
// It exists for serialization (replay.FileStore) and tests.
func (t *Trie) Paths() []atom.Path {
	var out []atom.Path
	t.walk(nil, &out)
	return out
}

func (t *Trie) walk(prefix atom.Path, out *[]atom.Path) {
	if t == nil {
		return
	}
	if t.has {
		cp := make(atom.Path, len(prefix))
		copy(cp, prefix)
		*out = append(*out, cp)
	}
	for _, e := range t.children {
		e.node.walk(prefix.Append(e.label), out)
	}
}
