package replay

import (
	"strconv"

	"github.com/lucaskalb/rapidx/atom"
	"github.com/lucaskalb/rapidx/shrink"
)

// encodePath renders a Path as strings, prefixing number atoms with "#" so
// decodePath can tell "Number(3)" apart from "Symbol(\"3\")" — Atom.String
// alone collapses that distinction, which would otherwise silently corrupt
// a replayed path (see atom.Atom's doc comment on cross-kind inequality).
func encodePath(p atom.Path) []string {
	out := make([]string, len(p))
	for i, a := range p {
		if n, ok := a.Int(); ok {
			out[i] = "#" + strconv.FormatInt(n, 10)
		} else {
			out[i] = "$" + a.String()
		}
	}
	return out
}

func decodePath(segs []string) atom.Path {
	p := make(atom.Path, 0, len(segs))
	for _, s := range segs {
		if len(s) == 0 {
			p = append(p, atom.Symbol(""))
			continue
		}
		switch s[0] {
		case '#':
			n, err := strconv.ParseInt(s[1:], 10, 64)
			if err != nil {
				p = append(p, atom.Symbol(s))
				continue
			}
			p = append(p, atom.Number(n))
		case '$':
			p = append(p, atom.Symbol(s[1:]))
		default:
			p = append(p, atom.Symbol(s))
		}
	}
	return p
}

// FromTrie flattens trie into a Record for property, ready to hand to a
// Store's Write.
func FromTrie(property string, seed int64, trie *shrink.Trie) Record {
	return Record{Property: property, Seed: seed, Entries: entriesFromTrie(trie)}
}

// entriesFromTrie flattens trie into its wire entries. It is the shared
// core of FromTrie and Install's Write handler, which persists the same
// shape through eff.Write instead of a Store.
func entriesFromTrie(trie *shrink.Trie) []TrieEntry {
	paths := trie.Paths()
	entries := make([]TrieEntry, 0, len(paths))
	for _, p := range paths {
		v, ok := trie.Get(p)
		if !ok {
			continue
		}
		entries = append(entries, TrieEntry{Path: encodePath(p), Value: v})
	}
	return entries
}

// trieFromEntries rebuilds a Trie from its wire entries, the inverse of
// entriesFromTrie.
func trieFromEntries(entries []TrieEntry) *shrink.Trie {
	var trie *shrink.Trie
	for _, e := range entries {
		trie = trie.Set(decodePath(e.Path), e.Value)
	}
	return trie
}
