// Package replay persists a minimized failing case's shrink trie so a
// later run can reproduce it without re-discovering it by chance — the
// Go-native equivalent of a QuickCheck/halcheck "ministry file" or counter-
// example cache. It has no teacher equivalent; it is grounded directly on
// SPEC_FULL.md's replay requirements and styled after quick/quick.go's
// single-purpose-package shape (one small interface, one in-memory
// implementation, one file-backed implementation).
package replay

import "github.com/lucaskalb/rapidx/shrink"

// Record is the serializable form of one saved counterexample: the
// property name it belongs to and the trie entries that reproduce it.
type Record struct {
	Property string          `json:"property"`
	Seed     int64           `json:"seed"`
	Entries  []TrieEntry     `json:"entries"`
	ExtraCtx map[string]string `json:"context,omitempty"`
}

// TrieEntry is one (path, value) pair out of a shrink.Trie, in the
// wire/JSON-friendly form described in SPEC_FULL.md §6.
type TrieEntry struct {
	Path  []string `json:"path"`
	Value uint64   `json:"value"`
}

// Store reads and writes Records for named properties. MemoryStore and
// FileStore are the two implementations; a replay.Store is itself wired
// into a test run as a pair of eff effects (see effects.go) so a
// generator's shrink sites don't need to know whether they're being
// replayed from disk or from a fresh run.
type Store interface {
	Read(property string) (Record, bool, error)
	Write(record Record) error
}

// ToTrie rebuilds a shrink.Trie from a Record's flat entry list, decoding
// each path segment back into an atom. Numeric segments round-trip as
// number atoms; everything else round-trips as a symbol, matching
// Trie.Paths' own reconstruction (see shrink/trie.go).
func (r Record) ToTrie() *shrink.Trie {
	return trieFromEntries(r.Entries)
}
