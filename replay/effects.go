package replay

import (
	"encoding/json"

	"github.com/lucaskalb/rapidx/eff"
	"github.com/lucaskalb/rapidx/shrink"
)

// inputKey is the well-known key the retrospective shrinker's persisted
// trie is stored under.
const inputKey = "INPUT"

// Install binds eff.Read and eff.Write to store for the duration of the
// returned scope, so code running inside it reaches the backing Store
// through the same read(key)/write(key, value) effects the rest of this
// module's generators and shrinkers use, instead of calling Load/Save on
// store directly. Closing the scope restores whatever Read/Write
// handlers (if any) were active before.
func Install(store Store, property string) eff.Scope {
	return eff.Install(
		eff.BindRead(func(key string) (string, bool) {
			if key != inputKey {
				return "", false
			}
			record, ok, err := store.Read(property)
			if err != nil || !ok {
				return "", false
			}
			data, err := json.Marshal(record.Entries)
			if err != nil {
				return "", false
			}
			return string(data), true
		}),
		eff.BindWrite(func(key, value string) {
			if key != inputKey {
				return
			}
			var entries []TrieEntry
			if err := json.Unmarshal([]byte(value), &entries); err != nil {
				return
			}
			_ = store.Write(Record{Property: property, Entries: entries})
		}),
	)
}

// ReadTrie fetches the current counterexample through the eff.Read
// effect — transparent to whatever Install bound it to, or to no store at
// all, in which case it reports false exactly like a fresh run.
func ReadTrie() (*shrink.Trie, bool) {
	value, ok := eff.Read(inputKey)
	if !ok {
		return nil, false
	}
	var entries []TrieEntry
	if err := json.Unmarshal([]byte(value), &entries); err != nil {
		return nil, false
	}
	return trieFromEntries(entries), true
}

// WriteTrie persists trie through the eff.Write effect under the
// well-known "INPUT" key.
func WriteTrie(trie *shrink.Trie) {
	data, err := json.Marshal(entriesFromTrie(trie))
	if err != nil {
		return
	}
	eff.Write(inputKey, string(data))
}

// Load reads property's saved Record from store directly, if any, and
// returns the Trie it decodes to. A missing record yields the empty trie,
// which behaves exactly like a fresh run (no recorded overrides
// anywhere). A caller with a replay.Install scope already active should
// prefer ReadTrie, which goes through the same effect the rest of the
// module uses instead of holding its own Store reference.
func Load(store Store, property string) (*shrink.Trie, bool, error) {
	record, ok, err := store.Read(property)
	if err != nil || !ok {
		return nil, ok, err
	}
	return record.ToTrie(), true, nil
}

// Save flattens trie and writes it to store under property directly, the
// Store-based counterpart to WriteTrie.
func Save(store Store, property string, seed int64, trie *shrink.Trie) error {
	return store.Write(FromTrie(property, seed, trie))
}
