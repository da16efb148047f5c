package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lucaskalb/rapidx/atom"
	"github.com/lucaskalb/rapidx/shrink"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	if _, ok, _ := store.Read("TestFoo"); ok {
		t.Fatalf("expected no record in an empty store")
	}

	rec := Record{Property: "TestFoo", Seed: 7, Entries: []TrieEntry{{Path: []string{"$a", "#1"}, Value: 42}}}
	if err := store.Write(rec); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, ok, err := store.Read("TestFoo")
	if err != nil || !ok {
		t.Fatalf("Read after Write = (%v,%v,%v)", got, ok, err)
	}
	if got.Seed != 7 || len(got.Entries) != 1 {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := FileStore{Dir: dir}

	rec := Record{Property: "pkg/Test With Spaces", Seed: 99, Entries: []TrieEntry{{Path: []string{"$x"}, Value: 3}}}
	if err := store.Write(rec); err != nil {
		t.Fatalf("Write: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected exactly one file in %s, err=%v entries=%v", dir, err, entries)
	}

	got, ok, err := store.Read("pkg/Test With Spaces")
	if err != nil || !ok {
		t.Fatalf("Read = (%v,%v,%v)", got, ok, err)
	}
	if got.Seed != 99 {
		t.Fatalf("Seed = %d, want 99", got.Seed)
	}
}

func TestFileStoreMissingIsNotError(t *testing.T) {
	store := FileStore{Dir: filepath.Join(t.TempDir(), "does-not-exist")}
	_, ok, err := store.Read("Nope")
	if err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
	if ok {
		t.Fatalf("expected ok=false for a missing property")
	}
}

func TestEncodeDecodePathRoundTrip(t *testing.T) {
	p := atom.Path{atom.Symbol("container"), atom.Number(2), atom.Symbol("3")}
	got := decodePath(encodePath(p))
	if !got.Equal(p) {
		t.Fatalf("round-trip = %v, want %v", got, p)
	}
}

func TestEncodeDistinguishesNumberFromSymbolText(t *testing.T) {
	numPath := atom.Path{atom.Number(3)}
	symPath := atom.Path{atom.Symbol("3")}
	if decodePath(encodePath(numPath)).Equal(symPath) {
		t.Fatalf("Number(3) must not decode equal to Symbol(\"3\")")
	}
}

func TestFromTrieToTrieRoundTrip(t *testing.T) {
	var trie *shrink.Trie
	p1 := atom.Path{atom.Symbol("a"), atom.Number(0)}
	p2 := atom.Path{atom.Symbol("a"), atom.Number(1)}
	trie = trie.Set(p1, 10)
	trie = trie.Set(p2, 20)

	rec := FromTrie("TestThing", 5, trie)
	if len(rec.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(rec.Entries))
	}

	back := rec.ToTrie()
	if v, ok := back.Get(p1); !ok || v != 10 {
		t.Fatalf("back.Get(p1) = (%d,%v), want (10,true)", v, ok)
	}
	if v, ok := back.Get(p2); !ok || v != 20 {
		t.Fatalf("back.Get(p2) = (%d,%v), want (20,true)", v, ok)
	}
}
