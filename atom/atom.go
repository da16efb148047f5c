// Package atom provides interned, constant-time-comparable labels used to
// address sampling sites across a property test run.
//
// An Atom is either a symbol (a de-duplicated string) or a number (a plain
// int64). Two atoms compare equal iff their underlying kind and
// representation are equal; a symbol and a number never compare equal even
// if their textual forms match (e.g. Symbol("3") != Number(3)).
package atom

import (
	"strconv"
	"sync"
)

// Kind distinguishes the two admissible atom representations.
type Kind uint8

const (
	// KindSymbol identifies an interned string atom.
	KindSymbol Kind = iota
	// KindNumber identifies a signed-integer atom.
	KindNumber
)

// Atom is a label: an interned symbol or a number. The zero value is the
// number atom 0, which is a valid (if unremarkable) label.
type Atom struct {
	kind Kind
	sym  *string // non-nil only for KindSymbol; pointer identity backs equality
	num  int64
}

var (
	internMu sync.Mutex
	interned = map[string]*string{}
)

// Symbol returns the atom for s, interning it in a process-wide table so
// repeated calls with the same string share one backing pointer. Interning
// makes symbol equality and hashing O(1) regardless of string length.
func Symbol(s string) Atom {
	internMu.Lock()
	p, ok := interned[s]
	if !ok {
		// copy s so callers mutating a byte slice backing it can't corrupt the table
		cp := string([]byte(s))
		p = &cp
		interned[s] = p
	}
	internMu.Unlock()
	return Atom{kind: KindSymbol, sym: p}
}

// Number returns the atom for the integer n.
func Number(n int64) Atom {
	return Atom{kind: KindNumber, num: n}
}

// Kind reports whether a is a symbol or a number atom.
func (a Atom) Kind() Kind { return a.kind }

// Equal reports whether a and b denote the same atom. Cross-kind
// comparisons are always unequal, even when the decimal form of a number
// matches a symbol's text.
func (a Atom) Equal(b Atom) bool {
	if a.kind != b.kind {
		return false
	}
	if a.kind == KindNumber {
		return a.num == b.num
	}
	return a.sym == b.sym || *a.sym == *b.sym
}

// Less provides a total order over atoms: symbols sort before numbers, and
// within a kind, by underlying representation. It exists so Path and Trie
// can keep deterministic iteration order for serialization and tests.
func (a Atom) Less(b Atom) bool {
	if a.kind != b.kind {
		return a.kind < b.kind
	}
	if a.kind == KindNumber {
		return a.num < b.num
	}
	return *a.sym < *b.sym
}

// String renders the atom for diagnostics and trie serialization keys.
func (a Atom) String() string {
	if a.kind == KindNumber {
		return strconv.FormatInt(a.num, 10)
	}
	if a.sym == nil {
		return ""
	}
	return *a.sym
}

// IsSymbol reports whether a was constructed via Symbol.
func (a Atom) IsSymbol() bool { return a.kind == KindSymbol }

// IsNumber reports whether a was constructed via Number.
func (a Atom) IsNumber() bool { return a.kind == KindNumber }

// Int returns the underlying integer and true if a is a number atom.
func (a Atom) Int() (int64, bool) {
	if a.kind != KindNumber {
		return 0, false
	}
	return a.num, true
}
