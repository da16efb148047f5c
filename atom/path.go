package atom

import "strings"

// Path is the sequence of atoms introduced by currently-active label
// scopes, in installation order. The empty path is the root.
type Path []Atom

// Append returns a new path with a appended. The receiver's backing array
// is never mutated, so callers can keep holding an earlier Path value.
func (p Path) Append(a Atom) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = a
	return out
}

// Equal reports whether p and q name the same sequence of atoms.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if !p[i].Equal(q[i]) {
			return false
		}
	}
	return true
}

// String renders the path as a slash-joined diagnostic string, e.g. "a/0/b".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, a := range p {
		parts[i] = a.String()
	}
	return strings.Join(parts, "/")
}
