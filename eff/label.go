package eff

import "github.com/lucaskalb/rapidx/atom"

type pathArgs struct{}

// Path returns the label path of the innermost enclosing Label scope, or
// the empty path if none is active. Shrinkers and replay stores use it to
// address a sampling site.
func Path() atom.Path {
	return invoke(pathArgs{}, func(pathArgs) atom.Path { return nil })
}

func bindPath(p atom.Path) Binding {
	return bind[pathArgs](func(pathArgs) atom.Path { return p })
}

// Label runs f with a appended to the current label path, restoring the
// prior path afterward even if f panics. Generators and state-machine
// commands use Label to keep sampling sites addressable and, combined with
// a scoped handler install, isolated from sibling branches (spec.md
// invariant 7: labels partition, they do not leak).
func Label[T any](a atom.Atom, f func() T) T {
	p := Path().Append(a)
	scope := Install(bindPath(p))
	defer scope.Close()
	return f()
}
