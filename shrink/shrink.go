// Package shrink implements the two shrinking disciplines a strategy can
// choose between: retrospective shrinking, which replays a whole case from
// scratch against a persistent decision trie and can therefore revisit any
// earlier site, and forward shrinking, which walks a flat list of prior
// decisions with a cursor and can only edit the site it is currently passing
// over. Both share the alternatives heuristics in numeric.go, ported from
// the teacher's gen/int.go bisection search.
package shrink

// Strategy selects child-enumeration order when more than one shrink
// alternative is available at a site. It mirrors gen.ShrinkStrategy* so the
// same -rapidx.shrink.strategy flag value controls both old-style
// generators and the new shrink engine.
type Strategy string

const (
	// BFS tries the widest, least-committal alternatives first (target,
	// then bisection, then unit step, then bounds) before descending
	// deeper at any one site.
	BFS Strategy = "bfs"
	// DFS commits to the first alternative at a site and keeps shrinking
	// within it before backing out to try siblings.
	DFS Strategy = "dfs"
)

// order returns indices 0..n-1 in the sequence a child enumerator should
// try them, given strategy.
func order(n int, s Strategy) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	if s == DFS {
		for l, r := 0, len(idx)-1; l < r; l, r = l+1, r-1 {
			idx[l], idx[r] = idx[r], idx[l]
		}
	}
	return idx
}
