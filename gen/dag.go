package gen

import (
	"github.com/lucaskalb/rapidx/atom"
	"github.com/lucaskalb/rapidx/eff"
)

var dagLenSite = atom.Symbol("gen.Dag.len")

// DagResult is the output of Dag: a sequence of nodes plus, for each node,
// the indices of the nodes it must follow.
type DagResult[T any] struct {
	Nodes []T
	Deps  [][]int
}

// Dag generates a sequence of nodes and derives a dependency DAG from
// them: two nodes whose resources(...) overlap are ordered by creation,
// with each node depending only on the most recent prior node that
// declared an overlapping resource name ("last writer wins"), not on
// every earlier overlapping node — keeping the DAG minimal rather than a
// full transitive closure.
func Dag[T any](label atom.Atom, node Generator[T], resources func(T) []string) Generator[DagResult[T]] {
	return func() DagResult[T] {
		min, max := localSize(Size{}, 0, 16)
		if min < 0 {
			min = 0
		}
		length := min + int64(eff.Sample(uint64(max-min)))
		return eff.Label(label, func() DagResult[T] {
			n := shrinkSite(dagLenSite, length, min, max)
			if n < 0 {
				n = 0
			}
			nodes := make([]T, n)
			deps := make([][]int, n)
			lastWriter := map[string]int{}
			for i := int64(0); i < n; i++ {
				v := eff.Label(atom.Number(i), node)
				nodes[i] = v
				var d []int
				for _, res := range resources(v) {
					if j, ok := lastWriter[res]; ok {
						d = append(d, j)
					}
					lastWriter[res] = int(i)
				}
				deps[i] = d
			}
			return DagResult[T]{Nodes: nodes, Deps: deps}
		})
	}
}
