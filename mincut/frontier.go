// frontier.go implements a pure, bound-independent expansion of the
// search tree down to a fixed depth, producing the bag of
// coarse-grained tasks that the cluster dispatch loop and Pool
// distribute. It never consults the current monitor value, which
// keeps the task list deterministic and reproducible regardless of how
// the monitor tightens during search.
package mincut

import (
	"sort"

	"github.com/cichrrad/ni-pdp-sp/graph"
)

// Frontier enumerates every partial state at node == depth that is
// not trivially infeasible (sizeX <= a and node-sizeX <= n-a), where
// depth = min(a, maxDepth). No lower-bound pruning is applied.
//
// Tasks are returned sorted by ascending CutSoFar, a best-first
// dispatch-order convenience, not a correctness requirement.
//
// Complexity: output size is at most C(depth, min(a,depth)) *
// 2^(depth - min(a,depth)), in practice far smaller than 2^depth.
func Frontier(g *graph.Graph, a, maxDepth int) []PartialSolution {
	n := g.N()
	depth := a
	if maxDepth < depth {
		depth = maxDepth
	}
	if depth < 0 {
		depth = 0
	}

	var tasks []PartialSolution
	labels := make(Labels, n)

	var expand func(node int, cutSoFar int64, sizeX int)
	expand = func(node int, cutSoFar int64, sizeX int) {
		if node == depth {
			snap := labels.Clone()
			tasks = append(tasks, PartialSolution{
				Node:     node,
				CutSoFar: cutSoFar,
				SizeX:    sizeX,
				Labels:   snap,
			})
			return
		}

		// Branch X.
		if sizeX < a {
			var delta int64
			for j := 0; j < node; j++ {
				if !labels[j] {
					delta += g.Weight(j, node)
				}
			}
			labels[node] = true
			expand(node+1, cutSoFar+delta, sizeX+1)
			labels[node] = false
		}

		// Branch Y.
		if node-sizeX < n-a {
			var delta int64
			for j := 0; j < node; j++ {
				if labels[j] {
					delta += g.Weight(j, node)
				}
			}
			labels[node] = false
			expand(node+1, cutSoFar+delta, sizeX)
		}
	}
	expand(0, 0, 0)

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].CutSoFar < tasks[j].CutSoFar
	})
	return tasks
}
