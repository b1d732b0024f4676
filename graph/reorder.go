package graph

import "sort"

// Reorder computes a stable permutation of g's vertices by descending
// weighted degree (ties broken by original index) and returns a new
// Graph with vertex i physically relabeled to old vertex perm[i],
// alongside perm itself.
//
// Rationale: placing high-degree vertices early tightens the lower
// bounds in package mincut (IndependentBound, DeltaBound) sooner, since their edges participate in pruning
// from the first levels of the search. The optimum cut weight does not
// depend on vertex labeling, so the search itself (mincut.Engine,
// mincut.Frontier) never consults perm and operates purely on the
// reordered Graph. perm is returned only so a top-level orchestrator
// (mincut.Solve) can translate a witness assignment back into the
// caller's original vertex numbering.
//
// Complexity: O(n^2) (degree computation dominates; the sort is
// O(n log n)).
func Reorder(g *Graph) (*Graph, []int) {
	n := g.n
	degree := make([]int64, n)
	for v := 0; v < n; v++ {
		degree[v] = g.WeightedDegree(v)
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		va, vb := perm[a], perm[b]
		if degree[va] != degree[vb] {
			return degree[va] > degree[vb]
		}
		return va < vb
	})

	w := make([]int64, n*n)
	for newI, oldI := range perm {
		for newJ, oldJ := range perm {
			w[newI*n+newJ] = g.w[oldI*n+oldJ]
		}
	}

	return &Graph{n: n, w: w}, perm
}
