// bound.go implements two admissible lower-bound formulations. Both
// take the graph, the partial state (node, sizeX, labels[0:node)) and
// the global target size a, and return an integer <= the true cut
// weight contributed by vertices [node, n) under any feasible
// completion.
//
// remainY is computed ONCE before the per-vertex loop (the constant
// form), never inside the loop — a form that recomputes it per vertex
// over-estimates remY's availability and is not admissible.
package mincut

import (
	"sort"

	"github.com/cichrrad/ni-pdp-sp/graph"
)

// costs computes, for every free vertex i in [node, n), the weight it
// would contribute to the cut if assigned to X (costX) and if assigned
// to Y (costY), counting only edges to already-labeled vertices
// j < node. Shared by both bound formulations to avoid computing the
// O((n-node)*node) edge sums twice.
func costs(g *graph.Graph, node int, labels Labels) (costX, costY []int64) {
	n := g.N()
	costX = make([]int64, n-node)
	costY = make([]int64, n-node)
	for idx, i := 0, node; i < n; idx, i = idx+1, i+1 {
		var cx, cy int64
		for j := 0; j < node; j++ {
			w := g.Weight(i, j)
			if labels[j] {
				// j in X: an edge to i only crosses if i goes to Y.
				cy += w
			} else {
				cx += w
			}
		}
		costX[idx] = cx
		costY[idx] = cy
	}
	return costX, costY
}

// IndependentBound implements formulation (a): for each free vertex,
// independently take the cheaper of sending it to X or Y, forcing it
// to the other side ("+Inf", i.e. excluded from the min) whenever that
// side's remaining capacity is exhausted. It ignores the *joint*
// capacity constraint across all free vertices, which is exactly why
// it is cheaper to compute than DeltaBound but looser.
//
// Admissible: each term is itself a valid lower bound on vertex i's
// isolated contribution, and the true cut only adds more terms
// (edges among free vertices) on top of this sum.
//
// Complexity: O((n-node) * node).
func IndependentBound(g *graph.Graph, node, sizeX, a int, labels Labels) int64 {
	n := g.N()
	remX := a - sizeX
	remY := (n - a) - (node - sizeX) // constant: computed once, not per-i

	costX, costY := costs(g, node, labels)

	var sum int64
	for idx := range costX {
		cx, cy := costX[idx], costY[idx]
		xOK, yOK := remX > 0, remY > 0
		switch {
		case xOK && yOK:
			if cx < cy {
				sum += cx
			} else {
				sum += cy
			}
		case xOK:
			sum += cx
		case yOK:
			sum += cy
		default:
			// Infeasible state: contributes 0; the branch is pruned
			// elsewhere by the sizeX/remY preconditions in Engine.
		}
	}
	return sum
}

// DeltaBound implements formulation (b): the capacity-aware
// correction. baseline sends every free vertex to Y; since exactly
// remX of them must actually go to X, the tightest admissible
// correction adds the remX smallest per-vertex deltas
// delta(i) = costX(i) - costY(i) (which may be negative, meaning
// moving i to X only helps).
//
// DeltaBound(state) >= IndependentBound(state) always: selecting the
// globally remX cheapest swaps dominates selecting, vertex by vertex,
// whichever side looks locally cheaper.
//
// Complexity: O((n-node)*node + (n-node) log(n-node)).
func DeltaBound(g *graph.Graph, node, sizeX, a int, labels Labels) int64 {
	n := g.N()
	remX := a - sizeX
	remY := (n - a) - (node - sizeX)
	if remX < 0 || remY < 0 {
		return 0 // infeasible state; pruned elsewhere.
	}

	costX, costY := costs(g, node, labels)

	var baseline int64
	deltas := make([]int64, len(costY))
	for idx := range costY {
		baseline += costY[idx]
		deltas[idx] = costX[idx] - costY[idx]
	}

	if remX >= len(deltas) {
		// Every free vertex must go to X (remY == 0 case): baseline's
		// all-Y hypothesis is fully corrected.
		var sum int64
		for _, d := range deltas {
			sum += d
		}
		return baseline + sum
	}

	sort.Slice(deltas, func(i, j int) bool { return deltas[i] < deltas[j] })

	var correction int64
	for k := 0; k < remX; k++ {
		correction += deltas[k]
	}
	return baseline + correction
}
