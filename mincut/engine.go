// engine.go implements the recursive branch-and-bound enumeration over
// partial assignments rooted at a single PartialSolution, pruning
// against a shared Monitor.
package mincut

import "github.com/cichrrad/ni-pdp-sp/graph"

// BoundFunc computes an admissible lower bound on the cut contributed
// by vertices [node, n) given a partial state. Both IndependentBound
// and DeltaBound satisfy this signature; Engine defaults to
// IndependentBound.
type BoundFunc func(g *graph.Graph, node, sizeX, a int, labels Labels) int64

// Engine drives one DFS rooted at a PartialSolution. Each Engine owns
// a private label buffer and recursion counter, so it must not be
// shared across goroutines; callers construct one Engine per task.
type Engine struct {
	g     *graph.Graph
	a     int
	bound BoundFunc

	labels Labels
	calls  int64
}

// NewEngine constructs an Engine for graph g and target size a. If
// bound is nil, IndependentBound is used.
func NewEngine(g *graph.Graph, a int, bound BoundFunc) *Engine {
	if bound == nil {
		bound = IndependentBound
	}
	return &Engine{g: g, a: a, bound: bound, labels: make(Labels, g.N())}
}

// Search explores every feasible completion of task that could beat
// monitor's current best, possibly improving monitor. It returns the
// number of recursive invocations performed, for instrumentation.
func (e *Engine) Search(task PartialSolution, monitor *Monitor) int64 {
	copy(e.labels, task.Labels)
	e.calls = 0
	e.dfs(task.Node, task.CutSoFar, task.SizeX, monitor)
	return e.calls
}

// dfs walks the state machine step by step: leaf check, prune check,
// then the X branch before the Y branch (X first, since high-degree
// vertices sorted early by graph.Reorder tighten the bound fastest
// once committed to X).
func (e *Engine) dfs(node int, cutSoFar int64, sizeX int, monitor *Monitor) {
	e.calls++
	n := e.g.N()

	if node == n {
		if sizeX == e.a && cutSoFar < monitor.BestCut() {
			monitor.TryImprove(cutSoFar, e.labels)
		}
		return
	}

	best := monitor.BestCut()
	if cutSoFar+e.bound(e.g, node, sizeX, e.a, e.labels) >= best {
		return
	}

	if sizeX < e.a {
		var delta int64
		for j := 0; j < node; j++ {
			if !e.labels[j] {
				delta += e.g.Weight(j, node)
			}
		}
		e.labels[node] = true
		e.dfs(node+1, cutSoFar+delta, sizeX+1, monitor)
	}

	if node-sizeX < n-e.a {
		var delta int64
		for j := 0; j < node; j++ {
			if e.labels[j] {
				delta += e.g.Weight(j, node)
			}
		}
		e.labels[node] = false
		e.dfs(node+1, cutSoFar+delta, sizeX, monitor)
	}
}
