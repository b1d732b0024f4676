// solve.go provides Solve, a sequential reference dispatcher that
// wires the graph, bound, engine, and frontier together on a single
// goroutine: reorder, seed, expand the frontier, and run every task's
// DFS in turn. It is the baseline that pool.Pool and cluster's
// master/worker dispatch parallelize; tests compare their output
// against it for determinism.
package mincut

import "github.com/cichrrad/ni-pdp-sp/graph"

// Solve computes the optimum balanced cut of g for target size a,
// sequentially. It validates a, optionally reorders g (opts.UseReorder),
// seeds the monitor via Guesstimate, expands the frontier, and runs
// each task's DFS in frontier order.
//
// The returned Result's Witness is expressed in the vertex numbering
// of g as passed in: if opts.UseReorder relabeled vertices internally,
// the witness is un-permuted before return so callers never observe
// the internal reordering.
func Solve(g *graph.Graph, a int, opts Options) (Result, error) {
	n := g.N()
	if a <= 0 || a >= n {
		return Result{}, ErrInvalidSubsetSize
	}

	search := g
	var unpermute func(Labels) Labels
	if opts.UseReorder {
		var perm []int
		search, perm = graph.Reorder(g)
		unpermute = func(l Labels) Labels {
			out := make(Labels, n)
			for newI, oldI := range perm {
				out[oldI] = l[newI]
			}
			return out
		}
	} else {
		unpermute = func(l Labels) Labels { return l }
	}

	initial := MaxCut
	var seed Labels
	if opts.GuessTries > 0 {
		g0, err := Guesstimate(search, a, opts.GuessTries, opts.GuessSeed)
		if err != nil {
			return Result{}, err
		}
		initial, seed = g0.BestCut, g0.Witness
	}
	monitor := NewMonitor(initial, seed)

	tasks := Frontier(search, a, opts.FrontierDepth)

	var totalCalls int64
	engine := NewEngine(search, a, nil)
	for _, task := range tasks {
		totalCalls += engine.Search(task, monitor)
	}

	res := monitor.Snapshot()
	res.RecursionCalls = totalCalls
	res.Witness = unpermute(res.Witness)
	return res, nil
}
