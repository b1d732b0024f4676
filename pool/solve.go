package pool

import (
	"context"

	"github.com/cichrrad/ni-pdp-sp/graph"
	"github.com/cichrrad/ni-pdp-sp/mincut"
)

// Solve computes the optimum balanced cut of g for target size a using
// a worker pool instead of mincut.Solve's single goroutine: reorder,
// seed, expand the frontier, then hand every task to a Pool. BestCut
// equals mincut.Solve's for the same (g, a, opts). RecursionCalls
// depends on how the workers' pruning interleaves and may differ, and
// when several cuts share the optimum the reported Witness may be a
// different one of them.
func Solve(ctx context.Context, g *graph.Graph, a int, opts mincut.Options, cfg Config) (mincut.Result, error) {
	n := g.N()
	if a <= 0 || a >= n {
		return mincut.Result{}, mincut.ErrInvalidSubsetSize
	}

	search := g
	var unpermute func(mincut.Labels) mincut.Labels
	if opts.UseReorder {
		var perm []int
		search, perm = graph.Reorder(g)
		unpermute = func(l mincut.Labels) mincut.Labels {
			out := make(mincut.Labels, n)
			for newI, oldI := range perm {
				out[oldI] = l[newI]
			}
			return out
		}
	} else {
		unpermute = func(l mincut.Labels) mincut.Labels { return l }
	}

	initial := mincut.MaxCut
	var seed mincut.Labels
	if opts.GuessTries > 0 {
		g0, err := mincut.Guesstimate(search, a, opts.GuessTries, opts.GuessSeed)
		if err != nil {
			return mincut.Result{}, err
		}
		initial, seed = g0.BestCut, g0.Witness
	}
	monitor := mincut.NewMonitor(initial, seed)

	tasks := mincut.Frontier(search, a, opts.FrontierDepth)

	p := New(search, a, nil, cfg)
	totalCalls, err := p.Run(ctx, tasks, monitor)
	if err != nil {
		return mincut.Result{}, err
	}

	res := monitor.Snapshot()
	res.RecursionCalls = totalCalls
	res.Witness = unpermute(res.Witness)
	return res, nil
}
