package pool

import (
	"context"
	"runtime"
	"sync/atomic"

	"github.com/cichrrad/ni-pdp-sp/graph"
	"github.com/cichrrad/ni-pdp-sp/mincut"
	"golang.org/x/sync/errgroup"
)

// Config controls how a Pool distributes tasks across goroutines.
type Config struct {
	// Workers is the number of goroutines draining the task queue.
	// Workers <= 0 defaults to runtime.NumCPU().
	Workers int

	// ForkDepth enables each worker's Engine.SearchParallel instead of
	// Engine.Search, forking the shallow levels of a task's own DFS
	// onto extra goroutines. 0 disables it.
	ForkDepth int
}

// DefaultConfig returns a Config sized to the host's CPU count with
// in-task forking disabled.
func DefaultConfig() Config {
	return Config{Workers: runtime.NumCPU(), ForkDepth: 0}
}

// Pool runs a batch of mincut.PartialSolution tasks against a shared
// graph and bound function, using a fixed goroutine count.
type Pool struct {
	g     *graph.Graph
	a     int
	bound mincut.BoundFunc
	cfg   Config
}

// New constructs a Pool. A nil bound defaults to mincut.IndependentBound
// (via mincut.NewEngine).
func New(g *graph.Graph, a int, bound mincut.BoundFunc, cfg Config) *Pool {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return &Pool{g: g, a: a, bound: bound, cfg: cfg}
}

// Run executes every task exactly once against monitor, using
// p.cfg.Workers goroutines draining a shared queue, and returns the
// aggregate recursion count across all tasks. The final monitor state
// is read back via monitor.Snapshot by the caller.
//
// Run returns early with ctx.Err() if ctx is canceled before all
// tasks complete; tasks already in flight are allowed to finish.
func (p *Pool) Run(ctx context.Context, tasks []mincut.PartialSolution, monitor *mincut.Monitor) (int64, error) {
	if len(tasks) == 0 {
		return 0, nil
	}

	queue := make(chan mincut.PartialSolution, len(tasks))
	for _, task := range tasks {
		queue <- task
	}
	close(queue)

	var totalCalls atomic.Int64
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(p.cfg.Workers)

	for i := 0; i < p.cfg.Workers; i++ {
		grp.Go(func() error {
			engine := mincut.NewEngine(p.g, p.a, p.bound)
			for {
				if err := gctx.Err(); err != nil {
					return err
				}
				select {
				case <-gctx.Done():
					return gctx.Err()
				case task, ok := <-queue:
					if !ok {
						return nil
					}
					var calls int64
					if p.cfg.ForkDepth > 0 {
						calls = engine.SearchParallel(task, monitor, p.cfg.ForkDepth)
					} else {
						calls = engine.Search(task, monitor)
					}
					totalCalls.Add(calls)
				}
			}
		})
	}

	if err := grp.Wait(); err != nil {
		return totalCalls.Load(), err
	}
	return totalCalls.Load(), nil
}
