package pool_test

import (
	"context"
	"testing"

	"github.com/cichrrad/ni-pdp-sp/graph"
	"github.com/cichrrad/ni-pdp-sp/mincut"
	"github.com/cichrrad/ni-pdp-sp/pool"
	"github.com/stretchr/testify/require"
)

func sampleGraph(t *testing.T) *graph.Graph {
	t.Helper()
	w := []int64{
		0, 1, 2, 3, 4,
		1, 0, 5, 6, 7,
		2, 5, 0, 8, 9,
		3, 6, 8, 0, 10,
		4, 7, 9, 10, 0,
	}
	g, err := graph.New(5, w)
	require.NoError(t, err)
	return g
}

// TestPool_MatchesSequentialSolve checks that distributing the
// frontier across a worker pool never changes the reported optimum,
// for several worker counts and with in-task forking on and off.
func TestPool_MatchesSequentialSolve(t *testing.T) {
	g := sampleGraph(t)
	const a = 2

	want, err := mincut.Solve(g, a, mincut.DefaultOptions())
	require.NoError(t, err)

	for _, workers := range []int{1, 2, 4} {
		for _, forkDepth := range []int{0, 2} {
			tasks := mincut.Frontier(g, a, 3)
			monitor := mincut.NewMonitor(mincut.MaxCut, make(mincut.Labels, g.N()))

			p := pool.New(g, a, nil, pool.Config{Workers: workers, ForkDepth: forkDepth})
			calls, err := p.Run(context.Background(), tasks, monitor)
			require.NoError(t, err)
			require.Positive(t, calls)
			require.Equal(t, want.BestCut, monitor.BestCut())
		}
	}
}

func TestPool_EmptyTasksReturnsZero(t *testing.T) {
	g := sampleGraph(t)
	p := pool.New(g, 2, nil, pool.DefaultConfig())
	monitor := mincut.NewMonitor(mincut.MaxCut, make(mincut.Labels, g.N()))

	calls, err := p.Run(context.Background(), nil, monitor)
	require.NoError(t, err)
	require.Zero(t, calls)
}

// TestPool_ContextCancellationPropagates checks that a canceled
// context surfaces as an error rather than being silently swallowed.
func TestPool_ContextCancellationPropagates(t *testing.T) {
	g := sampleGraph(t)
	p := pool.New(g, 2, nil, pool.Config{Workers: 1})
	monitor := mincut.NewMonitor(mincut.MaxCut, make(mincut.Labels, g.N()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tasks := mincut.Frontier(g, 2, 3)
	_, err := p.Run(ctx, tasks, monitor)
	require.Error(t, err)
}
