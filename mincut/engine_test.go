package mincut_test

import (
	"sync"
	"testing"

	"github.com/cichrrad/ni-pdp-sp/graph"
	"github.com/cichrrad/ni-pdp-sp/mincut"
	"github.com/stretchr/testify/require"
)

func TestEngine_SingleTaskRootMatchesSolve(t *testing.T) {
	w := []int64{
		0, 1, 2, 3,
		1, 0, 4, 5,
		2, 4, 0, 6,
		3, 5, 6, 0,
	}
	g, err := graph.New(4, w)
	require.NoError(t, err)

	monitor := mincut.NewMonitor(mincut.MaxCut, make(mincut.Labels, 4))
	engine := mincut.NewEngine(g, 2, nil)
	root := mincut.PartialSolution{Node: 0, CutSoFar: 0, SizeX: 0, Labels: make(mincut.Labels, 4)}
	calls := engine.Search(root, monitor)

	require.Positive(t, calls)
	require.Equal(t, int64(14), monitor.BestCut())
}

// TestMonitor_ConcurrentImprovementIsMonotone exercises the monitor
// under concurrent writers and checks it never regresses.
func TestMonitor_ConcurrentImprovementIsMonotone(t *testing.T) {
	monitor := mincut.NewMonitor(mincut.MaxCut, mincut.Labels{false, false})

	var wg sync.WaitGroup
	const writers = 64
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(cut int64) {
			defer wg.Done()
			monitor.TryImprove(cut, mincut.Labels{true, false})
		}(int64(writers - i))
	}
	wg.Wait()

	require.Equal(t, int64(1), monitor.BestCut())
}

func TestMonitor_TryImproveRejectsWorse(t *testing.T) {
	monitor := mincut.NewMonitor(10, mincut.Labels{true})
	require.False(t, monitor.TryImprove(20, mincut.Labels{false}))
	require.Equal(t, int64(10), monitor.BestCut())
	require.True(t, monitor.TryImprove(5, mincut.Labels{false}))
	require.Equal(t, int64(5), monitor.BestCut())
}
