package mincut_test

import (
	"testing"

	"github.com/cichrrad/ni-pdp-sp/graph"
	"github.com/cichrrad/ni-pdp-sp/mincut"
	"github.com/stretchr/testify/require"
)

func TestFrontier_DepthAndFeasibility(t *testing.T) {
	g, err := graph.New(6, make([]int64, 36))
	require.NoError(t, err)

	const a = 3
	tasks := mincut.Frontier(g, a, 4)
	require.NotEmpty(t, tasks)
	for _, task := range tasks {
		require.Equal(t, 3, task.Node) // depth = min(a, 4) = 3
		require.LessOrEqual(t, task.SizeX, a)
		require.LessOrEqual(t, task.Node-task.SizeX, g.N()-a)
	}
}

func TestFrontier_SortedAscendingCutSoFar(t *testing.T) {
	w := []int64{
		0, 1, 2, 3, 4,
		1, 0, 5, 6, 7,
		2, 5, 0, 8, 9,
		3, 6, 8, 0, 10,
		4, 7, 9, 10, 0,
	}
	g, err := graph.New(5, w)
	require.NoError(t, err)

	tasks := mincut.Frontier(g, 2, 3)
	for i := 1; i < len(tasks); i++ {
		require.LessOrEqual(t, tasks[i-1].CutSoFar, tasks[i].CutSoFar)
	}
}

// TestFrontier_DepthClampedByA ensures depth = min(a, maxDepth): when
// a is smaller than maxDepth, the frontier still materializes at
// node == a, not at maxDepth.
func TestFrontier_DepthClampedByA(t *testing.T) {
	g, err := graph.New(5, make([]int64, 25))
	require.NoError(t, err)

	tasks := mincut.Frontier(g, 2, 16)
	require.NotEmpty(t, tasks)
	for _, task := range tasks {
		require.Equal(t, 2, task.Node)
	}
}
