package graph_test

import (
	"testing"

	"github.com/cichrrad/ni-pdp-sp/graph"
	"github.com/stretchr/testify/require"
)

// TestReorder_DegreeDescending checks that the reordered graph lists
// its vertices by non-increasing weighted degree.
func TestReorder_DegreeDescending(t *testing.T) {
	// Vertex 2 has the highest weighted degree, vertex 0 the lowest.
	w := []int64{
		0, 1, 1, 0,
		1, 0, 9, 0,
		1, 9, 0, 9,
		0, 0, 9, 0,
	}
	g, err := graph.New(4, w)
	require.NoError(t, err)

	r, perm := graph.Reorder(g)
	require.Equal(t, g.N(), r.N())
	require.Len(t, perm, g.N())

	// Degrees in the reordered graph must be non-increasing.
	prev := r.WeightedDegree(0)
	for v := 1; v < r.N(); v++ {
		d := r.WeightedDegree(v)
		require.LessOrEqual(t, d, prev)
		prev = d
	}
}

func TestReorder_PermutationInvariantTotalWeight(t *testing.T) {
	w := []int64{
		0, 3, 5, 2,
		3, 0, 1, 4,
		5, 1, 0, 6,
		2, 4, 6, 0,
	}
	g, err := graph.New(4, w)
	require.NoError(t, err)
	r, _ := graph.Reorder(g)

	var sumOrig, sumReordered int64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sumOrig += g.Weight(i, j)
			sumReordered += r.Weight(i, j)
		}
	}
	require.Equal(t, sumOrig, sumReordered)
}
