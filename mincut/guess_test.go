package mincut_test

import (
	"testing"

	"github.com/cichrrad/ni-pdp-sp/graph"
	"github.com/cichrrad/ni-pdp-sp/mincut"
	"github.com/stretchr/testify/require"
)

func TestGuesstimate_FeasibleAndBounded(t *testing.T) {
	w := []int64{
		0, 1, 2, 3,
		1, 0, 4, 5,
		2, 4, 0, 6,
		3, 5, 6, 0,
	}
	g, err := graph.New(4, w)
	require.NoError(t, err)

	res, err := mincut.Guesstimate(g, 2, 32, 0)
	require.NoError(t, err)
	require.Len(t, res.Witness, 4)

	var sizeX int
	for _, v := range res.Witness {
		if v {
			sizeX++
		}
	}
	require.Equal(t, 2, sizeX)
	require.GreaterOrEqual(t, res.BestCut, int64(14)) // optimum for this scenario is 14
}

func TestGuesstimate_Rejects(t *testing.T) {
	g, err := graph.New(2, []int64{0, 1, 1, 0})
	require.NoError(t, err)

	_, err = mincut.Guesstimate(g, 0, 1, 0)
	require.ErrorIs(t, err, mincut.ErrInvalidSubsetSize)

	_, err = mincut.Guesstimate(g, 1, 0, 0)
	require.ErrorIs(t, err, mincut.ErrInvalidTries)
}

// TestGuesstimate_DeterministicForFixedSeed checks that repeating a
// run with the same seed reproduces the same sampled subsets.
func TestGuesstimate_DeterministicForFixedSeed(t *testing.T) {
	g, err := graph.New(6, make([]int64, 36))
	require.NoError(t, err)

	res1, err := mincut.Guesstimate(g, 3, 1, 0)
	require.NoError(t, err)
	res2, err := mincut.Guesstimate(g, 3, 1, 0)
	require.NoError(t, err)
	require.Equal(t, res1.Witness, res2.Witness)
}
