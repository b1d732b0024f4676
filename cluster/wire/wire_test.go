package wire_test

import (
	"bytes"
	"testing"

	"github.com/cichrrad/ni-pdp-sp/cluster/wire"
	"github.com/stretchr/testify/require"
)

// TestRoundTrip_TasksAndResults checks that encoding then decoding a
// message reproduces it exactly, across a stream carrying a mix of
// Task and Result values.
func TestRoundTrip_TasksAndResults(t *testing.T) {
	var buf bytes.Buffer
	enc := wire.NewEncoder(&buf)
	dec := wire.NewDecoder(&buf)

	tasks := []wire.Task{
		{Node: 2, CutSoFar: 7, SizeX: 1, GlobalBound: 99, Labels: []bool{true, false, false, false}},
		{Node: 0, CutSoFar: 0, SizeX: 0, GlobalBound: 42, Labels: []bool{false, false}},
		wire.Terminate(),
	}
	results := []wire.Result{
		{LocalBestCut: 14, RecursionCalls: 31, Witness: []bool{true, true, false, false}},
		{LocalBestCut: 0, RecursionCalls: 1, Witness: []bool{false}},
	}

	for _, task := range tasks {
		require.NoError(t, enc.SendTask(task))
	}
	for _, res := range results {
		require.NoError(t, enc.SendResult(res))
	}

	for _, want := range tasks {
		got, err := dec.RecvTask()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	for _, want := range results {
		got, err := dec.RecvResult()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestTerminate_IsRecognized(t *testing.T) {
	require.True(t, wire.Terminate().IsTerminate())
	require.False(t, wire.Task{Node: 0}.IsTerminate())
}
