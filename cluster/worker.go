package cluster

import (
	"github.com/cichrrad/ni-pdp-sp/cluster/wire"
	"github.com/cichrrad/ni-pdp-sp/graph"
	"github.com/cichrrad/ni-pdp-sp/mincut"
)

// RunWorker implements the worker side of the master-worker protocol:
// receive a Task, run its DFS against a Monitor seeded from the
// task's GlobalBound, send back the Result, and repeat until a
// Terminate sentinel arrives. It returns nil on a clean Terminate, or
// the transport error that ended the loop otherwise.
func RunWorker(g *graph.Graph, a int, bound mincut.BoundFunc, conn Conn) error {
	engine := mincut.NewEngine(g, a, bound)

	for {
		task, err := conn.Dec.RecvTask()
		if err != nil {
			return err
		}
		if task.IsTerminate() {
			return nil
		}

		monitor := mincut.NewMonitor(task.GlobalBound, make(mincut.Labels, g.N()))
		ps := mincut.PartialSolution{
			Node:     task.Node,
			CutSoFar: task.CutSoFar,
			SizeX:    task.SizeX,
			Labels:   mincut.Labels(task.Labels),
		}
		calls := engine.Search(ps, monitor)
		snap := monitor.Snapshot()

		err = conn.Enc.SendResult(wire.Result{
			LocalBestCut:   snap.BestCut,
			RecursionCalls: calls,
			Witness:        []bool(snap.Witness),
		})
		if err != nil {
			return err
		}
	}
}
