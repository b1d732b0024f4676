package cluster

import (
	"fmt"
	"sync/atomic"

	"github.com/cichrrad/ni-pdp-sp/cluster/wire"
	"github.com/cichrrad/ni-pdp-sp/mincut"
)

// RunMaster dispatches tasks across conns using the master side of
// the master-worker protocol: every connection that receives a real
// task eventually reports exactly one Result; RunMaster replies to
// that same connection with either the next task or the Terminate
// sentinel, until every task has produced a result. Connections in
// excess of len(tasks) are sent Terminate immediately and never
// otherwise contacted.
func RunMaster(tasks []mincut.PartialSolution, n int, conns []Conn) (mincut.Result, error) {
	if len(tasks) == 0 {
		for _, c := range conns {
			if err := c.Enc.SendTask(wire.Terminate()); err != nil {
				return mincut.Result{}, err
			}
		}
		return mincut.Result{BestCut: mincut.MaxCut, Witness: make(mincut.Labels, n)}, nil
	}
	if len(conns) == 0 {
		return mincut.Result{}, fmt.Errorf("cluster: no worker connections")
	}

	monitor := mincut.NewMonitor(mincut.MaxCut, make(mincut.Labels, n))
	var totalCalls int64

	type report struct {
		idx int
		res wire.Result
		err error
	}
	reportCh := make(chan report, len(conns))

	next := 0
	dispatch := func(idx int) error {
		if next >= len(tasks) {
			return conns[idx].Enc.SendTask(wire.Terminate())
		}
		t := tasks[next]
		next++
		return conns[idx].Enc.SendTask(wire.Task{
			Node:        t.Node,
			CutSoFar:    t.CutSoFar,
			SizeX:       t.SizeX,
			GlobalBound: monitor.BestCut(),
			Labels:      []bool(t.Labels),
		})
	}

	active := len(conns)
	if active > len(tasks) {
		active = len(tasks)
	}
	for idx := 0; idx < len(conns); idx++ {
		if idx >= active {
			if err := conns[idx].Enc.SendTask(wire.Terminate()); err != nil {
				return mincut.Result{}, err
			}
			continue
		}
		if err := dispatch(idx); err != nil {
			return mincut.Result{}, err
		}
		go func(idx int) {
			for {
				res, err := conns[idx].Dec.RecvResult()
				if err != nil {
					reportCh <- report{idx, wire.Result{}, err}
					return
				}
				reportCh <- report{idx, res, nil}
			}
		}(idx)
	}

	done := 0
	for done < len(tasks) {
		rep := <-reportCh
		if rep.err != nil {
			return mincut.Result{}, fmt.Errorf("cluster: worker %d: %w", rep.idx, rep.err)
		}
		done++
		monitor.TryImprove(rep.res.LocalBestCut, rep.res.Witness)
		atomic.AddInt64(&totalCalls, rep.res.RecursionCalls)
		if err := dispatch(rep.idx); err != nil {
			return mincut.Result{}, err
		}
	}

	res := monitor.Snapshot()
	res.RecursionCalls = totalCalls
	return res, nil
}
