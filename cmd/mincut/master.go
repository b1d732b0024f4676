package main

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"time"

	"github.com/cichrrad/ni-pdp-sp/cluster"
	"github.com/cichrrad/ni-pdp-sp/graphfile"
	"github.com/cichrrad/ni-pdp-sp/mincut"
)

// runMaster reads the graph, then either solves it on this single
// process (procs <= 1) or re-execs procs-1 copies of this same binary
// as workers and coordinates them over os.Pipe (procs > 1).
func runMaster(graphPath string, a, procs int) error {
	f, err := os.Open(graphPath)
	if err != nil {
		return fmt.Errorf("opening graph file: %w", err)
	}
	defer f.Close()

	g, err := graphfile.Read(f)
	if err != nil {
		return fmt.Errorf("reading graph file: %w", err)
	}

	if procs <= 1 {
		start := time.Now()
		res, err := mincut.Solve(g, a, mincut.DefaultOptions())
		if err != nil {
			return err
		}
		report(res, time.Since(start))
		return nil
	}

	conns, cmds, err := spawnWorkers(graphPath, a, procs)
	if err != nil {
		return err
	}
	defer waitAll(cmds)

	tasks := mincut.Frontier(g, a, mincut.DefaultFrontierDepth)
	start := time.Now()
	res, err := cluster.RunMaster(tasks, g.N(), conns)
	if err != nil {
		return err
	}
	report(res, time.Since(start))
	return nil
}

// spawnWorkers launches procs-1 re-exec'd worker processes, each
// wired to a dedicated pipe pair, and returns one cluster.Conn per
// worker alongside the *exec.Cmd handles the caller must Wait on.
func spawnWorkers(graphPath string, a, procs int) ([]cluster.Conn, []*exec.Cmd, error) {
	self, err := os.Executable()
	if err != nil {
		return nil, nil, fmt.Errorf("resolving own executable: %w", err)
	}

	n := procs - 1
	conns := make([]cluster.Conn, n)
	cmds := make([]*exec.Cmd, n)

	for i := 0; i < n; i++ {
		cmd := exec.Command(self,
			"-cluster-worker",
			"-rank", strconv.Itoa(i+1),
			"-nprocs", strconv.Itoa(procs),
			graphPath, strconv.Itoa(a),
		)
		cmd.Stderr = os.Stderr

		stdin, err := cmd.StdinPipe()
		if err != nil {
			return nil, nil, fmt.Errorf("worker %d: stdin pipe: %w", i+1, err)
		}
		stdout, err := cmd.StdoutPipe()
		if err != nil {
			return nil, nil, fmt.Errorf("worker %d: stdout pipe: %w", i+1, err)
		}
		if err := cmd.Start(); err != nil {
			return nil, nil, fmt.Errorf("worker %d: start: %w", i+1, err)
		}

		conns[i] = cluster.NewConn(stdin, stdout)
		cmds[i] = cmd
	}
	return conns, cmds, nil
}

func waitAll(cmds []*exec.Cmd) {
	for _, cmd := range cmds {
		_ = cmd.Wait()
	}
}

// report prints the three lines the original solver reports (cut
// weight, recursion calls, elapsed time) plus the witness partition
// as a fourth, supplemented line.
func report(res mincut.Result, elapsed time.Duration) {
	fmt.Printf("Minimum cut weight: %d\n", res.BestCut)
	fmt.Printf("Total recursion calls: %d\n", res.RecursionCalls)
	fmt.Printf("Elapsed time: %s\n", elapsed)
	fmt.Printf("Witness partition: %v\n", res.Witness)
}
