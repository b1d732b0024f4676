package main

import (
	"fmt"
	"os"

	"github.com/cichrrad/ni-pdp-sp/cluster"
	"github.com/cichrrad/ni-pdp-sp/graphfile"
)

// runWorker is the entry point for a re-exec'd worker process: its
// stdin/stdout are already wired to pipes held by the parent (rank 0)
// via runMaster's os/exec.Cmd setup, so the worker's Conn talks over
// them directly rather than over the terminal.
func runWorker(graphPath string, a, rank, nprocs int) error {
	f, err := os.Open(graphPath)
	if err != nil {
		return fmt.Errorf("opening graph file: %w", err)
	}
	defer f.Close()

	g, err := graphfile.Read(f)
	if err != nil {
		return fmt.Errorf("reading graph file: %w", err)
	}

	conn := cluster.NewConn(os.Stdout, os.Stdin)
	return cluster.RunWorker(g, a, nil, conn)
}
