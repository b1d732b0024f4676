package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

var (
	procs        = flag.Int("procs", 1, "number of processes: 1 (rank 0) + procs-1 workers")
	isWorker     = flag.Bool("cluster-worker", false, "internal: run as a worker re-exec'd by rank 0")
	workerRank   = flag.Int("rank", 0, "internal: this process's rank, set by the re-exec bootstrap")
	workerNProcs = flag.Int("nprocs", 1, "internal: total process count, set by the re-exec bootstrap")
)

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: mincut [-procs N] <graph_file> <subset_size>")
		os.Exit(1)
	}

	graphPath := args[0]
	a, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "mincut: subset_size must be an integer: %v\n", err)
		os.Exit(1)
	}

	if *isWorker {
		if err := runWorker(graphPath, a, *workerRank, *workerNProcs); err != nil {
			fmt.Fprintf(os.Stderr, "mincut: worker %d: %v\n", *workerRank, err)
			os.Exit(1)
		}
		return
	}

	if err := runMaster(graphPath, a, *procs); err != nil {
		fmt.Fprintf(os.Stderr, "mincut: %v\n", err)
		os.Exit(1)
	}
}
