// Package pool implements the intra-process worker pool: a fixed
// number of goroutines draining a shared task channel, each running
// its task's DFS against one shared Monitor, modeled on the
// worker-pool-over-a-closed-channel pattern in
// github.com/perf-analysis/internal/parser/hprof's ParallelAnalyzer.
package pool
