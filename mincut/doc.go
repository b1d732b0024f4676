// Package mincut implements the exact branch-and-bound search for the
// optimum weight of a balanced minimum edge cut: given a graph.Graph
// and a target subset size a, find a labeling of vertices into X/Y
// with |X| = a minimizing the crossing edge weight.
//
// The package is organized the way lvlath/tsp organizes its own
// branch-and-bound solver:
//
//	types.go    — Labels, PartialSolution, Result, Options, MaxCut
//	bound.go    — the two admissible lower-bound formulations
//	guess.go    — random-sampling initial upper bound
//	frontier.go — frontier expansion into independent tasks
//	monitor.go  — the shared best-cut monitor
//	engine.go   — the branch-and-bound DFS engine
//
// Every exported entry point operates on a *graph.Graph and is safe to
// call concurrently once construction (graph.New, optionally
// graph.Reorder) has completed, since Graph is immutable thereafter.
// The exception is an Engine value, which owns a mutable label buffer
// and must not be shared across goroutines.
package mincut
