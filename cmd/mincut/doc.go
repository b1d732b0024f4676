// Command mincut computes the minimum-weight balanced cut of a graph
// read from an ASCII file (see package graphfile), using the
// branch-and-bound search in package mincut. With -procs > 1 it
// re-execs itself as additional worker processes and coordinates them
// via package cluster, since Go has no MPI binding to invoke under.
//
// Usage:
//
//	mincut [-procs N] <graph_file> <subset_size>
//
// Flags must precede the positional arguments: parsing stops at the
// first non-flag argument.
package main
