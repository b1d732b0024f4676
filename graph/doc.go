// Package graph provides an immutable, dense representation of a
// complete weighted undirected graph, plus a degree-based reordering
// pass that improves branch-and-bound pruning in package mincut.
//
// A Graph is built once from a symmetric nonnegative integer weight
// matrix and never mutated afterward; Weight(i, j) is an O(1) lookup
// into a flat row-major buffer, in the spirit of lvlath/matrix.Dense.
package graph
