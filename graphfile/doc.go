// Package graphfile reads the ASCII graph format consumed by
// cmd/mincut: whitespace-separated integers, first n > 0, then the
// n*n row-major weighted adjacency matrix.
package graphfile
