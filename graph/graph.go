package graph

import "fmt"

// Graph is an immutable, dense adjacency-weight representation of a
// complete weighted undirected graph on n vertices. w is symmetric,
// nonnegative, and zero on the diagonal (enforced at construction).
//
// Storage is a single flat row-major buffer, mirroring
// lvlath/matrix.Dense: Weight(i, j) is O(1), no interface indirection,
// no bounds-checked error return on the hot path (callers are always
// internal and already know 0 <= i,j < n).
type Graph struct {
	n int
	w []int64 // length n*n, row-major
}

// New validates w (length n*n, symmetric, nonnegative, zero diagonal)
// and returns an immutable Graph wrapping a private copy of it.
//
// Complexity: O(n^2).
func New(n int, w []int64) (*Graph, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}
	if len(w) != n*n {
		return nil, fmt.Errorf("graph.New: %w (want %d, got %d)", ErrDimensionMismatch, n*n, len(w))
	}

	buf := make([]int64, n*n)
	copy(buf, w)

	for i := 0; i < n; i++ {
		if buf[i*n+i] != 0 {
			return nil, fmt.Errorf("graph.New: %w at vertex %d", ErrNonZeroDiagonal, i)
		}
		for j := i + 1; j < n; j++ {
			a, b := buf[i*n+j], buf[j*n+i]
			if a < 0 || b < 0 {
				return nil, fmt.Errorf("graph.New: %w at (%d,%d)", ErrNegativeWeight, i, j)
			}
			if a != b {
				return nil, fmt.Errorf("graph.New: %w at (%d,%d)", ErrAsymmetry, i, j)
			}
		}
	}

	return &Graph{n: n, w: buf}, nil
}

// N returns the vertex count.
func (g *Graph) N() int { return g.n }

// Weight returns w(i, j). Callers must ensure 0 <= i,j < N().
//
// Complexity: O(1).
func (g *Graph) Weight(i, j int) int64 { return g.w[i*g.n+j] }

// WeightedDegree returns the sum of weights of all edges incident to v.
//
// Complexity: O(n).
func (g *Graph) WeightedDegree(v int) int64 {
	var sum int64
	base := v * g.n
	for j := 0; j < g.n; j++ {
		sum += g.w[base+j]
	}
	return sum
}

// CutWeight returns the total weight of edges crossing the given
// labeling, where inX[i] is true iff vertex i is assigned to X.
// Provided for brute-force cross-checks in tests; the search itself
// tracks cutSoFar incrementally (see mincut.Engine).
//
// Complexity: O(n^2).
func (g *Graph) CutWeight(inX []bool) int64 {
	var cut int64
	for i := 0; i < g.n; i++ {
		for j := i + 1; j < g.n; j++ {
			if inX[i] != inX[j] {
				cut += g.w[i*g.n+j]
			}
		}
	}
	return cut
}
