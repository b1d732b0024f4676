package graph

import "errors"

// Sentinel errors for graph construction and validation.
var (
	// ErrInvalidSize indicates n <= 0.
	ErrInvalidSize = errors.New("graph: n must be positive")

	// ErrDimensionMismatch indicates the supplied weight slice has the wrong length.
	ErrDimensionMismatch = errors.New("graph: weight slice length != n*n")

	// ErrNegativeWeight indicates a negative entry in the weight matrix.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrAsymmetry indicates w(i,j) != w(j,i) for some i,j.
	ErrAsymmetry = errors.New("graph: weight matrix is not symmetric")

	// ErrNonZeroDiagonal indicates w(i,i) != 0 for some i.
	ErrNonZeroDiagonal = errors.New("graph: non-zero diagonal entry")
)
