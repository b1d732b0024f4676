package mincut

import "errors"

// Sentinel errors for the mincut package. Callers MUST use errors.Is;
// messages are never matched by substring.
var (
	// ErrInvalidSubsetSize indicates a isn't in the open interval (0, n).
	ErrInvalidSubsetSize = errors.New("mincut: subset size must satisfy 0 < a < n")

	// ErrInvalidTries indicates Guesstimate was asked for numTries < 1.
	ErrInvalidTries = errors.New("mincut: numTries must be >= 1")

	// ErrInvariantViolation marks a programming error: an internal
	// partial-state invariant (sizeX <= a, node-sizeX <= n-a, ...) was
	// violated. It is never expected to surface to a caller; panicking
	// on it would be equally correct, but an error keeps tests clean.
	ErrInvariantViolation = errors.New("mincut: internal invariant violation")
)
