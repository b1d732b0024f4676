package graphfile

import "errors"

// ErrMalformed is returned for any parse failure: a missing token, a
// non-integer token, a non-positive n, fewer than n*n matrix entries,
// or a matrix that graph.New rejects. Tokens after the n*n-th entry
// are not read. Callers treat every ErrMalformed as fatal.
var ErrMalformed = errors.New("graphfile: malformed input")
