package graphfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/cichrrad/ni-pdp-sp/graph"
)

// Read parses r as the ASCII graph format and returns the resulting
// Graph. It reads the size n first, then the n*n weight matrix,
// tokenizing on any run of whitespace (spaces, tabs, newlines) via
// bufio.Scanner's ScanWords split function — trailing whitespace past
// the last entry is simply never scanned, so it is tolerated for
// free.
func Read(r io.Reader) (*graph.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)
	sc.Split(bufio.ScanWords)

	n64, err := nextInt(sc)
	if err != nil {
		return nil, fmt.Errorf("%w: reading n: %v", ErrMalformed, err)
	}
	if n64 <= 0 {
		return nil, fmt.Errorf("%w: n must be positive, got %d", ErrMalformed, n64)
	}
	n := int(n64)

	w := make([]int64, n*n)
	for i := range w {
		v, err := nextInt(sc)
		if err != nil {
			return nil, fmt.Errorf("%w: reading entry %d: %v", ErrMalformed, i, err)
		}
		w[i] = v
	}

	g, err := graph.New(n, w)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return g, nil
}

func nextInt(sc *bufio.Scanner) (int64, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	v, err := strconv.ParseInt(sc.Text(), 10, 64)
	if err != nil {
		return 0, err
	}
	return v, nil
}
