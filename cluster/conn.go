package cluster

import (
	"io"

	"github.com/cichrrad/ni-pdp-sp/cluster/wire"
)

// Conn is one transport endpoint of the master-worker protocol: a
// send side and a receive side, independent of whether they're backed
// by OS pipes, in-memory io.Pipe, or (in tests) a loopback buffer.
type Conn struct {
	Enc *wire.Encoder
	Dec *wire.Decoder
}

// NewConn builds a Conn from a writer (outbound) and reader (inbound).
func NewConn(w io.Writer, r io.Reader) Conn {
	return Conn{Enc: wire.NewEncoder(w), Dec: wire.NewDecoder(r)}
}
