package wire

import (
	"encoding/gob"
	"io"
)

// Task is the unit of work sent from the master to a worker: a single
// mincut.PartialSolution plus the globally known best cut at dispatch
// time, so a worker can prune immediately on receipt without waiting
// for a result round-trip.
type Task struct {
	Node        int
	CutSoFar    int64
	SizeX       int
	GlobalBound int64
	Labels      []bool
}

// Terminate returns the sentinel task signaling a worker to exit its
// receive loop. Workers must check IsTerminate before treating a Task
// as real work.
func Terminate() Task {
	return Task{Node: -1}
}

// IsTerminate reports whether t is the termination sentinel.
func (t Task) IsTerminate() bool {
	return t.Node == -1
}

// Result is the unit of work sent from a worker back to the master:
// the best cut the worker found for the one task it just processed
// (the task's GlobalBound, with an all-false witness, if it found
// nothing better), its witness assignment, and how many recursive
// calls it spent on that task.
type Result struct {
	LocalBestCut   int64
	RecursionCalls int64
	Witness        []bool
}

// Encoder writes a sequence of Task/Result messages onto one
// io.Writer. Construct exactly one Encoder per connection and reuse
// it for every message: encoding/gob transmits each type's schema
// once per encoder and a fresh decoder on the far end would otherwise
// either re-request it or desync on the shared stream.
type Encoder struct {
	enc *gob.Encoder
}

// NewEncoder wraps w in a gob stream encoder.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{enc: gob.NewEncoder(w)}
}

// SendTask writes t as the next message on the stream.
func (e *Encoder) SendTask(t Task) error {
	return e.enc.Encode(&t)
}

// SendResult writes r as the next message on the stream.
func (e *Encoder) SendResult(r Result) error {
	return e.enc.Encode(&r)
}

// Decoder reads a sequence of Task/Result messages from one
// io.Reader. As with Encoder, construct exactly one Decoder per
// connection.
type Decoder struct {
	dec *gob.Decoder
}

// NewDecoder wraps r in a gob stream decoder.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{dec: gob.NewDecoder(r)}
}

// RecvTask reads the next Task message from the stream.
func (d *Decoder) RecvTask() (Task, error) {
	var t Task
	if err := d.dec.Decode(&t); err != nil {
		return Task{}, err
	}
	return t, nil
}

// RecvResult reads the next Result message from the stream.
func (d *Decoder) RecvResult() (Result, error) {
	var r Result
	if err := d.dec.Decode(&r); err != nil {
		return Result{}, err
	}
	return r, nil
}
