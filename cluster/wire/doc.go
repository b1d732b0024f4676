// Package wire defines the message schema exchanged between master
// and worker processes, and its codec. Endpoints are always the same
// binary re-executed as separate processes (see cmd/mincut's
// bootstrap), not a foreign service, so encoding/gob is used rather
// than a cross-language format.
package wire
