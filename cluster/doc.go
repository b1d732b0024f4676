// Package cluster implements the inter-process master/worker dispatch
// loop, transported over io.Reader/io.Writer rather than a real MPI
// communicator, since Go has no MPI binding. cmd/mincut wires actual OS
// pipes to a self re-exec process tree; tests wire io.Pipe pairs
// directly.
package cluster
