// monitor.go implements the shared best-cut record: a single
// monotonically non-increasing bestCut plus its witnessing assignment,
// read lock-free by every pruning decision and written under a short
// critical section by every improving DFS leaf.
package mincut

import (
	"sync"
	"sync/atomic"
)

// Monitor is the shared best-known-cut record. The zero value is not
// ready for use; construct with NewMonitor.
//
// Reads of BestCut are lock-free (an atomic load of an int64), so
// pruning checks never block on the mutex. Writes take the mutex only
// to keep (bestCut, witness) consistent as a pair; the atomic int64
// lets readers see bestCut update without waiting for the witness
// copy to finish, which is safe because a stale-but-monotone bound
// only costs extra search, never incorrect pruning.
type Monitor struct {
	bestCut atomic.Int64
	mu      sync.Mutex
	witness Labels
}

// NewMonitor creates a Monitor seeded at initial (pass mincut.MaxCut
// for "+Infinity", or the cut returned by Guesstimate).
func NewMonitor(initial int64, witness Labels) *Monitor {
	m := &Monitor{}
	m.bestCut.Store(initial)
	m.witness = witness.Clone()
	return m
}

// BestCut returns the current best-known cut weight. Non-blocking.
func (m *Monitor) BestCut() int64 { return m.bestCut.Load() }

// TryImprove atomically publishes (cut, witness) as the new best if
// and only if cut is still strictly better than the current value at
// the moment the critical section is entered — i.e. it re-checks
// under the lock rather than trusting the caller's earlier read, so
// two goroutines racing to publish never clobber a better result with
// a worse one.
//
// Returns true iff this call's value became the new best.
func (m *Monitor) TryImprove(cut int64, witness Labels) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cut >= m.bestCut.Load() {
		return false
	}
	m.bestCut.Store(cut)
	m.witness = witness.Clone()
	return true
}

// Snapshot returns the current (bestCut, witness) pair as a Result.
func (m *Monitor) Snapshot() Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Result{BestCut: m.bestCut.Load(), Witness: m.witness.Clone()}
}
