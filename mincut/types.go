package mincut

// Labels is a dense per-vertex X/Y labeling: Labels[i] == true means
// vertex i is assigned to X. For a PartialSolution only entries
// [0, Node) are meaningful; for a Result every entry is meaningful.
//
// The in-process representation is []bool (one bool per vertex) for
// clarity; the wire schema (cluster/wire) is where a denser encoding
// across the message boundary would actually matter.
type Labels []bool

// Clone returns an independent copy of l.
func (l Labels) Clone() Labels {
	c := make(Labels, len(l))
	copy(c, l)
	return c
}

// PartialSolution is an immutable snapshot of a partial assignment:
// vertices [0, Node) are labeled, [Node, n) are free. It is produced
// once by Frontier, consumed exactly once by Engine.Search.
type PartialSolution struct {
	// Node is the index of the first unlabeled vertex.
	Node int

	// CutSoFar is the cut weight contributed by labeled pairs i<j<Node.
	CutSoFar int64

	// SizeX is the count of labels equal to X among [0, Node).
	SizeX int

	// Labels holds the label prefix; len(Labels) == n, only [0, Node)
	// is meaningful.
	Labels Labels
}

// Result is a complete, feasible assignment and its cut weight: the
// outcome of a full mincut search.
type Result struct {
	// BestCut is the minimum cut weight found.
	BestCut int64

	// Witness is a complete labeling achieving BestCut; len(Witness) == n.
	Witness Labels

	// RecursionCalls counts DFS node visits, for instrumentation only.
	RecursionCalls int64
}

// Options configures a mincut run, in the style of tsp.Options:
// zero value is not meaningful on its own for FrontierDepth (it
// degrades to "frontier at depth 0", i.e. a single task), so
// DefaultOptions should be preferred and overridden selectively.
type Options struct {
	// FrontierDepth bounds the task-generation frontier: the frontier
	// expands to depth = min(a, FrontierDepth). Recommended 8..16.
	FrontierDepth int

	// GuessTries is the number of random samples InitialBound/Guesstimate
	// draws before seeding the monitor. 0 disables seeding (bestCut
	// starts at +Inf, encoded as MaxCut).
	GuessTries int

	// GuessSeed seeds the deterministic RNG stream used by Guesstimate.
	// 0 selects a fixed default stream (see tsp/rng.go's convention).
	GuessSeed int64

	// UseReorder enables the degree-descending vertex reorder before
	// search. It never changes the reported optimum, only the search
	// order; both settings are covered by tests.
	UseReorder bool
}

// DefaultFrontierDepth is the recommended default frontier depth.
const DefaultFrontierDepth = 12

// DefaultGuessTries is a modest number of random restarts: enough to
// usually beat a trivial +Inf seed, cheap enough to never matter next
// to the search itself.
const DefaultGuessTries = 64

// DefaultOptions returns production-sensible defaults: reordering and
// guesstimate seeding enabled, frontier depth at the recommended
// default.
func DefaultOptions() Options {
	return Options{
		FrontierDepth: DefaultFrontierDepth,
		GuessTries:    DefaultGuessTries,
		GuessSeed:     0,
		UseReorder:    true,
	}
}

// MaxCut is used to represent "+Infinity" for an unseeded monitor: any
// real cut weight (sum of int64 nonnegative edge weights over at most
// n*(n-1)/2 pairs) is far smaller for any n that fits in memory.
const MaxCut = int64(1) << 62
