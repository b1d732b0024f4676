// guess.go implements a cheap random sampler that seeds the best-cut
// monitor before the exhaustive search starts, so early pruning has
// something to work against.
//
// RNG handling follows lvlath/tsp/rng.go's convention exactly:
// math/rand.Rand is not goroutine-safe, so every independent sampling
// stream (here: every try) gets its own *rand.Rand derived via a
// SplitMix64 mix from a single seed, never one shared *rand.Rand
// mutated concurrently.
package mincut

import (
	"math/rand"

	"github.com/cichrrad/ni-pdp-sp/graph"
)

// defaultGuessSeed is the fixed "zero" seed used when callers pass
// seed == 0, matching tsp.defaultRNGSeed's role.
const defaultGuessSeed int64 = 1

// deriveSeed mixes a parent seed and a stream id into a new 64-bit
// seed via the canonical SplitMix64 finalizer (same constants as
// lvlath/tsp/rng.go's deriveSeed).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// rngForTry returns an independent deterministic RNG for sampling try
// number `try`, derived from seed so that every try (and, in a
// threaded caller, every goroutine) can draw from its own stream
// without any shared, lock-protected *rand.Rand.
func rngForTry(seed int64, try int) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultGuessSeed
	}
	return rand.New(rand.NewSource(deriveSeed(s, uint64(try))))
}

// sampleSubset draws a uniform random size-a subset of [0,n) via a
// Fisher-Yates prefix shuffle and returns the resulting Labels (true
// for the first a shuffled indices).
func sampleSubset(n, a int, rng *rand.Rand) Labels {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	labels := make(Labels, n)
	for _, v := range perm[:a] {
		labels[v] = true
	}
	return labels
}

// Guesstimate produces a feasible assignment (exactly a labels equal
// to X) by repeated random sampling, returning the best of numTries
// draws. It always succeeds for 0 < a < n.
//
// Complexity: O(numTries * n^2).
func Guesstimate(g *graph.Graph, a int, numTries int, seed int64) (Result, error) {
	n := g.N()
	if a <= 0 || a >= n {
		return Result{}, ErrInvalidSubsetSize
	}
	if numTries < 1 {
		return Result{}, ErrInvalidTries
	}

	best := Result{BestCut: MaxCut}
	for try := 0; try < numTries; try++ {
		rng := rngForTry(seed, try)
		labels := sampleSubset(n, a, rng)
		cut := g.CutWeight(labels)
		if cut < best.BestCut {
			best.BestCut = cut
			best.Witness = labels
		}
	}
	return best, nil
}
