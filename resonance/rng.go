package resonance

import (
	"hash/fnv"
	"math/rand"
)

// defaultSeed is used when callers pass Seed==0, keeping default runs
// reproducible without hidden time-based sources.
const defaultSeed int64 = 1

// cohortRNG returns the deterministic sampling stream for one cohort.
//
// The stream is derived from the base seed and the cohort key, so each
// cohort samples independently and the overall result does not depend on
// the order cohorts are processed in. math/rand.Rand is not goroutine-safe;
// every cohort owns its stream exclusively.
func cohortRNG(seed int64, cohort string) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(cohort))
	return rand.New(rand.NewSource(mixSeed(seed, h.Sum64())))
}

// mixSeed applies a SplitMix64-style finalizer to decorrelate the derived
// stream from both inputs; nearby seeds or similar cohort keys still yield
// well-separated streams.
func mixSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// sampleIndexes returns k distinct indexes from 0..n-1, drawn without
// replacement from rng in deterministic order. If k ≥ n, all indexes are
// returned.
func sampleIndexes(n, k int, rng *rand.Rand) []int {
	if k >= n {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	return rng.Perm(n)[:k]
}
