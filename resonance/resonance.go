package resonance

import (
	"errors"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/resoname/corpus"
	"github.com/katalvlaran/resoname/feature"
	"github.com/katalvlaran/resoname/similarity"
)

// Defaults for Test.
const (
	// DefaultMinCohortSize is the smallest cohort that gets tested.
	DefaultMinCohortSize = 10

	// DefaultBaselineSample bounds the cross-cohort sample per cohort.
	DefaultBaselineSample = 50

	// MinPairs is the exclusive lower bound on both distributions: a
	// cohort with ≤ MinPairs within or baseline pairs is skipped.
	MinPairs = 10

	// Alpha is the significance level for the reported flag.
	Alpha = 0.05
)

// Sentinel errors returned by Test.
var (
	// ErrBadMinCohortSize indicates a minimum cohort size below 2.
	ErrBadMinCohortSize = errors.New("resonance: MinCohortSize must be at least 2")

	// ErrBadBaselineSample indicates a non-positive baseline sample bound.
	ErrBadBaselineSample = errors.New("resonance: BaselineSample must be positive")
)

// Result is the outcome for one tested cohort. Skipped cohorts produce no
// Result at all; absence is distinguishable from insignificance.
type Result struct {
	Cohort        string  // cohort key
	Size          int     // cohort member count
	WithinPairs   int     // exhaustive within-cohort pair count
	BaselinePairs int     // sampled cross-cohort pair count
	WithinMean    float64 // mean within-cohort similarity
	BaselineMean  float64 // mean cross-cohort baseline similarity
	MeanDiff      float64 // WithinMean − BaselineMean
	PctDiff       float64 // MeanDiff as % of BaselineMean (0 if baseline 0)
	TStat         float64 // Welch two-sample t statistic
	PValue        float64 // two-sided p-value
	Significant   bool    // PValue < Alpha
}

// Options configures Test.
//
// CohortFn       — cohort key derivation; nil means corpus.DecadeCohort.
// MinCohortSize  — smallest testable cohort (default 10).
// BaselineSample — cross-cohort sample bound per cohort (default 50).
// Seed           — sampling seed; 0 means a fixed default stream.
// Vectors        — optional precomputed vectors keyed by entity ID.
type Options struct {
	CohortFn       corpus.CohortFn
	MinCohortSize  int
	BaselineSample int
	Seed           int64
	Vectors        map[string]feature.Vector
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		MinCohortSize:  DefaultMinCohortSize,
		BaselineSample: DefaultBaselineSample,
	}
}

// Test compares within-cohort similarity against a sampled cross-cohort
// baseline for every sufficiently large cohort, via Welch's t-test.
//
// Results are ordered by cohort key ascending. Cohorts below the minimum
// size, or with ≤ MinPairs pairs on either side, are skipped entirely.
//
// Complexity: O(Σ k²) within-pair work plus O(Σ k·BaselineSample) baseline
// work over cohort sizes k.
func Test(entities []corpus.Entity, opts *Options) ([]Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.CohortFn == nil {
		o.CohortFn = corpus.DecadeCohort
	}
	if o.MinCohortSize < 2 {
		return nil, ErrBadMinCohortSize
	}
	if o.BaselineSample <= 0 {
		return nil, ErrBadBaselineSample
	}

	vectors := o.Vectors
	if vectors == nil {
		vectors = feature.Precompute(entities)
	}

	groups := groupByCohort(entities, o.CohortFn)
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	results := make([]Result, 0, len(keys))
	for _, key := range keys {
		members := groups[key]
		if len(members) < o.MinCohortSize {
			continue
		}

		within := withinSimilarities(members, vectors)
		if len(within) <= MinPairs {
			continue
		}

		others := othersOf(groups, key)
		baseline := baselineSimilarities(members, others, vectors, o.BaselineSample, cohortRNG(o.Seed, key))
		if len(baseline) <= MinPairs {
			continue
		}

		results = append(results, welch(key, len(members), within, baseline))
	}
	return results, nil
}

// groupByCohort buckets entities by cohort key, skipping entities outside
// every cohort.
func groupByCohort(entities []corpus.Entity, fn corpus.CohortFn) map[string][]corpus.Entity {
	groups := make(map[string][]corpus.Entity)
	for _, e := range entities {
		key, ok := fn(e)
		if !ok {
			continue
		}
		groups[key] = append(groups[key], e)
	}
	return groups
}

// othersOf gathers every entity outside cohort key, preserving the stable
// per-cohort order so sampling stays deterministic.
func othersOf(groups map[string][]corpus.Entity, key string) []corpus.Entity {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		if k != key {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var out []corpus.Entity
	for _, k := range keys {
		out = append(out, groups[k]...)
	}
	return out
}

// withinSimilarities computes the exhaustive i>j similarity list of one
// cohort.
func withinSimilarities(members []corpus.Entity, vectors map[string]feature.Vector) []float64 {
	sims := make([]float64, 0, len(members)*(len(members)-1)/2)
	for i := 1; i < len(members); i++ {
		for j := 0; j < i; j++ {
			sims = append(sims, similarity.Score(
				members[i], members[j],
				vectors[members[i].ID], vectors[members[j].ID],
			))
		}
	}
	return sims
}

// baselineSimilarities scores every cohort member against a bounded random
// sample of outside entities.
func baselineSimilarities(
	members, others []corpus.Entity,
	vectors map[string]feature.Vector,
	sampleSize int,
	rng *rand.Rand,
) []float64 {
	picked := sampleIndexes(len(others), sampleSize, rng)
	sims := make([]float64, 0, len(members)*len(picked))
	for _, m := range members {
		for _, idx := range picked {
			o := others[idx]
			sims = append(sims, similarity.Score(m, o, vectors[m.ID], vectors[o.ID]))
		}
	}
	return sims
}

// welch runs Welch's two-sample t-test on the two similarity lists and
// assembles the cohort Result.
func welch(cohort string, size int, within, baseline []float64) Result {
	r := Result{
		Cohort:        cohort,
		Size:          size,
		WithinPairs:   len(within),
		BaselinePairs: len(baseline),
		WithinMean:    stat.Mean(within, nil),
		BaselineMean:  stat.Mean(baseline, nil),
	}
	r.MeanDiff = r.WithinMean - r.BaselineMean
	if r.BaselineMean != 0 {
		r.PctDiff = 100 * r.MeanDiff / r.BaselineMean
	}

	n1 := float64(len(within))
	n2 := float64(len(baseline))
	v1 := stat.Variance(within, nil)
	v2 := stat.Variance(baseline, nil)

	se2 := v1/n1 + v2/n2
	if se2 == 0 {
		// Both samples are constant: no evidence of any difference.
		r.TStat = 0
		r.PValue = 1
		return r
	}
	r.TStat = r.MeanDiff / math.Sqrt(se2)

	// Welch–Satterthwaite degrees of freedom.
	df := se2 * se2 / ((v1*v1)/(n1*n1*(n1-1)) + (v2*v2)/(n2*n2*(n2-1)))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	r.PValue = 2 * dist.CDF(-math.Abs(r.TStat))
	r.Significant = r.PValue < Alpha
	return r
}
