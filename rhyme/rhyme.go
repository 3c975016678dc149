package rhyme

import (
	"errors"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/resoname/corpus"
	"github.com/katalvlaran/resoname/feature"
	"github.com/katalvlaran/resoname/similarity"
)

// Defaults for Build.
const (
	// DefaultSampleCap bounds each cohort's member list before the
	// cross product (documented approximation, see Matrix.Truncated).
	DefaultSampleCap = 100

	// DefaultMinGapYears is the minimum anchor-year gap for a rhyme;
	// closer cohorts are adjacency-excluded.
	DefaultMinGapYears = 20

	// DefaultFloor is the minimum mean similarity for a rhyme flag.
	DefaultFloor = 0.35
)

// Sentinel errors returned by Build.
var (
	// ErrBadSampleCap indicates a non-positive per-cohort sample cap.
	ErrBadSampleCap = errors.New("rhyme: SampleCap must be positive")

	// ErrBadMinGap indicates a non-positive adjacency gap.
	ErrBadMinGap = errors.New("rhyme: MinGapYears must be positive")

	// ErrBadFloor indicates a rhyme floor outside [0,1].
	ErrBadFloor = errors.New("rhyme: Floor must be within [0,1]")
)

// Pattern is one flagged pair of non-adjacent, similar-sounding cohorts.
type Pattern struct {
	CohortA, CohortB string  // cohort keys, CohortA < CohortB
	GapYears         int     // anchor-year distance, ≥ MinGapYears
	MeanSimilarity   float64 // ≥ Floor
}

// Matrix is the cross-cohort mean-similarity matrix of one corpus.
//
// Values is symmetric off the diagonal and has no diagonal entries.
// Truncated lists the cohorts whose member lists were capped to SampleCap
// before comparison — consumers of the matrix must disclose that the
// affected means are sampled approximations, not exhaustive.
type Matrix struct {
	Cohorts   []string                      // sorted cohort keys
	Values    map[string]map[string]float64 // Values[a][b] == Values[b][a]
	Anchors   map[string]int                // earliest member year per cohort
	SampleCap int                           // cap applied during the build
	Truncated []string                      // cohorts larger than SampleCap
	Patterns  []Pattern                     // flagged rhymes, sorted by pair
}

// At returns the mean similarity between two cohorts. The boolean is false
// on the diagonal and for unknown cohorts.
func (m *Matrix) At(a, b string) (float64, bool) {
	row, ok := m.Values[a]
	if !ok {
		return 0, false
	}
	v, ok := row[b]
	return v, ok
}

// Options configures Build.
//
// CohortFn    — cohort key derivation; nil means corpus.DecadeCohort.
// SampleCap   — per-cohort member cap (default 100).
// MinGapYears — adjacency-exclusion distance (default 20).
// Floor       — rhyme-flag similarity floor (default 0.35).
// Workers     — cohort-pair goroutines; 0 means GOMAXPROCS.
// Vectors     — optional precomputed vectors keyed by entity ID.
type Options struct {
	CohortFn    corpus.CohortFn
	SampleCap   int
	MinGapYears int
	Floor       float64
	Workers     int
	Vectors     map[string]feature.Vector
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		SampleCap:   DefaultSampleCap,
		MinGapYears: DefaultMinGapYears,
		Floor:       DefaultFloor,
	}
}

// Build computes the cross-cohort similarity matrix and its rhyme flags.
//
// Each unordered cohort pair is scored independently (they share nothing
// mutable), so pairs are fanned out over a bounded worker pool. Cohort
// anchors are the earliest member year; the gap between two cohorts is the
// distance between their anchors.
//
// Complexity: O(p·c²) similarity calls for p cohort pairs capped at c
// members each.
func Build(entities []corpus.Entity, opts *Options) (*Matrix, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.CohortFn == nil {
		o.CohortFn = corpus.DecadeCohort
	}
	if o.SampleCap <= 0 {
		return nil, ErrBadSampleCap
	}
	if o.MinGapYears <= 0 {
		return nil, ErrBadMinGap
	}
	if o.Floor < 0 || o.Floor > 1 {
		return nil, ErrBadFloor
	}

	vectors := o.Vectors
	if vectors == nil {
		vectors = feature.Precompute(entities)
	}

	groups := make(map[string][]corpus.Entity)
	for _, e := range entities {
		key, ok := o.CohortFn(e)
		if !ok {
			continue
		}
		groups[key] = append(groups[key], e)
	}

	m := &Matrix{
		Values:    make(map[string]map[string]float64, len(groups)),
		Anchors:   make(map[string]int, len(groups)),
		SampleCap: o.SampleCap,
	}
	for key, members := range groups {
		m.Cohorts = append(m.Cohorts, key)
		m.Values[key] = make(map[string]float64, len(groups)-1)
		m.Anchors[key] = anchorYear(members)
		if len(members) > o.SampleCap {
			m.Truncated = append(m.Truncated, key)
			groups[key] = members[:o.SampleCap]
		}
	}
	sort.Strings(m.Cohorts)
	sort.Strings(m.Truncated)
	if len(m.Cohorts) < 2 {
		return m, nil
	}

	type pair struct{ a, b string }
	var pairs []pair
	for i := 1; i < len(m.Cohorts); i++ {
		for j := 0; j < i; j++ {
			pairs = append(pairs, pair{a: m.Cohorts[j], b: m.Cohorts[i]})
		}
	}

	workers := o.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(workers)
	for _, p := range pairs {
		p := p
		g.Go(func() error {
			mean := crossMean(groups[p.a], groups[p.b], vectors)
			mu.Lock()
			m.Values[p.a][p.b] = mean
			m.Values[p.b][p.a] = mean
			mu.Unlock()
			return nil
		})
	}
	// Pair workers never fail; Wait only synchronizes the writes.
	_ = g.Wait()

	for _, p := range pairs {
		gap := m.Anchors[p.a] - m.Anchors[p.b]
		if gap < 0 {
			gap = -gap
		}
		if gap < o.MinGapYears {
			continue
		}
		if mean := m.Values[p.a][p.b]; mean >= o.Floor {
			m.Patterns = append(m.Patterns, Pattern{
				CohortA:        p.a,
				CohortB:        p.b,
				GapYears:       gap,
				MeanSimilarity: mean,
			})
		}
	}
	sort.Slice(m.Patterns, func(i, j int) bool {
		if m.Patterns[i].CohortA != m.Patterns[j].CohortA {
			return m.Patterns[i].CohortA < m.Patterns[j].CohortA
		}
		return m.Patterns[i].CohortB < m.Patterns[j].CohortB
	})
	return m, nil
}

// anchorYear is the earliest formation year among members; cohorts exist
// only for entities that have one (cohort functions skip undated records),
// but a fully undated cohort from a custom CohortFn anchors at 0.
func anchorYear(members []corpus.Entity) int {
	anchor := 0
	seen := false
	for _, e := range members {
		if !e.HasYear {
			continue
		}
		if !seen || e.Year < anchor {
			anchor = e.Year
			seen = true
		}
	}
	return anchor
}

// crossMean is the mean similarity over the full a×b cross product.
func crossMean(as, bs []corpus.Entity, vectors map[string]feature.Vector) float64 {
	sims := make([]float64, 0, len(as)*len(bs))
	for _, a := range as {
		for _, b := range bs {
			sims = append(sims, similarity.Score(a, b, vectors[a.ID], vectors[b.ID]))
		}
	}
	if len(sims) == 0 {
		return 0
	}
	return stat.Mean(sims, nil)
}
