package network

import (
	"errors"

	"github.com/katalvlaran/resoname/corpus"
	"github.com/katalvlaran/resoname/feature"
)

// Defaults for Build. DefaultThreshold is deliberately stricter than the
// influence/genealogy floors elsewhere in the engine: graph-edge membership
// is a stronger claim than "plausibly descended from".
const (
	// DefaultThreshold is the minimum composite score for an edge.
	DefaultThreshold = 0.7

	// DefaultTopK bounds the summary view (full edge set stays available).
	DefaultTopK = 50
)

// Sentinel errors returned by Build.
var (
	// ErrBadThreshold indicates a similarity threshold outside [0,1].
	ErrBadThreshold = errors.New("network: threshold must be within [0,1]")

	// ErrBadTopK indicates a negative summary cap.
	ErrBadTopK = errors.New("network: TopK must be non-negative")

	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = errors.New("network: Workers must be non-negative")
)

// Edge is one retained similarity pair. A and B are entity IDs with A < B,
// so an unordered pair has exactly one representation.
type Edge struct {
	A, B         string  // entity IDs, A < B
	NameA, NameB string  // display names, for reporting
	Score        float64 // composite similarity, ≥ threshold
	YearGap      int     // |yearA − yearB|, valid only if HasYearGap
	HasYearGap   bool    // both endpoints carry a formation year
	SameCohort   bool    // endpoints share a cohort key
	SameCategory bool    // endpoints share a non-empty category tag
}

// Stats aggregates one build.
type Stats struct {
	Entities        int     // entities considered
	PairsEvaluated  int     // n(n−1)/2 similarity calls performed
	EdgeCount       int     // pairs retained at or above the threshold
	MeanScore       float64 // mean score of retained edges (0 when none)
	StdDevScore     float64 // sample std dev of retained edge scores
	SameCohortPct   float64 // % of edges whose endpoints share a cohort
	SameCategoryPct float64 // % of edges whose endpoints share a category
}

// Result is the full output of one build.
type Result struct {
	Edges    []Edge // complete edge set, score-descending
	TopEdges []Edge // leading min(TopK, len(Edges)) edges of Edges
	Stats    Stats
}

// Options configures Build.
//
// Threshold — minimum composite score for edge membership (default 0.7).
// TopK      — size of the summary view; 0 disables it (default 50).
// Workers   — pair-scoring goroutines; 0 means GOMAXPROCS (default 0).
// CohortFn  — cohort keys for the SameCohort edge flag; nil means
//             corpus.DecadeCohort.
// Vectors   — precomputed feature vectors keyed by entity ID; nil makes
//             Build precompute its own table once up front.
type Options struct {
	Threshold float64
	TopK      int
	Workers   int
	CohortFn  corpus.CohortFn
	Vectors   map[string]feature.Vector
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
		TopK:      DefaultTopK,
	}
}

// validate normalizes opts, applying defaults for nil/zero fields.
func (o *Options) validate() error {
	if o.Threshold < 0 || o.Threshold > 1 {
		return ErrBadThreshold
	}
	if o.TopK < 0 {
		return ErrBadTopK
	}
	if o.Workers < 0 {
		return ErrBadWorkers
	}
	if o.CohortFn == nil {
		o.CohortFn = corpus.DecadeCohort
	}
	return nil
}
