package influence

import (
	"errors"
	"sort"

	"github.com/katalvlaran/resoname/corpus"
	"github.com/katalvlaran/resoname/feature"
	"github.com/katalvlaran/resoname/similarity"
)

// Defaults for Detect.
const (
	// DefaultWindowYears bounds how far forward an influencer reaches.
	DefaultWindowYears = 25

	// DefaultFloor is the similarity floor for descendant membership,
	// looser than network.DefaultThreshold.
	DefaultFloor = 0.65

	// DefaultTopN caps the reported descendant list per influencer.
	DefaultTopN = 10
)

// Sentinel errors returned by Detect.
var (
	// ErrNilCriteria indicates that no influencer criteria was provided.
	ErrNilCriteria = errors.New("influence: criteria function is nil")

	// ErrBadWindow indicates a non-positive year window.
	ErrBadWindow = errors.New("influence: WindowYears must be positive")

	// ErrBadFloor indicates a similarity floor outside [0,1].
	ErrBadFloor = errors.New("influence: Floor must be within [0,1]")

	// ErrBadTopN indicates a negative descendant cap.
	ErrBadTopN = errors.New("influence: TopN must be non-negative")
)

// Descendant is one later entity attributed to an influencer.
type Descendant struct {
	Entity     corpus.Entity
	Score      float64 // composite similarity to the influencer
	YearsAfter int     // strictly positive, ≤ WindowYears
}

// Pattern is one influencer with its attributed descendants.
//
// Descendants is sorted by Score descending and may be capped to TopN;
// DescendantCount always carries the exact uncapped total.
type Pattern struct {
	Influencer      corpus.Entity
	Descendants     []Descendant
	DescendantCount int
}

// Options configures Detect.
//
// Criteria     — required influencer selector (caller-supplied policy).
// WindowYears  — forward reach of an influencer (default 25).
// Floor        — minimum similarity for attribution (default 0.65).
// TopN         — reported-descendant cap; 0 reports all (default 10).
// Vectors      — optional precomputed vectors keyed by entity ID.
type Options struct {
	Criteria    func(corpus.Entity) bool
	WindowYears int
	Floor       float64
	TopN        int
	Vectors     map[string]feature.Vector
}

// DefaultOptions returns the documented defaults. Criteria stays nil and
// must be supplied by the caller.
func DefaultOptions() Options {
	return Options{
		WindowYears: DefaultWindowYears,
		Floor:       DefaultFloor,
		TopN:        DefaultTopN,
	}
}

// Detect finds influence patterns in the corpus, ranked by descendant
// count descending (influencer ID ascending on ties).
//
// Only entities with a formation year participate. Directionality is a
// hard invariant: a descendant's year is strictly greater than its
// influencer's and at most WindowYears later.
//
// Complexity: O(k·n) similarity calls for k influencers over n dated
// entities.
func Detect(entities []corpus.Entity, opts *Options) ([]Pattern, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Criteria == nil {
		return nil, ErrNilCriteria
	}
	if o.WindowYears <= 0 {
		return nil, ErrBadWindow
	}
	if o.Floor < 0 || o.Floor > 1 {
		return nil, ErrBadFloor
	}
	if o.TopN < 0 {
		return nil, ErrBadTopN
	}

	vectors := o.Vectors
	if vectors == nil {
		vectors = feature.Precompute(entities)
	}

	dated := make([]corpus.Entity, 0, len(entities))
	for _, e := range entities {
		if e.HasYear {
			dated = append(dated, e)
		}
	}

	patterns := make([]Pattern, 0)
	for _, inf := range dated {
		if !o.Criteria(inf) {
			continue
		}

		var descendants []Descendant
		for _, cand := range dated {
			gap := cand.Year - inf.Year
			if gap <= 0 || gap > o.WindowYears {
				continue
			}
			s := similarity.Score(inf, cand, vectors[inf.ID], vectors[cand.ID])
			if s < o.Floor {
				continue
			}
			descendants = append(descendants, Descendant{
				Entity:     cand,
				Score:      s,
				YearsAfter: gap,
			})
		}
		if len(descendants) == 0 {
			continue
		}

		sort.Slice(descendants, func(i, j int) bool {
			if descendants[i].Score != descendants[j].Score {
				return descendants[i].Score > descendants[j].Score
			}
			return descendants[i].Entity.ID < descendants[j].Entity.ID
		})
		total := len(descendants)
		if o.TopN > 0 && len(descendants) > o.TopN {
			descendants = descendants[:o.TopN]
		}
		patterns = append(patterns, Pattern{
			Influencer:      inf,
			Descendants:     descendants,
			DescendantCount: total,
		})
	}

	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].DescendantCount != patterns[j].DescendantCount {
			return patterns[i].DescendantCount > patterns[j].DescendantCount
		}
		return patterns[i].Influencer.ID < patterns[j].Influencer.ID
	})
	return patterns, nil
}
