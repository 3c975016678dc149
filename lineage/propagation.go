package lineage

import (
	"errors"
	"math"
	"sort"

	"github.com/katalvlaran/resoname/corpus"
	"github.com/katalvlaran/resoname/feature"
)

// Defaults for Analyze.
const (
	// MinEarlyMembers is the smallest early group an archetype needs
	// before its profile is worth matching against.
	MinEarlyMembers = 3

	// DefaultTolerance is the normalized-distance bound for profile
	// membership.
	DefaultTolerance = 0.3
)

// Sentinel errors returned by Analyze.
var (
	// ErrNilEarly indicates a missing early-entity selector.
	ErrNilEarly = errors.New("lineage: Early selector is nil")

	// ErrNilLater indicates a missing later-entity selector.
	ErrNilLater = errors.New("lineage: Later selector is nil")

	// ErrBadTolerance indicates a non-positive membership tolerance.
	ErrBadTolerance = errors.New("lineage: Tolerance must be positive")
)

// Propagation reports one archetype whose early, successful profile was
// matched by later entities.
type Propagation struct {
	Archetype        string          // archetype label
	RuleVersion      string          // rule-set version the label came from
	Profile          feature.Vector  // mean feature profile of the early members
	EarlyMembers     []corpus.Entity // early entities forming the profile
	EarlyMeanSuccess float64
	Matches          []corpus.Entity // later entities within tolerance of the profile
	MatchMeanSuccess float64
	SuccessDelta     float64 // MatchMeanSuccess − EarlyMeanSuccess
	SuccessRatio     float64 // MatchMeanSuccess / EarlyMeanSuccess (0 if early is 0)
}

// PropagationOptions configures Analyze.
//
// Early     — required selector for the early, successful population
//             (caller applies its own time/success policy).
// Later     — required selector for the candidate imitator population.
// Tolerance — normalized-distance bound for membership (default 0.3).
// Rules     — archetype rules; zero value means feature.RuleSetV1.
type PropagationOptions struct {
	Early     func(corpus.Entity) bool
	Later     func(corpus.Entity) bool
	Tolerance float64
	Rules     feature.RuleSet
}

// DefaultPropagationOptions returns the documented defaults. Early and
// Later stay nil and must be supplied by the caller.
func DefaultPropagationOptions() PropagationOptions {
	return PropagationOptions{
		Tolerance: DefaultTolerance,
		Rules:     feature.RuleSetV1(),
	}
}

// Analyze measures whether early successful archetypes propagated: it
// groups the early population by archetype, derives each group's mean
// feature profile, and matches the later population against that profile
// by normalized distance.
//
// Only archetypes with at least MinEarlyMembers early members and at least
// one later match are reported, ordered by archetype label. "Did imitation
// pay off" is answered by the success delta and ratio.
//
// Complexity: O(n) classification plus O(archetypes·later) matching.
func Analyze(entities []corpus.Entity, opts *PropagationOptions) ([]Propagation, error) {
	o := DefaultPropagationOptions()
	if opts != nil {
		o = *opts
		if len(o.Rules.Rules) == 0 {
			o.Rules = feature.RuleSetV1()
		}
	}
	if o.Early == nil {
		return nil, ErrNilEarly
	}
	if o.Later == nil {
		return nil, ErrNilLater
	}
	if o.Tolerance <= 0 {
		return nil, ErrBadTolerance
	}

	var early, later []corpus.Entity
	for _, e := range entities {
		if o.Early(e) {
			early = append(early, e)
		} else if o.Later(e) {
			later = append(later, e)
		}
	}

	buckets := o.Rules.ClassifyAll(early)
	labels := make([]string, 0, len(buckets))
	for label := range buckets {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	reports := make([]Propagation, 0, len(labels))
	for _, label := range labels {
		members := buckets[label]
		if len(members) < MinEarlyMembers {
			continue
		}

		profile := meanProfile(members)
		var matches []corpus.Entity
		for _, cand := range later {
			if withinProfile(feature.Extract(cand), profile, o.Tolerance) {
				matches = append(matches, cand)
			}
		}
		if len(matches) == 0 {
			continue
		}

		p := Propagation{
			Archetype:        label,
			RuleVersion:      o.Rules.Version,
			Profile:          profile,
			EarlyMembers:     members,
			EarlyMeanSuccess: meanSuccess(members),
			Matches:          matches,
			MatchMeanSuccess: meanSuccess(matches),
		}
		p.SuccessDelta = p.MatchMeanSuccess - p.EarlyMeanSuccess
		if p.EarlyMeanSuccess != 0 {
			p.SuccessRatio = p.MatchMeanSuccess / p.EarlyMeanSuccess
		}
		reports = append(reports, p)
	}
	return reports, nil
}

// meanProfile averages the feature vectors of a non-empty member list.
func meanProfile(members []corpus.Entity) feature.Vector {
	var sum feature.Vector
	for _, m := range members {
		v := feature.Extract(m)
		for i := range sum {
			sum[i] += v[i]
		}
	}
	for i := range sum {
		sum[i] /= float64(len(members))
	}
	return sum
}

// withinProfile reports whether v lies within tolerance of the centroid:
// the average of |v[i]−c[i]|/c[i] over the centroid's non-zero fields.
// A centroid with no non-zero fields matches nothing.
func withinProfile(v, centroid feature.Vector, tolerance float64) bool {
	var total float64
	var defined int
	for i := range centroid {
		if centroid[i] == 0 {
			continue
		}
		total += math.Abs(v[i]-centroid[i]) / centroid[i]
		defined++
	}
	if defined == 0 {
		return false
	}
	return total/float64(defined) <= tolerance
}

// meanSuccess averages the success score of a non-empty entity list.
func meanSuccess(members []corpus.Entity) float64 {
	var sum float64
	for _, m := range members {
		sum += m.Success
	}
	return sum / float64(len(members))
}
