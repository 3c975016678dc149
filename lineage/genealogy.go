package lineage

import (
	"errors"
	"sort"
	"strings"

	"github.com/katalvlaran/resoname/corpus"
	"github.com/katalvlaran/resoname/feature"
	"github.com/katalvlaran/resoname/similarity"
)

// Defaults for Trace.
const (
	// DefaultGenealogyFloor is the similarity floor for descent — the
	// same wide net as influence detection, looser than network edges.
	DefaultGenealogyFloor = 0.65

	// DefaultGenealogyTopN caps the reported descendant list per seed.
	DefaultGenealogyTopN = 10
)

// Genealogy statuses.
const (
	// StatusTraced marks a seed found in the corpus with a known year.
	StatusTraced = "traced"

	// StatusPending marks a seed name absent from the corpus.
	StatusPending = "pending"

	// StatusUndated marks a seed present in the corpus but without a
	// formation year; chronology cannot be anchored on it.
	StatusUndated = "undated"
)

// Sentinel errors returned by Trace.
var (
	// ErrNoSeeds indicates that an empty seed list was provided.
	ErrNoSeeds = errors.New("lineage: no seed names provided")

	// ErrBadGenealogyFloor indicates a similarity floor outside [0,1].
	ErrBadGenealogyFloor = errors.New("lineage: Floor must be within [0,1]")

	// ErrBadGenealogyTopN indicates a negative descendant cap.
	ErrBadGenealogyTopN = errors.New("lineage: TopN must be non-negative")
)

// SeedDescendant is one entity attributed to a genealogy seed.
type SeedDescendant struct {
	Entity     corpus.Entity
	Score      float64 // composite similarity to the seed
	YearsAfter int     // strictly positive
}

// Genealogy is the traced line of one requested seed name.
//
// Descendants is score-descending and may be capped to TopN;
// DescendantCount always carries the exact total. For pending or undated
// seeds both are empty/zero by construction.
type Genealogy struct {
	Seed            string // seed name as requested by the caller
	Status          string // StatusTraced, StatusPending or StatusUndated
	Founder         corpus.Entity
	Descendants     []SeedDescendant
	DescendantCount int
}

// GenealogyOptions configures Trace.
//
// Floor   — minimum similarity for attribution (default 0.65).
// TopN    — reported-descendant cap; 0 reports all (default 10).
// Vectors — optional precomputed vectors keyed by entity ID.
type GenealogyOptions struct {
	Floor   float64
	TopN    int
	Vectors map[string]feature.Vector
}

// DefaultGenealogyOptions returns the documented defaults.
func DefaultGenealogyOptions() GenealogyOptions {
	return GenealogyOptions{
		Floor: DefaultGenealogyFloor,
		TopN:  DefaultGenealogyTopN,
	}
}

// Trace builds one Genealogy per requested seed name, in seed order.
//
// Seed names are matched case-insensitively against entity display names.
// Seeds absent from the corpus surface with StatusPending; seeds without a
// formation year with StatusUndated. Neither is an error — downstream
// consumers must cope with genealogies that have zero descendants.
//
// Complexity: O(s·n) similarity calls for s found seeds over n entities.
func Trace(entities []corpus.Entity, seeds []string, opts *GenealogyOptions) ([]Genealogy, error) {
	o := DefaultGenealogyOptions()
	if opts != nil {
		o = *opts
	}
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}
	if o.Floor < 0 || o.Floor > 1 {
		return nil, ErrBadGenealogyFloor
	}
	if o.TopN < 0 {
		return nil, ErrBadGenealogyTopN
	}

	vectors := o.Vectors
	if vectors == nil {
		vectors = feature.Precompute(entities)
	}

	// First case-insensitive name occurrence wins, as in corpus.ByName.
	byName := make(map[string]corpus.Entity, len(entities))
	for _, e := range entities {
		key := strings.ToLower(e.Name)
		if _, seen := byName[key]; !seen {
			byName[key] = e
		}
	}

	out := make([]Genealogy, 0, len(seeds))
	for _, seed := range seeds {
		founder, ok := byName[strings.ToLower(seed)]
		if !ok {
			out = append(out, Genealogy{Seed: seed, Status: StatusPending})
			continue
		}
		if !founder.HasYear {
			out = append(out, Genealogy{Seed: seed, Status: StatusUndated, Founder: founder})
			continue
		}

		var descendants []SeedDescendant
		for _, cand := range entities {
			if !cand.HasYear || cand.Year <= founder.Year || cand.ID == founder.ID {
				continue
			}
			s := similarity.Score(founder, cand, vectors[founder.ID], vectors[cand.ID])
			if s < o.Floor {
				continue
			}
			descendants = append(descendants, SeedDescendant{
				Entity:     cand,
				Score:      s,
				YearsAfter: cand.Year - founder.Year,
			})
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
		out = append(out, Genealogy{
			Seed:            seed,
			Status:          StatusTraced,
			Founder:         founder,
			Descendants:     descendants,
			DescendantCount: total,
		})
	}
	return out, nil
}
