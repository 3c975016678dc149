package corpus

import "errors"

// Sentinel errors shared by corpus consumers.
var (
	// ErrEmptyCorpus indicates that an operation requiring at least one
	// dated entity was invoked on a snapshot holding none.
	ErrEmptyCorpus = errors.New("corpus: corpus is empty")

	// ErrDuplicateID indicates that two entities in the input slice carry
	// the same identifier; identifiers are the engine's only join key.
	ErrDuplicateID = errors.New("corpus: duplicate entity identifier")
)

// Entity is one immutable record of the analyzed corpus.
//
// All numeric attributes are precomputed by the external store; missing
// attributes arrive as zero values and are treated as such downstream
// (documented bias, never an error). The engine never mutates an Entity.
//
// Year is meaningful only when HasYear is true. Entities without a year
// cannot take part in temporal analyses (influence, genealogy, cohorts)
// but still participate in pure pairwise similarity.
type Entity struct {
	ID       string  // store-assigned identifier, unique within a run
	Name     string  // display name, compared case-insensitively
	Year     int     // formation year, valid only if HasYear
	HasYear  bool    // whether Year carries a value
	Category string  // domain tag, e.g. genre; may be empty
	Success  float64 // domain-defined success score

	// Linguistic attributes (each defaults to 0 when absent upstream).
	Syllables    int     // syllable count of Name
	Length       int     // character length of Name
	Memorability float64 // 0..100
	Harshness    float64 // 0..100
	Softness     float64 // 0..100
	Fantasy      float64 // 0..100 fantasy/abstraction score
	VowelRatio   float64 // 0..1 fraction of vowels in Name
}

// CohortFn maps an entity to its cohort key. The boolean reports whether
// the entity belongs to any cohort at all; entities outside every cohort
// are skipped by cohort-level analyses, not defaulted.
type CohortFn func(Entity) (string, bool)
