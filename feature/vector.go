package feature

import "github.com/katalvlaran/resoname/corpus"

// Dim is the number of fields in a feature Vector.
const Dim = 7

// Field indices of a Vector. The order is fixed and load-bearing: cosine
// similarity, archetype centroids and propagation profiles all assume it.
const (
	FieldSyllables    = 0 // syllable count
	FieldLength       = 1 // character length
	FieldHarshness    = 2 // harshness score, 0..100
	FieldSoftness     = 3 // softness score, 0..100
	FieldVowelRatio   = 4 // vowel ratio ×100, scaled to match score magnitudes
	FieldFantasy      = 5 // fantasy/abstraction score, 0..100
	FieldMemorability = 6 // memorability score, 0..100
)

// vowelRatioScale brings the 0..1 vowel ratio into the 0..100 range of the
// other fields before any vector comparison.
const vowelRatioScale = 100.0

// Vector is the fixed-length numeric profile of one entity.
// It is a value type; copies are cheap and never shared mutably.
type Vector [Dim]float64

// Extract maps an entity to its feature Vector.
//
// Pure function of the entity's stored attributes. Attributes the store
// never provided arrive as Go zero values and stay 0 in the vector — a
// documented bias (partially-described entities gravitate toward each
// other), never an error.
//
// Complexity: O(1).
func Extract(e corpus.Entity) Vector {
	return Vector{
		FieldSyllables:    float64(e.Syllables),
		FieldLength:       float64(e.Length),
		FieldHarshness:    e.Harshness,
		FieldSoftness:     e.Softness,
		FieldVowelRatio:   e.VowelRatio * vowelRatioScale,
		FieldFantasy:      e.Fantasy,
		FieldMemorability: e.Memorability,
	}
}

// IsZero reports whether every field of v is exactly 0.
// Zero vectors contribute 0 to cosine similarity rather than NaN.
func (v Vector) IsZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// Precompute extracts the Vector of every entity once, keyed by entity ID.
//
// This is the per-run vector table every downstream component receives by
// reference; pairwise loops must look vectors up here instead of calling
// Extract inside O(n²) iterations.
//
// Complexity: O(n) time and space.
func Precompute(entities []corpus.Entity) map[string]Vector {
	vectors := make(map[string]Vector, len(entities))
	for _, e := range entities {
		vectors[e.ID] = Extract(e)
	}
	return vectors
}
