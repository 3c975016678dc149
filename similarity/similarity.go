package similarity

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/viterin/vek"

	"github.com/katalvlaran/resoname/corpus"
	"github.com/katalvlaran/resoname/feature"
)

// Component weights of the composite score. They sum to 1, so the final
// clamp only guards against floating-point spill.
const (
	WeightLexical    = 0.4
	WeightCosine     = 0.4
	WeightStructural = 0.2
)

// Structural-term shape constants: syllable difference counts fully,
// character-length difference is damped by lengthDamping, and the sum is
// normalized by structuralSpan before inversion.
const (
	lengthDamping  = 10.0
	structuralSpan = 5.0
)

// Score computes the composite similarity of two entities using their
// precomputed feature vectors.
//
// Pure, deterministic and order-independent; see the package documentation
// for the guaranteed properties. Callers running pairwise sweeps must pass
// vectors from feature.Precompute rather than re-extracting per pair.
func Score(a, b corpus.Entity, va, vb feature.Vector) float64 {
	s := WeightLexical*Lexical(a.Name, b.Name) +
		WeightCosine*Cosine(va, vb) +
		WeightStructural*Structural(a, b)
	return clamp01(s)
}

// ScoreEntities is Score with on-the-fly vector extraction, for one-off
// comparisons outside any precomputed run.
func ScoreEntities(a, b corpus.Entity) float64 {
	return Score(a, b, feature.Extract(a), feature.Extract(b))
}

// Lexical returns the normalized edit-distance similarity of two names:
// 1 − dist(lower(a), lower(b)) / max(|a|, |b|), in runes.
// Two empty names are defined as 0 similarity, not a division error.
func Lexical(nameA, nameB string) float64 {
	la := strings.ToLower(nameA)
	lb := strings.ToLower(nameB)
	maxLen := utf8.RuneCountInString(la)
	if n := utf8.RuneCountInString(lb); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(la, lb)
	return 1 - float64(dist)/float64(maxLen)
}

// Cosine returns the cosine similarity of two feature vectors, defined as
// 0 when either vector has zero norm. Equal non-zero vectors are exactly 1
// (self-similarity must not drift by an ulp through sqrt round-trips).
func Cosine(va, vb feature.Vector) float64 {
	if va.IsZero() || vb.IsZero() {
		return 0
	}
	if va == vb {
		return 1
	}
	normA := math.Sqrt(vek.Dot(va[:], va[:]))
	normB := math.Sqrt(vek.Dot(vb[:], vb[:]))
	cos := vek.Dot(va[:], vb[:]) / (normA * normB)
	if cos > 1 {
		return 1
	}
	return cos
}

// Structural returns the direct shape similarity of two entities:
// 1 − min(1, (|syllableDiff| + |lengthDiff|/10) / 5).
func Structural(a, b corpus.Entity) float64 {
	syllDiff := math.Abs(float64(a.Syllables - b.Syllables))
	lenDiff := math.Abs(float64(a.Length - b.Length))
	penalty := (syllDiff + lenDiff/lengthDamping) / structuralSpan
	if penalty > 1 {
		penalty = 1
	}
	return 1 - penalty
}

// clamp01 pins s into [0,1].
func clamp01(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}
