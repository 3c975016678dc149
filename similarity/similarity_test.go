package similarity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/resoname/corpus"
	"github.com/katalvlaran/resoname/feature"
	"github.com/katalvlaran/resoname/similarity"
)

// toyCorpus is the shared 4-entity fixture: two harsh, prefix-sharing
// names from the early 70s, a late harsh echo, and a soft outlier.
func toyCorpus() []corpus.Entity {
	return []corpus.Entity{
		{ID: "thorn", Name: "Thorn", Year: 1970, HasYear: true, Success: 90,
			Syllables: 1, Length: 5, Harshness: 80, Softness: 15, VowelRatio: 0.2, Memorability: 70},
		{ID: "thornwood", Name: "Thornwood", Year: 1972, HasYear: true, Success: 70,
			Syllables: 2, Length: 9, Harshness: 75, Softness: 20, VowelRatio: 0.33, Memorability: 65},
		{ID: "meadowlight", Name: "Meadowlight", Year: 1995, HasYear: true, Success: 50,
			Syllables: 4, Length: 11, Harshness: 10, Softness: 85, VowelRatio: 0.45, Memorability: 60},
		{ID: "thornfall", Name: "Thornfall", Year: 1990, HasYear: true, Success: 60,
			Syllables: 2, Length: 9, Harshness: 78, Softness: 18, VowelRatio: 0.33, Memorability: 68},
	}
}

// TestScore_Symmetry verifies exact symmetry over every pair of the toy
// corpus — not approximate, since the inputs are deterministic.
func TestScore_Symmetry(t *testing.T) {
	entities := toyCorpus()
	vectors := feature.Precompute(entities)

	for i := range entities {
		for j := range entities {
			a, b := entities[i], entities[j]
			ab := similarity.Score(a, b, vectors[a.ID], vectors[b.ID])
			ba := similarity.Score(b, a, vectors[b.ID], vectors[a.ID])
			assert.Equal(t, ab, ba, "Score(%s,%s) must equal Score(%s,%s) exactly",
				a.Name, b.Name, b.Name, a.Name)
		}
	}
}

// TestScore_Range verifies 0 ≤ Score ≤ 1 over all toy pairs.
func TestScore_Range(t *testing.T) {
	entities := toyCorpus()
	vectors := feature.Precompute(entities)

	for i := range entities {
		for j := range entities {
			s := similarity.Score(entities[i], entities[j],
				vectors[entities[i].ID], vectors[entities[j].ID])
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, 1.0)
		}
	}
}

// TestScore_Identity verifies Score(A,A) == 1 for a non-degenerate entity.
func TestScore_Identity(t *testing.T) {
	e := toyCorpus()[0]
	v := feature.Extract(e)
	assert.Equal(t, 1.0, similarity.Score(e, e, v, v))
}

// TestScore_SharedPrefixCloseFeatures verifies the toy-corpus expectation:
// "Thorn" vs "Thornwood" scores high, "Thorn" vs "Meadowlight" low.
func TestScore_SharedPrefixCloseFeatures(t *testing.T) {
	entities := toyCorpus()
	vectors := feature.Precompute(entities)
	thorn, thornwood, meadow := entities[0], entities[1], entities[2]

	near := similarity.Score(thorn, thornwood, vectors[thorn.ID], vectors[thornwood.ID])
	assert.Greater(t, near, 0.6, "shared prefix + close features must score high")

	far := similarity.Score(thorn, meadow, vectors[thorn.ID], vectors[meadow.ID])
	assert.Less(t, far, near, "the soft outlier must score below the echo")
}

// TestLexical_EmptyNames verifies the degenerate definition: two empty
// names are 0 similarity, not a division error.
func TestLexical_EmptyNames(t *testing.T) {
	assert.Equal(t, 0.0, similarity.Lexical("", ""))
	assert.Equal(t, 0.0, similarity.Lexical("", "Thorn"))
}

// TestLexical_CaseInsensitive verifies lowercasing before the distance.
func TestLexical_CaseInsensitive(t *testing.T) {
	assert.Equal(t, 1.0, similarity.Lexical("THORN", "thorn"))
}

// TestCosine_ZeroNorm verifies that zero-norm vectors contribute 0
// instead of NaN.
func TestCosine_ZeroNorm(t *testing.T) {
	var zero feature.Vector
	v := feature.Extract(toyCorpus()[0])
	assert.Equal(t, 0.0, similarity.Cosine(zero, v))
	assert.Equal(t, 0.0, similarity.Cosine(zero, zero))
}

// TestStructural_Formula pins the structural term to its definition:
// 1 − min(1, (|syllDiff| + |lenDiff|/10) / 5).
func TestStructural_Formula(t *testing.T) {
	a := corpus.Entity{Syllables: 1, Length: 5}
	b := corpus.Entity{Syllables: 2, Length: 9}
	// (1 + 4/10) / 5 = 0.28 → 0.72
	assert.InDelta(t, 0.72, similarity.Structural(a, b), 1e-12)

	// Saturating case: huge shape gap pins the term at 0.
	c := corpus.Entity{Syllables: 9, Length: 40}
	assert.Equal(t, 0.0, similarity.Structural(a, c))
}

// TestScoreEntities_DegenerateEntity verifies that a fully zero entity
// still produces a defined score against a real one.
func TestScoreEntities_DegenerateEntity(t *testing.T) {
	blank := corpus.Entity{ID: "blank"}
	thorn := toyCorpus()[0]

	s := similarity.ScoreEntities(blank, thorn)
	require.False(t, s < 0 || s > 1, "degenerate input must stay in range")
}
