package network_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/resoname/corpus"
	"github.com/katalvlaran/resoname/feature"
	"github.com/katalvlaran/resoname/network"
	"github.com/katalvlaran/resoname/similarity"
)

// fixtureCorpus mixes tight name clusters with outliers so every tested
// threshold retains a different, non-trivial edge set.
func fixtureCorpus() []corpus.Entity {
	return []corpus.Entity{
		{ID: "e01", Name: "Thorn", Year: 1970, HasYear: true, Category: "metal",
			Syllables: 1, Length: 5, Harshness: 80, Softness: 15, VowelRatio: 0.2, Memorability: 70},
		{ID: "e02", Name: "Thornwood", Year: 1972, HasYear: true, Category: "metal",
			Syllables: 2, Length: 9, Harshness: 75, Softness: 20, VowelRatio: 0.33, Memorability: 65},
		{ID: "e03", Name: "Thornfall", Year: 1990, HasYear: true, Category: "metal",
			Syllables: 2, Length: 9, Harshness: 78, Softness: 18, VowelRatio: 0.33, Memorability: 68},
		{ID: "e04", Name: "Meadowlight", Year: 1995, HasYear: true, Category: "folk",
			Syllables: 4, Length: 11, Harshness: 10, Softness: 85, VowelRatio: 0.45, Memorability: 60},
		{ID: "e05", Name: "Meadowsong", Year: 1996, HasYear: true, Category: "folk",
			Syllables: 3, Length: 10, Harshness: 12, Softness: 82, VowelRatio: 0.4, Memorability: 58},
		{ID: "e06", Name: "Krag", Year: 1984, HasYear: true, Category: "metal",
			Syllables: 1, Length: 4, Harshness: 92, Softness: 5, VowelRatio: 0.25, Memorability: 75},
		{ID: "e07", Name: "Serenity", Year: 2001, HasYear: true, Category: "ambient",
			Syllables: 4, Length: 8, Harshness: 8, Softness: 90, VowelRatio: 0.5, Memorability: 55},
	}
}

// bruteForceEdges recomputes the expected edge count directly from the
// metric, bypassing the builder entirely.
func bruteForceEdges(entities []corpus.Entity, threshold float64) int {
	vectors := feature.Precompute(entities)
	var count int
	for i := 1; i < len(entities); i++ {
		for j := 0; j < i; j++ {
			s := similarity.Score(entities[i], entities[j],
				vectors[entities[i].ID], vectors[entities[j].ID])
			if s >= threshold {
				count++
			}
		}
	}
	return count
}

// TestBuild_ThresholdingExact verifies, for several thresholds, that the
// edge set is exactly the set of pairs at or above the threshold: nothing
// below sneaks in, nothing above is missing.
func TestBuild_ThresholdingExact(t *testing.T) {
	entities := fixtureCorpus()

	for _, threshold := range []float64{0.5, 0.7, 0.9} {
		t.Run(fmt.Sprintf("threshold=%.1f", threshold), func(t *testing.T) {
			opts := network.DefaultOptions()
			opts.Threshold = threshold
			res, err := network.Build(entities, &opts)
			require.NoError(t, err)

			assert.Equal(t, bruteForceEdges(entities, threshold), len(res.Edges))
			for _, e := range res.Edges {
				assert.GreaterOrEqual(t, e.Score, threshold)
			}
		})
	}
}

// TestBuild_Deterministic verifies idempotence and worker-count
// independence: the same corpus and threshold always yield identical
// results.
func TestBuild_Deterministic(t *testing.T) {
	entities := fixtureCorpus()

	opts1 := network.DefaultOptions()
	opts1.Threshold = 0.5
	opts1.Workers = 1
	serial, err := network.Build(entities, &opts1)
	require.NoError(t, err)

	opts4 := network.DefaultOptions()
	opts4.Threshold = 0.5
	opts4.Workers = 4
	parallel, err := network.Build(entities, &opts4)
	require.NoError(t, err)

	assert.Equal(t, serial.Edges, parallel.Edges, "worker count must not change the result")
	assert.Equal(t, serial.Stats, parallel.Stats)

	again, err := network.Build(entities, &opts4)
	require.NoError(t, err)
	assert.Equal(t, parallel.Edges, again.Edges, "rebuilding must be idempotent")
}

// TestBuild_SortedDescending verifies the score-descending edge order
// with a stable tie-break.
func TestBuild_SortedDescending(t *testing.T) {
	opts := network.DefaultOptions()
	opts.Threshold = 0.3
	res, err := network.Build(fixtureCorpus(), &opts)
	require.NoError(t, err)
	require.NotEmpty(t, res.Edges)

	for i := 1; i < len(res.Edges); i++ {
		assert.GreaterOrEqual(t, res.Edges[i-1].Score, res.Edges[i].Score)
	}
}

// TestBuild_FewerThanTwoEntities verifies the empty-not-error contract.
func TestBuild_FewerThanTwoEntities(t *testing.T) {
	opts := network.DefaultOptions()

	res, err := network.Build(nil, &opts)
	require.NoError(t, err)
	assert.Empty(t, res.Edges)
	assert.Equal(t, 0, res.Stats.EdgeCount)

	res, err = network.Build(fixtureCorpus()[:1], &opts)
	require.NoError(t, err)
	assert.Empty(t, res.Edges)
	assert.Equal(t, 1, res.Stats.Entities)
}

// TestBuild_IdenticalNamesSaturate verifies that an all-identical corpus
// saturates every pair at 1.0 — expected, not an error condition.
func TestBuild_IdenticalNamesSaturate(t *testing.T) {
	clone := func(id string) corpus.Entity {
		return corpus.Entity{ID: id, Name: "Echo", Syllables: 2, Length: 4,
			Harshness: 50, Softness: 50, VowelRatio: 0.5, Memorability: 50}
	}
	entities := []corpus.Entity{clone("a"), clone("b"), clone("c")}

	opts := network.DefaultOptions()
	opts.Threshold = 1.0
	res, err := network.Build(entities, &opts)
	require.NoError(t, err)

	require.Len(t, res.Edges, 3, "all 3 pairs must saturate")
	for _, e := range res.Edges {
		assert.Equal(t, 1.0, e.Score)
	}
}

// TestBuild_TopKSummary verifies that TopEdges is a prefix view of the
// full set and never truncates Edges for downstream consumers.
func TestBuild_TopKSummary(t *testing.T) {
	opts := network.DefaultOptions()
	opts.Threshold = 0.3
	opts.TopK = 2
	res, err := network.Build(fixtureCorpus(), &opts)
	require.NoError(t, err)

	require.Greater(t, len(res.Edges), 2, "fixture must produce more than TopK edges")
	assert.Len(t, res.TopEdges, 2)
	assert.Equal(t, res.Edges[:2], res.TopEdges)
}

// TestBuild_EdgeMetadata verifies year gap, cohort and category flags on
// a known pair.
func TestBuild_EdgeMetadata(t *testing.T) {
	opts := network.DefaultOptions()
	opts.Threshold = 0.3
	res, err := network.Build(fixtureCorpus(), &opts)
	require.NoError(t, err)

	var found bool
	for _, e := range res.Edges {
		if e.A == "e01" && e.B == "e02" { // Thorn ↔ Thornwood, 1970/1972
			found = true
			assert.True(t, e.HasYearGap)
			assert.Equal(t, 2, e.YearGap)
			assert.True(t, e.SameCohort, "both formed in the 1970s")
			assert.True(t, e.SameCategory, "both metal")
		}
	}
	require.True(t, found, "the Thorn↔Thornwood edge must be retained at 0.3")
}

// TestBuild_Stats verifies the aggregate counters against the edge list.
func TestBuild_Stats(t *testing.T) {
	entities := fixtureCorpus()
	opts := network.DefaultOptions()
	opts.Threshold = 0.5
	res, err := network.Build(entities, &opts)
	require.NoError(t, err)

	n := len(entities)
	assert.Equal(t, n*(n-1)/2, res.Stats.PairsEvaluated)
	assert.Equal(t, len(res.Edges), res.Stats.EdgeCount)
	if len(res.Edges) > 0 {
		assert.Greater(t, res.Stats.MeanScore, 0.0)
		assert.GreaterOrEqual(t, res.Stats.SameCohortPct, 0.0)
		assert.LessOrEqual(t, res.Stats.SameCohortPct, 100.0)
	}
}

// TestBuild_OptionValidation verifies the sentinel errors.
func TestBuild_OptionValidation(t *testing.T) {
	entities := fixtureCorpus()

	bad := network.DefaultOptions()
	bad.Threshold = 1.5
	_, err := network.Build(entities, &bad)
	assert.ErrorIs(t, err, network.ErrBadThreshold)

	bad = network.DefaultOptions()
	bad.TopK = -1
	_, err = network.Build(entities, &bad)
	assert.ErrorIs(t, err, network.ErrBadTopK)

	bad = network.DefaultOptions()
	bad.Workers = -2
	_, err = network.Build(entities, &bad)
	assert.ErrorIs(t, err, network.ErrBadWorkers)
}
