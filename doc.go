// Package resoname is an in-memory engine for phonetic similarity
// networks and name lineages: feed it a time-stamped corpus of names and
// it tells you who sounds like whom, who echoed whom across decades, and
// which naming patterns propagated.
//
// 🚀 What is resoname?
//
//	A pure-computation library (no I/O, no network, no persistence) built
//	around one composite similarity metric and the analyses on top of it:
//		• similarity/ — the weighted lexical + cosine + structural score
//		• network/    — the thresholded pairwise similarity graph
//		• influence/  — time-directed "who echoed whom" detection
//		• resonance/  — within-cohort vs. cross-cohort significance tests
//		• lineage/    — seed genealogies & archetype propagation
//		• rhyme/      — cross-cohort similarity matrix with rhyme flags
//		• corpus/     — the immutable entity records everything consumes
//		• feature/    — feature vectors, caching & archetype rules
//
// ✨ Why choose resoname?
//
//   - Deterministic by construction – every analysis is reproducible;
//     the single random sampler is explicitly seeded
//   - Degrades, never dies – bad or partial entities are excluded from
//     sub-results with visible metadata, never a crash
//   - Embarrassingly parallel – pair scoring is pure and fanned out over
//     bounded worker pools
//   - Pure Go core – similarity math on real numeric libraries, zero
//     hidden global state
//
// Quick taste:
//
//	c, _ := corpus.New(entities)
//	vectors := feature.Precompute(c.Entities())
//
//	opts := network.DefaultOptions()
//	opts.Vectors = vectors
//	net, _ := network.Build(c.Entities(), &opts)
//	fmt.Printf("%d edges, mean %.2f\n", net.Stats.EdgeCount, net.Stats.MeanScore)
//
// The external store that produces entities, the HTTP/CLI layers and any
// serialization of results are collaborator concerns; this module begins
// at an in-memory []corpus.Entity and ends at in-memory result values.
package resoname
