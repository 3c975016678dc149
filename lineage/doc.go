// Package lineage traces phonetic descent two ways:
//
//	• Genealogy   — seed-driven: given curated seed names, find every
//	                chronologically later entity similar enough to be
//	                attributed to the seed.
//	• Propagation — archetype-driven: did later entities imitate the
//	                feature profile of an early, successful archetype,
//	                and did the imitation pay off?
//
// The two are deliberately different instruments. Genealogy is pairwise:
// one seed, one candidate, one similarity score. Propagation is
// many-to-one: later entities are matched against an archetype's mean
// feature profile (a centroid), not against any individual entity.
//
// ✨ Guarantees:
//   - A genealogy seed absent from the corpus is reported with status
//     "pending", never silently dropped and never an error.
//   - Descendant lists are capped for reporting while the descendant
//     count stays exact.
//   - Propagation only reports archetypes with at least MinEarlyMembers
//     early members and at least one later match; everything else is
//     absent, not zeroed.
package lineage
