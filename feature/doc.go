// Package feature turns corpus entities into fixed-length numeric vectors
// and assigns every entity to exactly one phonetic archetype.
//
// 🚀 What lives here?
//
//	• Vector     — the 7-field feature tuple every similarity comparison
//	               is built on (field order is part of the contract).
//	• Extract    — pure entity→Vector mapping; missing attributes default
//	               to 0 and never fail.
//	• Precompute — one explicit map of all vectors per analysis run, so
//	               pairwise loops never re-derive features.
//	• Cache      — optional ristretto-backed vector cache for callers that
//	               run many analyses over overlapping corpora.
//	• RuleSet    — ordered, versioned archetype rules; Classify is total
//	               (every entity gets exactly one label).
//
// ✨ Guarantees:
//   - Extraction is deterministic and side-effect free.
//   - Vector field order never changes within a rule-set version; rule
//     order is versioned because reordering changes classifications.
//   - Classification always lands somewhere: entities matching no rule
//     fall into the "balanced" bucket.
package feature
