// Package similarity implements the composite phonetic similarity metric
// every other engine component is built on.
//
// 🚀 The metric
//
//	Score(a, b) blends three views of "these names sound alike":
//	  • Lexical    (0.4) — normalized Levenshtein similarity of the
//	                       lowercased names.
//	  • Cosine     (0.4) — cosine similarity of the 7-field feature
//	                       vectors.
//	  • Structural (0.2) — direct closeness of syllable count and
//	                       character length, independent of the cosine
//	                       term (deliberate redundancy: it weights the
//	                       raw "shape" of a name more than the full
//	                       vector does).
//
// ✨ Guarantees (all tested):
//   - Symmetry:   Score(a,b) == Score(b,a), exactly.
//   - Range:      0 ≤ Score ≤ 1 (clamped).
//   - Identity:   Score(a,a) == 1 for non-degenerate entities.
//   - Degeneracy: empty names and zero-norm vectors contribute 0 to
//     their term instead of dividing by zero.
//   - Purity:     no state, no randomness, no I/O — safe to evaluate
//     from any number of goroutines at once.
//
// Performance: one Score call is O(len(nameA)·len(nameB)) for the edit
// distance plus O(1) vector work; a full n-entity pair sweep is n(n−1)/2
// calls (n=2,000 ⇒ ~2M evaluations).
package similarity
