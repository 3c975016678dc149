// Package network builds the weighted phonetic similarity graph of a
// corpus: every unordered entity pair is scored once, and pairs at or
// above a threshold become edges.
//
// 🚀 Shape of the computation
//
//	For n entities the builder performs n(n−1)/2 similarity evaluations
//	(i > j convention — no self-pairs, no duplicates). This is the
//	dominant cost of the whole engine; the pair space is split across a
//	bounded worker pool, each worker owning a disjoint slice of row
//	indices and returning partial edge lists for a final deterministic
//	merge. Workers share no mutable state while scoring.
//
// ✨ Guarantees:
//   - Thresholding is exact: the edge set is precisely the pairs with
//     Score ≥ Threshold, regardless of worker count.
//   - Output is deterministic: edges are sorted by score descending with
//     a stable ID tie-break, so identical inputs yield identical results.
//   - Fewer than two entities is not an error — it is an empty network.
//
// ⚙️ Usage:
//
//	opts := network.DefaultOptions()
//	opts.Threshold = 0.7
//	res, err := network.Build(entities, &opts)
//	// res.Edges    — full edge set (resonance/rhyme consumers need it)
//	// res.TopEdges — capped summary view
//	// res.Stats    — edge count, mean, cohort/category shares
package network
