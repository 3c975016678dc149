// Package rhyme computes the cross-cohort similarity matrix and flags
// "rhymes": non-adjacent cohorts that sound unexpectedly alike.
//
// 🚀 The matrix
//
//	Every ordered cohort pair gets the mean pairwise similarity between
//	the two member lists. The matrix is symmetric off the diagonal and
//	the diagonal is omitted — a cohort is never compared to itself here
//	(that is the resonance package's job).
//
// ✨ Approximation, disclosed:
//   - Each cohort's member list is capped to the first SampleCap entities
//     (stable corpus order) before the O(k×k) cross product. The Matrix
//     records which cohorts were truncated so any consumer can disclose
//     the approximation.
//
// 🎶 Flagging:
//   - Two cohorts rhyme when their anchor years are at least MinGapYears
//     apart AND their mean similarity is at or above Floor. Adjacent
//     cohorts are excluded by construction: neighbors are trivially
//     similar (continuity) and carry no signal.
package rhyme
