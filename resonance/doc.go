// Package resonance measures whether names cluster more tightly inside a
// cohort (typically a decade) than across cohorts.
//
// 🚀 The test, per cohort:
//
//  1. Compute every within-cohort pairwise similarity — O(k²) for k
//     members, exhaustive because k is small.
//  2. Build a cross-cohort baseline by scoring each member against a
//     bounded random sample of entities from all other cohorts. The
//     baseline is a sampled estimate by design: exhaustive cross-cohort
//     comparison is O(k·n) per cohort and buys nothing for a mean.
//  3. Run Welch's two-sample t-test (within vs. baseline), reporting the
//     mean difference, percentage effect, t statistic, p-value and a
//     significance flag at α = 0.05.
//
// ✨ Skips are visible, not silent:
//   - Cohorts under the minimum size, or with too few within or baseline
//     pairs, produce no Result at all. Absence means "not tested" —
//     callers can always tell it apart from "tested, not significant".
//
// Determinism: the only randomness in the whole engine lives in the
// baseline sampler here, and it is seed-driven. Each cohort gets an
// independent stream derived from the base seed and the cohort key, so
// results do not depend on cohort iteration order.
package resonance
