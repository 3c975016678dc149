// Package influence detects directional phonetic influence over time:
// which early entities were followed, within a bounded year window, by
// later entities that sound like them.
//
// 🚀 How detection works
//
//  1. The caller nominates influencers via a criteria function (e.g.
//     "formed before 1980 and success above the 75th percentile").
//  2. For each influencer, every entity formed strictly after it and no
//     more than WindowYears later is scored against it.
//  3. Entities at or above the similarity floor become descendants; the
//     influencer's true descendant count is exact even when the reported
//     list is capped to TopN.
//  4. Influencers are ranked by descendant count, descending.
//
// ✨ Hard invariants (not tunable):
//   - A descendant's formation year is strictly greater than its
//     influencer's year.
//   - A descendant is never more than WindowYears after its influencer.
//   - Entities without a formation year take no part on either side.
//
// The default floor (0.65) sits below the network package's edge
// threshold on purpose: influence detection casts a wider net than strict
// graph membership, and the two floors are independent knobs.
package influence
