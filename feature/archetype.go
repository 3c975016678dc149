package feature

import "github.com/katalvlaran/resoname/corpus"

// Archetype labels produced by RuleSetV1. DefaultLabel is the total-function
// fallback: every entity matching no rule lands there.
const (
	LabelHarshShort   = "harsh_short"
	LabelEpicFantasy  = "epic_fantasy"
	LabelMonosyllabic = "monosyllabic"
	LabelDarkMythic   = "dark_mythic"
	LabelSoftMelodic  = "soft_melodic"
	DefaultLabel      = "balanced"
)

// Rule is one ordered classification rule: the first rule whose Match
// accepts a vector decides the label.
type Rule struct {
	Label string
	Match func(Vector) bool
}

// RuleSet is an ordered, versioned list of archetype rules.
//
// Rule order is part of the contract: an entity can satisfy several rules,
// and only the first match counts. Any reordering or threshold change must
// ship as a new version, never as an in-place tweak, because it silently
// reshuffles every downstream archetype analysis.
type RuleSet struct {
	Version string
	Rules   []Rule
}

// RuleSetV1 returns the v1 archetype rules, evaluated in this order:
//
//	1. harshness > 65 and syllables ≤ 3  → harsh_short
//	2. fantasy  > 65 and syllables > 3   → epic_fantasy
//	3. syllables == 1                    → monosyllabic
//	4. fantasy  > 60 and harshness > 60  → dark_mythic
//	5. harshness < 35 and syllables > 2  → soft_melodic
//	6. (no match)                        → balanced
func RuleSetV1() RuleSet {
	return RuleSet{
		Version: "v1",
		Rules: []Rule{
			{Label: LabelHarshShort, Match: func(v Vector) bool {
				return v[FieldHarshness] > 65 && v[FieldSyllables] <= 3
			}},
			{Label: LabelEpicFantasy, Match: func(v Vector) bool {
				return v[FieldFantasy] > 65 && v[FieldSyllables] > 3
			}},
			{Label: LabelMonosyllabic, Match: func(v Vector) bool {
				return v[FieldSyllables] == 1
			}},
			{Label: LabelDarkMythic, Match: func(v Vector) bool {
				return v[FieldFantasy] > 60 && v[FieldHarshness] > 60
			}},
			{Label: LabelSoftMelodic, Match: func(v Vector) bool {
				return v[FieldHarshness] < 35 && v[FieldSyllables] > 2
			}},
		},
	}
}

// Classify returns the archetype label of v: the label of the first
// matching rule, or DefaultLabel when no rule matches. Total by
// construction — it never errors and never returns an empty label.
//
// Complexity: O(len(rules)).
func (rs RuleSet) Classify(v Vector) string {
	for _, r := range rs.Rules {
		if r.Match(v) {
			return r.Label
		}
	}
	return DefaultLabel
}

// ClassifyEntity is Classify over a raw entity, extracting its vector first.
func (rs RuleSet) ClassifyEntity(e corpus.Entity) string {
	return rs.Classify(Extract(e))
}

// ClassifyAll buckets entities by archetype label. Every entity appears in
// exactly one bucket; buckets preserve input order.
func (rs RuleSet) ClassifyAll(entities []corpus.Entity) map[string][]corpus.Entity {
	buckets := make(map[string][]corpus.Entity)
	for _, e := range entities {
		label := rs.ClassifyEntity(e)
		buckets[label] = append(buckets[label], e)
	}
	return buckets
}
