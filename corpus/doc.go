// Package corpus defines the immutable entity records the engine analyzes
// and the in-memory snapshot they are loaded into.
//
// 🚀 What is a corpus?
//
//	A corpus is a time-stamped collection of named entities (band names,
//	product names, character names…) together with precomputed linguistic
//	attributes supplied by an external store:
//	  • syllable count & character length
//	  • harshness / softness / fantasy scores
//	  • memorability score & vowel ratio
//	  • optional formation year, cohort key and category tag
//
// ✨ Key guarantees:
//   - Entities are value records: the engine never mutates them.
//   - A Corpus is built once per analysis run and is safe for concurrent
//     readers; it carries no locks because nothing writes after New.
//   - Entities without a formation year are retained (they still take part
//     in pure similarity work) but are excluded from temporal views.
//
// ⚙️ Usage:
//
//	c := corpus.New(entities)
//	dated := c.Dated()                   // only entities with a known year
//	e, ok := c.ByName("Thorn")           // case-insensitive name lookup
//	key, ok := corpus.DecadeCohort(ent)  // "1970s"-style cohort keys
package corpus
