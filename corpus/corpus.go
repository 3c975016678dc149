package corpus

import (
	"fmt"
	"sort"
	"strings"
)

// Corpus is an immutable, indexed snapshot of one analysis run's entities.
//
// Construction copies the input slice once; after New returns, the snapshot
// is safe for any number of concurrent readers. Entity order is normalized
// to ascending ID so that every traversal in the engine is deterministic
// regardless of store ordering.
type Corpus struct {
	entities []Entity
	byID     map[string]int
	byName   map[string]int // lowercased display name → index
}

// New builds a Corpus snapshot from the given entities.
// Returns ErrDuplicateID (wrapped with the offending ID) if two entities
// share an identifier. An empty slice is a valid, empty corpus.
//
// Complexity: O(n log n) time for the ID sort, O(n) space.
func New(entities []Entity) (*Corpus, error) {
	c := &Corpus{
		entities: make([]Entity, len(entities)),
		byID:     make(map[string]int, len(entities)),
		byName:   make(map[string]int, len(entities)),
	}
	copy(c.entities, entities)
	sort.Slice(c.entities, func(i, j int) bool { return c.entities[i].ID < c.entities[j].ID })

	for i, e := range c.entities {
		if _, dup := c.byID[e.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, e.ID)
		}
		c.byID[e.ID] = i
		// First occurrence wins for name lookup; duplicate display names
		// are legal in real corpora (re-formed bands, shared names).
		key := strings.ToLower(e.Name)
		if _, seen := c.byName[key]; !seen {
			c.byName[key] = i
		}
	}
	return c, nil
}

// Len reports the number of entities in the snapshot.
func (c *Corpus) Len() int { return len(c.entities) }

// Entities returns the snapshot's entities in ascending-ID order.
// The returned slice is shared; callers must not modify it.
func (c *Corpus) Entities() []Entity { return c.entities }

// ByID returns the entity with the given identifier.
func (c *Corpus) ByID(id string) (Entity, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Entity{}, false
	}
	return c.entities[i], true
}

// ByName returns the first entity whose display name matches name,
// compared case-insensitively.
func (c *Corpus) ByName(name string) (Entity, bool) {
	i, ok := c.byName[strings.ToLower(name)]
	if !ok {
		return Entity{}, false
	}
	return c.entities[i], true
}

// Dated returns the entities that carry a formation year, in ascending-ID
// order. The result is a fresh slice; temporal analyses iterate it freely.
func (c *Corpus) Dated() []Entity {
	out := make([]Entity, 0, len(c.entities))
	for _, e := range c.entities {
		if e.HasYear {
			out = append(out, e)
		}
	}
	return out
}

// Span returns the earliest and latest formation year among dated
// entities. Returns ErrEmptyCorpus when no entity carries a year; the
// temporal analyses have nothing to anchor on then.
func (c *Corpus) Span() (earliest, latest int, err error) {
	seen := false
	for _, e := range c.entities {
		if !e.HasYear {
			continue
		}
		if !seen {
			earliest, latest = e.Year, e.Year
			seen = true
			continue
		}
		if e.Year < earliest {
			earliest = e.Year
		}
		if e.Year > latest {
			latest = e.Year
		}
	}
	if !seen {
		return 0, 0, ErrEmptyCorpus
	}
	return earliest, latest, nil
}

// GroupByCohort partitions the corpus by the given cohort function.
// Entities for which fn reports no cohort are omitted (skipped, not
// defaulted). Cohort member order follows snapshot order and is therefore
// deterministic.
func (c *Corpus) GroupByCohort(fn CohortFn) map[string][]Entity {
	groups := make(map[string][]Entity)
	for _, e := range c.entities {
		key, ok := fn(e)
		if !ok {
			continue
		}
		groups[key] = append(groups[key], e)
	}
	return groups
}

// DecadeCohort is the default cohort function: it buckets entities by the
// decade of their formation year ("1970s", "1990s", …). Entities without a
// year belong to no cohort.
func DecadeCohort(e Entity) (string, bool) {
	if !e.HasYear {
		return "", false
	}
	return fmt.Sprintf("%ds", (e.Year/10)*10), true
}
