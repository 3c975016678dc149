package network

import (
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/resoname/corpus"
	"github.com/katalvlaran/resoname/feature"
	"github.com/katalvlaran/resoname/similarity"
)

// Build scores every unordered entity pair once and returns the edges at
// or above opts.Threshold, together with network-level statistics.
//
// Fewer than two entities yields an empty Result and no error. A nil opts
// means DefaultOptions.
//
// Complexity: O(n²) similarity calls, O(E log E) for the final edge sort.
func Build(entities []corpus.Entity, opts *Options) (*Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	n := len(entities)
	res := &Result{Edges: []Edge{}, TopEdges: []Edge{}, Stats: Stats{Entities: n}}
	if n < 2 {
		return res, nil
	}

	vectors := o.Vectors
	if vectors == nil {
		vectors = feature.Precompute(entities)
	}

	// Cohort keys are needed per edge; resolve them once per entity.
	cohorts := make([]string, n)
	inCohort := make([]bool, n)
	for i, e := range entities {
		cohorts[i], inCohort[i] = o.CohortFn(e)
	}

	workers := o.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n-1 {
		workers = n - 1
	}

	// Each worker owns the rows i ≡ w+1 (mod workers) of the i>j triangle
	// and appends its partial edge list under the merge lock only once.
	var (
		mu    sync.Mutex
		edges []Edge
		g     errgroup.Group
	)
	g.SetLimit(workers)
	for w := 0; w < workers; w++ {
		first := w + 1
		g.Go(func() error {
			var local []Edge
			for i := first; i < n; i += workers {
				for j := 0; j < i; j++ {
					s := similarity.Score(
						entities[i], entities[j],
						vectors[entities[i].ID], vectors[entities[j].ID],
					)
					if s < o.Threshold {
						continue
					}
					local = append(local, newEdge(
						entities[i], entities[j], s,
						cohorts[i], cohorts[j], inCohort[i] && inCohort[j],
					))
				}
			}
			mu.Lock()
			edges = append(edges, local...)
			mu.Unlock()
			return nil
		})
	}
	// Workers never fail; Wait only synchronizes the merge.
	_ = g.Wait()

	sortEdges(edges)
	res.Edges = edges
	if o.TopK > 0 {
		k := o.TopK
		if k > len(edges) {
			k = len(edges)
		}
		res.TopEdges = edges[:k]
	}
	res.Stats = buildStats(n, edges)
	return res, nil
}

// newEdge materializes one retained pair with its derived metadata,
// normalizing endpoint order to A < B by ID.
func newEdge(x, y corpus.Entity, score float64, cohortX, cohortY string, bothInCohort bool) Edge {
	a, b := x, y
	if b.ID < a.ID {
		a, b = b, a
	}
	e := Edge{
		A:     a.ID,
		B:     b.ID,
		NameA: a.Name,
		NameB: b.Name,
		Score: score,
	}
	if x.HasYear && y.HasYear {
		e.HasYearGap = true
		e.YearGap = x.Year - y.Year
		if e.YearGap < 0 {
			e.YearGap = -e.YearGap
		}
	}
	e.SameCohort = bothInCohort && cohortX == cohortY
	e.SameCategory = x.Category != "" && x.Category == y.Category
	return e
}

// sortEdges orders edges by score descending with a stable (A,B) tie-break
// so that identical inputs always produce byte-identical results.
func sortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Score != edges[j].Score {
			return edges[i].Score > edges[j].Score
		}
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}
		return edges[i].B < edges[j].B
	})
}

// buildStats aggregates the retained edge set.
func buildStats(n int, edges []Edge) Stats {
	s := Stats{
		Entities:       n,
		PairsEvaluated: n * (n - 1) / 2,
		EdgeCount:      len(edges),
	}
	if len(edges) == 0 {
		return s
	}

	scores := make([]float64, len(edges))
	var sameCohort, sameCategory int
	for i, e := range edges {
		scores[i] = e.Score
		if e.SameCohort {
			sameCohort++
		}
		if e.SameCategory {
			sameCategory++
		}
	}
	s.MeanScore = stat.Mean(scores, nil)
	if len(scores) > 1 {
		s.StdDevScore = stat.StdDev(scores, nil)
	}
	s.SameCohortPct = 100 * float64(sameCohort) / float64(len(edges))
	s.SameCategoryPct = 100 * float64(sameCategory) / float64(len(edges))
	return s
}
