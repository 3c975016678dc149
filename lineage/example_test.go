package lineage_test

import (
	"fmt"

	"github.com/katalvlaran/resoname/corpus"
	"github.com/katalvlaran/resoname/lineage"
)

// ExampleTrace shows the pending-seed contract: a seed the corpus has
// never seen still gets its genealogy entry.
func ExampleTrace() {
	entities := []corpus.Entity{
		{ID: "thorn", Name: "Thorn", Year: 1970, HasYear: true,
			Syllables: 1, Length: 5, Harshness: 80, Memorability: 70},
	}

	gens, err := lineage.Trace(entities, []string{"Thorn", "Nonesuch"}, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, g := range gens {
		fmt.Printf("%s: %s\n", g.Seed, g.Status)
	}

	// Output:
	// Thorn: traced
	// Nonesuch: pending
}
