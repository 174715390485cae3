package builder_test

import (
	"fmt"

	"github.com/katalvlaran/mstnet/builder"
)

// ExampleBuildInput builds a letter-labelled 4-cycle with unit weights.
func ExampleBuildInput() {
	gi, err := builder.BuildInput(1, []builder.BuilderOption{builder.WithLetterIDs()}, builder.Cycle(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(gi.Nodes)
	for _, e := range gi.Edges {
		fmt.Printf("%s-%s(%d) ", e.From, e.To, e.Weight)
	}
	fmt.Println()
	// Output:
	// [A B C D]
	// A-B(1) B-C(1) C-D(1) D-A(1)
}

// ExampleSuite shows the size classes of the standard batch.
func ExampleSuite() {
	graphs, err := builder.Suite(42)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	first, last := graphs[0], graphs[len(graphs)-1]
	fmt.Println(len(graphs), len(first.Nodes), len(first.Edges), len(last.Nodes), len(last.Edges))
	// Output: 28 4 5 50 120
}
