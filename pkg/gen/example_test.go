package gen_test

import (
	"fmt"

	"github.com/graphforge/graphgen/pkg/gen"
)

func ExampleGenerate() {
	// A target depth of one pins the branch probability at 1.0, so the
	// vertex count is exact regardless of the seed.
	g, err := gen.Generate(gen.Params{Depth: 1, NewVertices: 2, Seed: 42})
	if err != nil {
		panic(err)
	}

	fmt.Println("vertices:", g.VertexCount())
	fmt.Println("depth:", g.Depth())
	// Output:
	// vertices: 3
	// depth: 2
}
