package graphio_test

import (
	"fmt"
	"os"

	"github.com/graphforge/graphgen/pkg/graph"
	"github.com/graphforge/graphgen/pkg/graphio"
)

func ExampleFromGraph() {
	g := graph.New()
	root := g.AddVertex()
	g.AddEdge(root, g.AddVertex())

	doc := graphio.FromGraph(g)
	fmt.Println("depth:", doc.Depth)
	fmt.Println("vertices:", len(doc.Vertices))
	fmt.Println("edges:", len(doc.Edges))
	fmt.Println("color:", doc.Edges[0].Color)
	// Output:
	// depth: 2
	// vertices: 2
	// edges: 1
	// color: grey
}

func ExampleWriteGraph() {
	g := graph.New()
	v := g.AddVertex()
	g.AddEdge(v, v)

	if err := graphio.WriteGraph(g, os.Stdout); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// {
	//   "depth": 1,
	//   "vertices": [
	//     {
	//       "id": 0,
	//       "edge_ids": [
	//         0
	//       ],
	//       "depth": 1
	//     }
	//   ],
	//   "edges": [
	//     {
	//       "id": 0,
	//       "vertex_ids": [
	//         0,
	//         0
	//       ],
	//       "color": "green"
	//     }
	//   ]
	// }
}
