package graph_test

import (
	"fmt"

	"github.com/graphforge/graphgen/pkg/graph"
)

func ExampleNew() {
	g := graph.New()
	root := g.AddVertex()
	child := g.AddVertex()

	g.AddEdge(root, child)

	fmt.Println("vertices:", g.VertexCount())
	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("depth:", g.Depth())
	// Output:
	// vertices: 2
	// edges: 1
	// depth: 2
}

func ExampleGraph_AddEdge() {
	g := graph.New()
	root := g.AddVertex()
	child := g.AddVertex()

	// The first edge into an untouched vertex is grey and pulls the target
	// one layer below the source.
	id, _ := g.AddEdge(root, child)
	e, _ := g.Edge(id)

	fmt.Println("color:", e.Color)
	fmt.Println("root depth:", g.VertexDepth(root))
	fmt.Println("child depth:", g.VertexDepth(child))
	// Output:
	// color: grey
	// root depth: 1
	// child depth: 2
}

func ExampleGraph_EdgeColor() {
	g := graph.New()
	a := g.AddVertex()
	b := g.AddVertex()
	c := g.AddVertex()
	g.AddEdge(a, b)
	g.AddEdge(b, c)

	// Classification is a pure read; the edge is not added.
	color, _ := g.EdgeColor(a, c)
	fmt.Println(color)

	loop, _ := g.EdgeColor(b, b)
	fmt.Println(loop)
	// Output:
	// red
	// green
}

func ExampleGraph_VerticesAtDepth() {
	g := graph.New()
	root := g.AddVertex()
	for range 3 {
		g.AddEdge(root, g.AddVertex())
	}

	fmt.Println("layer 1:", g.VerticesAtDepth(1))
	fmt.Println("layer 2:", g.VerticesAtDepth(2))
	// Output:
	// layer 1: [0]
	// layer 2: [1 2 3]
}
