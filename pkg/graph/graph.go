package graph

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrUnknownSourceVertex is returned by [Graph.AddEdge] and [Graph.EdgeColor]
	// when the from vertex does not exist in the graph.
	ErrUnknownSourceVertex = errors.New("unknown source vertex")

	// ErrUnknownTargetVertex is returned by [Graph.AddEdge] and [Graph.EdgeColor]
	// when the to vertex does not exist in the graph.
	ErrUnknownTargetVertex = errors.New("unknown target vertex")

	// ErrUnclassifiableEdge is returned by [Graph.AddEdge] and [Graph.EdgeColor]
	// when the endpoint pair matches none of the color rules. A correctly built
	// graph never produces it; treat it as an internal invariant violation.
	ErrUnclassifiableEdge = errors.New("edge matches no color rule")
)

// VertexID identifies a vertex. IDs are assigned by an increasing per-graph
// counter starting at 0, so they are contiguous and double as slice indices.
type VertexID int

// EdgeID identifies an edge. Like vertex IDs, edge IDs are contiguous from 0
// in insertion order.
type EdgeID int

// Depth is a 1-based layer number. Every vertex enters the graph at
// BaseDepth and can be promoted exactly once, by its first incoming
// grey edge.
type Depth int

// BaseDepth is the layer assigned to every fresh vertex.
const BaseDepth Depth = 1

// Edge spans fixed by the yellow and red rules.
const (
	yellowSpan Depth = 1
	redSpan    Depth = 2
)

// Color classifies an edge at creation time. The color is derived from the
// relative position of the endpoints and never recomputed afterwards.
type Color int

const (
	// ColorGrey marks growth edges: the target had no incident edges yet and
	// is pulled one layer below the source.
	ColorGrey Color = iota
	// ColorGreen marks self-loops.
	ColorGreen
	// ColorYellow marks the first edge between a vertex and an unconnected
	// vertex one layer deeper.
	ColorYellow
	// ColorRed marks edges that skip a layer, connecting a vertex to one two
	// layers deeper.
	ColorRed
)

var colorNames = map[Color]string{
	ColorGrey:   "grey",
	ColorGreen:  "green",
	ColorYellow: "yellow",
	ColorRed:    "red",
}

// String returns the lowercase wire name of the color: grey, green, yellow
// or red.
func (c Color) String() string {
	if s, ok := colorNames[c]; ok {
		return s
	}
	return fmt.Sprintf("color(%d)", int(c))
}

// ParseColor converts a wire name back into a Color.
func ParseColor(s string) (Color, error) {
	for c, name := range colorNames {
		if name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown edge color: %q", s)
}

// Vertex is a bare identity. All structural information about a vertex
// (depth, incident edges) lives in the graph's indices.
type Vertex struct {
	ID VertexID
}

// Edge is a directed connection between two vertices. From and To may be
// equal (a self-loop). The Color is fixed when the edge is created.
type Edge struct {
	ID    EdgeID
	From  VertexID
	To    VertexID
	Color Color
}

// Graph is an append-only directed multigraph organized into depth layers.
// Vertices and edges are never removed and edge colors never change, so all
// accessors are stable once the graph is built.
//
// The zero value is not usable - use New to create a valid Graph instance.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	vertices  []Vertex
	edges     []Edge
	adjacency map[VertexID][]EdgeID // vertex -> incident edge IDs, insertion order
	depths    map[VertexID]Depth
	buckets   map[Depth][]VertexID // depth -> vertices on that layer
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		adjacency: make(map[VertexID][]EdgeID),
		depths:    make(map[VertexID]Depth),
		buckets:   make(map[Depth][]VertexID),
	}
}

// AddVertex appends a fresh vertex at BaseDepth and returns its ID.
// It cannot fail: IDs are generated, never supplied by the caller.
func (g *Graph) AddVertex() VertexID {
	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, Vertex{ID: id})
	g.depths[id] = BaseDepth
	g.buckets[BaseDepth] = append(g.buckets[BaseDepth], id)
	return id
}

// AddEdge connects two existing vertices, classifies the edge via EdgeColor
// and registers it in both adjacency lists (once for self-loops).
// Returns ErrUnknownSourceVertex or ErrUnknownTargetVertex if an endpoint is
// missing, or ErrUnclassifiableEdge if the pair fits no color rule.
//
// A grey edge additionally promotes the target to one layer below the
// source. That is the only way a vertex ever changes depth, and it can
// happen at most once per vertex: after the grey edge lands, the target has
// an incident edge and no longer qualifies for grey.
func (g *Graph) AddEdge(from, to VertexID) (EdgeID, error) {
	color, err := g.EdgeColor(from, to)
	if err != nil {
		return 0, err
	}

	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge{ID: id, From: from, To: to, Color: color})
	g.adjacency[from] = append(g.adjacency[from], id)
	if from != to {
		g.adjacency[to] = append(g.adjacency[to], id)
	}

	if color == ColorGrey {
		g.promote(to, g.depths[from]+1)
	}
	return id, nil
}

// EdgeColor classifies the edge the pair (from, to) would produce, without
// adding it. The rules are checked in this order:
//
//  1. from == to: green.
//  2. to has no incident edges: grey.
//  3. to is exactly one layer deeper and not yet connected to from: yellow.
//  4. to is exactly two layers deeper: red.
//
// Returns ErrUnknownSourceVertex or ErrUnknownTargetVertex for missing
// endpoints, or ErrUnclassifiableEdge when no rule matches.
func (g *Graph) EdgeColor(from, to VertexID) (Color, error) {
	if !g.HasVertex(from) {
		return 0, ErrUnknownSourceVertex
	}
	if !g.HasVertex(to) {
		return 0, ErrUnknownTargetVertex
	}

	switch {
	case from == to:
		return ColorGreen, nil
	case len(g.adjacency[to]) == 0:
		return ColorGrey, nil
	case g.depths[to]-g.depths[from] == yellowSpan && !g.IsConnected(from, to):
		return ColorYellow, nil
	case g.depths[to]-g.depths[from] == redSpan:
		return ColorRed, nil
	default:
		return 0, ErrUnclassifiableEdge
	}
}

// promote moves a vertex to a deeper bucket. The old bucket keeps its key
// even when it empties, so Depth keeps counting layers that promotion
// drained.
func (g *Graph) promote(id VertexID, d Depth) {
	old := g.depths[id]
	g.buckets[old] = slices.DeleteFunc(g.buckets[old], func(v VertexID) bool { return v == id })
	g.depths[id] = d
	g.buckets[d] = append(g.buckets[d], id)
}

// IsConnected reports whether some edge incident to from has to as an
// endpoint, in either direction. For from == to it reports whether the
// vertex has any incident edge at all.
func (g *Graph) IsConnected(from, to VertexID) bool {
	for _, eid := range g.adjacency[from] {
		e := g.edges[eid]
		if e.From == to || e.To == to {
			return true
		}
	}
	return false
}

// HasVertex reports whether the vertex exists.
func (g *Graph) HasVertex(id VertexID) bool {
	return id >= 0 && int(id) < len(g.vertices)
}

// VertexCount returns the number of vertices in the graph.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Vertices returns a copy of all vertices in insertion order.
func (g *Graph) Vertices() []Vertex { return slices.Clone(g.vertices) }

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Edge returns the edge with the given ID and true, or a zero Edge and
// false if no such edge exists.
func (g *Graph) Edge(id EdgeID) (Edge, bool) {
	if id < 0 || int(id) >= len(g.edges) {
		return Edge{}, false
	}
	return g.edges[id], true
}

// ConnectedEdges returns the IDs of all edges incident to the vertex, in
// insertion order. The slice is a copy and is empty for unknown vertices;
// there is no missing-key failure mode.
func (g *Graph) ConnectedEdges(id VertexID) []EdgeID {
	return slices.Clone(g.adjacency[id])
}

// VertexDepth returns the vertex's layer, or 0 if the vertex doesn't exist.
func (g *Graph) VertexDepth(id VertexID) Depth { return g.depths[id] }

// VerticesAtDepth returns the vertices on the given layer in the order they
// entered it. The slice is a snapshot copy: callers can keep iterating it
// while adding vertices and edges, which is exactly what the generator does
// layer by layer. Empty for layers that don't exist.
func (g *Graph) VerticesAtDepth(d Depth) []VertexID {
	return slices.Clone(g.buckets[d])
}

// Depth returns the number of depth layers ever created, 0 for an empty
// graph. Layers form a contiguous range starting at BaseDepth and are never
// removed, so this equals the deepest layer number. The base layer counts
// even when promotion has drained it.
func (g *Graph) Depth() Depth { return Depth(len(g.buckets)) }
