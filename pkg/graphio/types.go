package graphio

import (
	"encoding/json"

	"github.com/graphforge/graphgen/pkg/errors"
	"github.com/graphforge/graphgen/pkg/graph"
)

// Document is the canonical serialization format for layered graphs.
// Used for file output, API responses, storage, and caching.
//
// The format is human-readable and designed for round-trip fidelity:
// generate, export, re-import produces an identical graph.
type Document struct {
	Depth    int            `json:"depth" bson:"depth"`
	Vertices []VertexRecord `json:"vertices" bson:"vertices"`
	Edges    []EdgeRecord   `json:"edges" bson:"edges"`
}

// VertexRecord is the wire form of a single vertex. EdgeIDs lists every
// incident edge in registration order and encodes as [] when empty.
type VertexRecord struct {
	ID      int   `json:"id" bson:"id"`
	EdgeIDs []int `json:"edge_ids" bson:"edge_ids"`
	Depth   int   `json:"depth" bson:"depth"`
}

// EdgeRecord is the wire form of a single edge. VertexIDs holds the
// endpoints as [from, to], and Color is the lowercase color name.
type EdgeRecord struct {
	ID        int    `json:"id" bson:"id"`
	VertexIDs [2]int `json:"vertex_ids" bson:"vertex_ids"`
	Color     string `json:"color" bson:"color"`
}

// FromGraph converts a graph to its serialization format.
// Vertices and edges keep their insertion order, so ids come out
// contiguous from zero. Empty collections encode as [], never null.
func FromGraph(g *graph.Graph) *Document {
	doc := &Document{
		Depth:    int(g.Depth()),
		Vertices: make([]VertexRecord, 0, g.VertexCount()),
		Edges:    make([]EdgeRecord, 0, g.EdgeCount()),
	}

	for _, v := range g.Vertices() {
		connected := g.ConnectedEdges(v.ID)
		ids := make([]int, len(connected))
		for i, e := range connected {
			ids[i] = int(e)
		}
		doc.Vertices = append(doc.Vertices, VertexRecord{
			ID:      int(v.ID),
			EdgeIDs: ids,
			Depth:   int(g.VertexDepth(v.ID)),
		})
	}

	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeRecord{
			ID:        int(e.ID),
			VertexIDs: [2]int{int(e.From), int(e.To)},
			Color:     e.Color.String(),
		})
	}

	return doc
}

// ToGraph rebuilds a graph from its serialization format.
//
// The document is replayed through the normal construction path: vertices
// are added in id order, then edges. Because colors and depths are derived
// from construction order rather than stored state, every derived value is
// checked against the record as the replay proceeds. Any disagreement means
// the document does not describe a graph this package could have produced,
// and ToGraph returns an INVALID_GRAPH error saying which record broke.
func ToGraph(doc *Document) (*graph.Graph, error) {
	g := graph.New()

	for i, v := range doc.Vertices {
		if v.ID != i {
			return nil, errors.New(errors.ErrCodeInvalidGraph, "vertex %d: ids must be contiguous from 0, got %d", i, v.ID)
		}
		g.AddVertex()
	}

	for i, e := range doc.Edges {
		if e.ID != i {
			return nil, errors.New(errors.ErrCodeInvalidGraph, "edge %d: ids must be contiguous from 0, got %d", i, e.ID)
		}
		want, err := graph.ParseColor(e.Color)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "edge %d", e.ID)
		}
		from, to := graph.VertexID(e.VertexIDs[0]), graph.VertexID(e.VertexIDs[1])
		id, err := g.AddEdge(from, to)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "edge %d (%d->%d)", e.ID, e.VertexIDs[0], e.VertexIDs[1])
		}
		if got, _ := g.Edge(id); got.Color != want {
			return nil, errors.New(errors.ErrCodeInvalidGraph, "edge %d (%d->%d): recorded color %s, derived %s", e.ID, e.VertexIDs[0], e.VertexIDs[1], e.Color, got.Color)
		}
	}

	for _, v := range doc.Vertices {
		if got := int(g.VertexDepth(graph.VertexID(v.ID))); got != v.Depth {
			return nil, errors.New(errors.ErrCodeInvalidGraph, "vertex %d: recorded depth %d, derived %d", v.ID, v.Depth, got)
		}
	}

	if got := int(g.Depth()); got != doc.Depth {
		return nil, errors.New(errors.ErrCodeInvalidGraph, "recorded graph depth %d, derived %d", doc.Depth, got)
	}

	return g, nil
}

// UnmarshalDocument deserializes JSON bytes to a Document without
// validating it. Use [ToGraph] to validate and rebuild the graph.
func UnmarshalDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
