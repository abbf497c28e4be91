// Package graphio provides the canonical JSON document format for
// layered graphs.
//
// # Overview
//
// This package converts between the in-memory [graph.Graph] and a flat
// JSON document used everywhere a graph crosses a boundary:
//
//   - File output from the command line (graph.json)
//   - HTTP API request and response bodies
//   - Stored records in the file and MongoDB stores
//   - Cached generation results
//
// The same structs carry bson tags so stored documents keep the exact
// wire shape.
//
// # JSON Format
//
// A document has a depth field and two arrays:
//
//	{
//	  "depth": 2,
//	  "vertices": [
//	    {"id": 0, "edge_ids": [0], "depth": 1},
//	    {"id": 1, "edge_ids": [0], "depth": 2}
//	  ],
//	  "edges": [
//	    {"id": 0, "vertex_ids": [0, 1], "color": "grey"}
//	  ]
//	}
//
// Vertex and edge ids are contiguous from zero in creation order.
// "vertex_ids" holds [from, to]. "color" is one of grey, green, yellow,
// or red. "edge_ids" lists every edge incident to the vertex and is []
// for an edgeless vertex, never null.
//
// # Validation
//
// Colors and depths are derived from construction order, not stored
// state, so [ToGraph] replays the document through the normal build path
// and checks every derived value against the record. A document that
// disagrees with its own replay is rejected with an INVALID_GRAPH error.
// This catches hand-edited files and any producer drift early, before a
// bad graph reaches rendering or storage.
//
// # Reading and Writing
//
// Use [WriteGraphFile] and [ReadGraphFile] for file paths, or
// [WriteGraph] and [ReadGraph] for any io.Writer or io.Reader:
//
//	if err := graphio.WriteGraphFile(g, "graph.json"); err != nil {
//	    log.Fatal(err)
//	}
//
// [MarshalGraph] returns the same bytes [WriteGraph] produces, and
// [UnmarshalDocument] decodes a document without validating it.
package graphio
