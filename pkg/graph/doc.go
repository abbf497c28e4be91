// Package graph provides an append-only directed multigraph organized into
// depth layers, with edges classified into four colors at creation time.
//
// # Overview
//
// Graphgen builds synthetic layered graphs: a tree-like grey skeleton grown
// layer by layer, decorated with green self-loops, yellow edges between
// adjacent layers and red edges that skip a layer. This package provides the
// data structure those generators build on. Vertices carry integer IDs
// assigned from 0 and a depth starting at [BaseDepth]; edges are colored
// once, when they are added, and never recolored.
//
// # Basic Usage
//
// Create a graph with [New], add vertices with [Graph.AddVertex] and connect
// them with [Graph.AddEdge]. The color of each edge is derived from the
// endpoints at insertion time:
//
//	g := graph.New()
//	root := g.AddVertex()
//	child := g.AddVertex()
//	g.AddEdge(root, child) // grey: child had no edges, promoted to depth 2
//	g.AddEdge(root, root)  // green: self-loop
//
// Query structure with [Graph.VerticesAtDepth], [Graph.ConnectedEdges],
// [Graph.VertexDepth] and related accessors. All reads are idempotent and
// never mutate the graph.
//
// # Color Rules
//
// [Graph.EdgeColor] evaluates the rules in a fixed order and the first match
// wins:
//
//   - [ColorGreen]: the endpoints are the same vertex.
//   - [ColorGrey]: the target has no incident edges yet. The target is
//     promoted to one layer below the source; this is the only operation
//     that ever changes a depth.
//   - [ColorYellow]: the target sits exactly one layer deeper and shares no
//     edge with the source yet.
//   - [ColorRed]: the target sits exactly two layers deeper.
//
// Pairs that fit no rule yield [ErrUnclassifiableEdge]; a generator that
// respects the placement rules never triggers it.
//
// # Depth Layers
//
// Layers are 1-based and contiguous. A fresh vertex always enters layer 1
// and moves at most once, when its first grey edge arrives. Buckets are
// never removed: [Graph.Depth] counts every layer ever created, including a
// base layer that promotion has emptied.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. Generation is strictly
// single-goroutine; synchronize externally if you must share an instance.
package graph
