// Package pkg provides the core libraries for graphgen.
//
// # Overview
//
// Graphgen grows synthetic directed graphs layer by layer from a single
// root, colors every edge by the depth relationship of its endpoints, and
// serializes the result to a canonical JSON document. The pkg directory is
// organized into four main areas:
//
//  1. Domain logic ([graph], [gen], [graphio], [render/dot])
//  2. Infrastructure ([cache], [store], [observability])
//  3. Orchestration ([pipeline])
//  4. Shared services ([client], [errors], [buildinfo])
//
// # Architecture
//
// The typical data flow through graphgen:
//
//	Generation parameters (depth, new_vertices, seed)
//	         ↓
//	    [gen] package (seeded four-phase growth)
//	         ↓
//	    [graph] package (layered multigraph with colored edges)
//	         ↓
//	    [graphio] package (canonical JSON document)
//	         ↓
//	    [render/dot] package (DOT / SVG / PNG output)
//
// # Quick Start
//
// Generate a graph and write its document:
//
//	import (
//	    "github.com/graphforge/graphgen/pkg/gen"
//	    "github.com/graphforge/graphgen/pkg/graphio"
//	)
//
//	// 1. Grow a seeded graph
//	g, err := gen.Generate(gen.Params{Depth: 6, NewVertices: 3, Seed: 42})
//	if err != nil {
//	    return err
//	}
//
//	// 2. Serialize it
//	if err := graphio.WriteGraphFile(g, "graph.json"); err != nil {
//	    return err
//	}
//
// The [pipeline] package wraps the same flow with caching and rendering
// for the CLI and the HTTP API.
//
// # Main Packages
//
// Domain logic:
//   - [graph]: append-only layered multigraph with depth-derived edge colors
//   - [gen]: randomized four-phase generator (grey, green, yellow, red)
//   - [graphio]: canonical document codec with replay validation
//   - [render/dot]: Graphviz rendering
//
// Infrastructure:
//   - [cache]: byte cache with file, memory, redis and null backends
//   - [store]: named graph persistence with file and mongo backends
//   - [observability]: no-op instrumentation hooks
//
// Shared services:
//   - [pipeline]: generate → encode → render orchestration
//   - [client]: Go client for the HTTP API
//   - [errors]: structured error codes for user-facing failures
//   - [buildinfo]: build-time version metadata
package pkg
