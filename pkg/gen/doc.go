// Package gen generates synthetic layered graphs from a small parameter
// set and a seed.
//
// A run builds a [graph.Graph] in four phases, always in the same order:
// grey skeleton growth layer by layer, green self-loops, yellow edges
// between adjacent layers, red edges skipping a layer. All randomness is
// drawn from one seeded PCG source, so a (Params, Seed) pair pins the
// output exactly:
//
//	g, err := gen.Generate(gen.Params{Depth: 5, NewVertices: 3, Seed: 42})
//
// Grey growth decays linearly with depth: vertices near the base branch
// almost certainly, vertices near the target depth almost never. Green
// loops fire at a flat 10%, red skips at a flat 33%. Yellow uses the
// inverse of the grey decay; see the note in the implementation.
package gen
