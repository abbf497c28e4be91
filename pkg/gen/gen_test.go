package gen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphforge/graphgen/pkg/gen"
	"github.com/graphforge/graphgen/pkg/graph"
)

func TestGenerateZeroDepth(t *testing.T) {
	g, err := gen.Generate(gen.Params{Depth: 0, NewVertices: 3, Seed: 42})
	require.NoError(t, err)

	require.Equal(t, 0, g.VertexCount(), "zero target depth must produce an empty graph")
	require.Equal(t, 0, g.EdgeCount())
	require.Equal(t, graph.Depth(0), g.Depth(), "an empty graph has no layers")
}

func TestGenerateRejectsNegativeParams(t *testing.T) {
	_, err := gen.Generate(gen.Params{Depth: -1, NewVertices: 1})
	require.Error(t, err)

	_, err = gen.Generate(gen.Params{Depth: 1, NewVertices: -1})
	require.Error(t, err)
}

func TestGenerateDeterministic(t *testing.T) {
	p := gen.Params{Depth: 6, NewVertices: 3, Seed: 1337}

	a, err := gen.Generate(p)
	require.NoError(t, err)
	b, err := gen.Generate(p)
	require.NoError(t, err)

	require.Equal(t, a.VertexCount(), b.VertexCount())
	require.Equal(t, a.Edges(), b.Edges(), "same seed must reproduce the exact edge sequence")
	for _, v := range a.Vertices() {
		require.Equal(t, a.VertexDepth(v.ID), b.VertexDepth(v.ID))
	}
}

func TestGenerateDepthOne(t *testing.T) {
	// With a target depth of one the branch probability is pinned at 1.0,
	// so the root gets exactly NewVertices children on layer 2 and growth
	// stops there. No layer 3 exists, which rules yellow and red out.
	g, err := gen.Generate(gen.Params{Depth: 1, NewVertices: 3, Seed: 7})
	require.NoError(t, err)

	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, graph.Depth(2), g.Depth())

	counts := countColors(g)
	require.Equal(t, 3, counts[graph.ColorGrey])
	require.Zero(t, counts[graph.ColorYellow])
	require.Zero(t, counts[graph.ColorRed])
	for _, e := range g.Edges() {
		if e.Color == graph.ColorGreen {
			require.Equal(t, e.From, e.To, "green edges must be self-loops")
		}
	}
}

func TestGenerateBranchless(t *testing.T) {
	// Zero trials per vertex keeps the graph at the lone root; the grey
	// phase halts after the first layer and the later phases find no
	// candidates except green loops on the root itself.
	g, err := gen.Generate(gen.Params{Depth: 5, NewVertices: 0, Seed: 99})
	require.NoError(t, err)

	require.Equal(t, 1, g.VertexCount())
	require.Equal(t, graph.BaseDepth, g.Depth())
	for _, e := range g.Edges() {
		require.Equal(t, graph.ColorGreen, e.Color)
		require.Equal(t, graph.VertexID(0), e.From)
		require.Equal(t, graph.VertexID(0), e.To)
	}
}

func TestGenerateInvariants(t *testing.T) {
	g, err := gen.Generate(gen.Params{Depth: 7, NewVertices: 3, Seed: 42})
	require.NoError(t, err)

	require.GreaterOrEqual(t, g.VertexCount(), 1, "a positive target depth always seeds a root")
	require.LessOrEqual(t, g.Depth(), graph.Depth(7), "growth must not overshoot the target for targets above one")

	// Layers are contiguous and non-empty from the base down.
	for d := graph.BaseDepth; d <= g.Depth(); d++ {
		require.NotEmpty(t, g.VerticesAtDepth(d), "layer %d must not be empty", d)
	}

	pairEdges := make(map[[2]graph.VertexID]int)
	for _, e := range g.Edges() {
		span := g.VertexDepth(e.To) - g.VertexDepth(e.From)
		switch e.Color {
		case graph.ColorGrey:
			require.Equal(t, graph.Depth(1), span, "grey edge %d must span one layer", e.ID)
			first := g.ConnectedEdges(e.To)[0]
			require.Equal(t, e.ID, first, "grey edge %d must be its target's first edge", e.ID)
		case graph.ColorGreen:
			require.Equal(t, e.From, e.To, "green edge %d must be a self-loop", e.ID)
		case graph.ColorYellow:
			require.Equal(t, graph.Depth(1), span, "yellow edge %d must span one layer", e.ID)
		case graph.ColorRed:
			require.Equal(t, graph.Depth(2), span, "red edge %d must span two layers", e.ID)
		}
		if e.From != e.To {
			pairEdges[[2]graph.VertexID{e.From, e.To}]++
		}
	}

	// A yellow edge is always the only edge between its endpoints.
	for _, e := range g.Edges() {
		if e.Color == graph.ColorYellow {
			require.Equal(t, 1, pairEdges[[2]graph.VertexID{e.From, e.To}],
				"yellow edge %d must be the sole edge between %d and %d", e.ID, e.From, e.To)
		}
	}
}

func countColors(g *graph.Graph) map[graph.Color]int {
	counts := make(map[graph.Color]int)
	for _, e := range g.Edges() {
		counts[e.Color]++
	}
	return counts
}
