package dot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/graphforge/graphgen/pkg/graph"
)

// Options configures DOT output.
type Options struct {
	// Detailed includes the depth layer in vertex labels.
	// When false, only the vertex id is shown.
	Detailed bool
}

// ToDOT converts a graph to Graphviz DOT format.
// Vertices are drawn as circles labeled by id, top layer first
// (rankdir=TB), and every edge carries its color as a DOT color
// attribute. The resulting DOT string can be rendered using
// [RenderSVG] or [RenderPNG].
func ToDOT(g *graph.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=circle, fontsize=12];\n")
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		label := fmt.Sprintf("%d", v.ID)
		if opts.Detailed {
			label = fmt.Sprintf("%d\nlayer %d", v.ID, g.VertexDepth(v.ID))
		}
		fmt.Fprintf(&buf, "  %d [label=%q];\n", v.ID, label)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %d -> %d [color=%s];\n", e.From, e.To, e.Color)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
