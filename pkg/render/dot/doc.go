// Package dot renders layered graphs as Graphviz node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz,
// where vertices appear as circles connected by colored arrows. Edge
// colors carry over directly since grey, green, yellow, and red are all
// valid Graphviz color names.
//
// # Usage
//
// Convert a graph to DOT format, then render to SVG or PNG:
//
//	src := dot.ToDOT(g, dot.Options{Detailed: false})
//	svg, err := dot.RenderSVG(ctx, src)
//	png, err := dot.RenderPNG(ctx, src)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, vertex labels include the depth layer
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG] or [RenderPNG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// The generated DOT uses top-to-bottom layout (rankdir=TB) so shallow
// layers appear above deep ones.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process
// rendering; no external Graphviz installation is needed.
package dot
