// Package nodelink renders graphs as node-link diagrams with Graphviz.
//
// # Usage
//
// Convert a graph to DOT, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Labels: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Positions
//
// The diagram reuses the layout already stored in the graph. Every node is
// pinned at its x and y coordinates (scaled by [Options.Scale]) and the DOT
// source selects the neato engine, which keeps pinned positions instead of
// computing its own. Run one of the layout algorithms first; a graph whose
// vertices all sit at the origin renders as a single stack.
//
// # Colors
//
// Nodes are filled with the palette color of their group tag. See
// [palette.Palette] for how tags map to colors.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion lives in the parent render package and
// requires librsvg (rsvg-convert).
//
// [palette.Palette]: github.com/matzehuels/babelgraph/pkg/palette.Palette
package nodelink
