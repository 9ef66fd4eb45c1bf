// Package render turns graphs into images.
//
// The [nodelink] subpackage builds Graphviz DOT from a graph, using the
// stored vertex positions and group colors, and renders it to SVG in
// process. This package converts that SVG to other formats with the
// external rsvg-convert tool (from librsvg):
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// When rsvg-convert is missing the conversion fails with
// [errors.ErrCodeUnsupported].
//
// [nodelink]: github.com/matzehuels/babelgraph/pkg/render/nodelink
// [errors.ErrCodeUnsupported]: github.com/matzehuels/babelgraph/pkg/errors.ErrCodeUnsupported
package render
