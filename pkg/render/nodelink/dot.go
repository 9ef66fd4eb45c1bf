package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/babelgraph/pkg/graph"
	"github.com/matzehuels/babelgraph/pkg/palette"
)

// DefaultScale is the number of inches one layout unit spans.
const DefaultScale = 2.0

// Options configures node-link diagram rendering.
type Options struct {
	// Palette colors vertices by group tag. Nil means [palette.Default].
	Palette palette.Palette

	// Scale converts layout units to inches. Zero means [DefaultScale].
	Scale float64

	// Labels shows vertex names inside the nodes. When false nodes are
	// drawn as unlabeled circles.
	Labels bool

	// Weights labels edges with their weight when it differs from 1.
	Weights bool
}

// ToDOT converts a graph to Graphviz DOT.
//
// Each vertex is pinned at its (x, y) position; z is ignored. Nodes are
// filled with their group color. A directed graph becomes a digraph with one
// arrow per edge record. An undirected graph becomes a graph with one line
// per connection, so reciprocal records are drawn once.
func ToDOT(g *graph.Graph, opts Options) string {
	pal := opts.Palette
	if pal == nil {
		pal = palette.Default()
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = DefaultScale
	}

	kind, arrow := "digraph", "->"
	if !g.Directed() {
		kind, arrow = "graph", "--"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s G {\n", kind)
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fixedsize=true, width=0.3, fontsize=10, penwidth=0.5];\n")
	buf.WriteString("  edge [arrowsize=0.6, color=\"#555555\"];\n")
	buf.WriteString("\n")

	g.Vertices(func(v graph.Vertex) bool {
		fmt.Fprintf(&buf, "  %d [%s];\n", v.ID, nodeAttrs(v, pal, scale, opts.Labels))
		return true
	})

	buf.WriteString("\n")
	g.Edges(func(e graph.Edge) bool {
		if !g.Directed() && e.From > e.To && g.FromToConnected(e.To, e.From) {
			return true
		}
		fmt.Fprintf(&buf, "  %d %s %d", e.From, arrow, e.To)
		if opts.Weights && e.Weight != graph.DefaultWeight {
			fmt.Fprintf(&buf, " [label=%q]", strconv.FormatFloat(e.Weight, 'g', 4, 64))
		}
		buf.WriteString(";\n")
		return true
	})

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(v graph.Vertex, pal palette.Palette, scale float64, labels bool) string {
	label := ""
	if labels {
		label = v.Name
	}
	x := strconv.FormatFloat(v.Position.X*scale, 'f', 4, 64)
	y := strconv.FormatFloat(v.Position.Y*scale, 'f', 4, 64)
	return fmt.Sprintf("label=%q, fillcolor=%q, pos=\"%s,%s!\"", label, pal.Hex(v.Color), x, y)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// The layout engine is taken from the DOT source; [ToDOT] selects neato so
// pinned positions are kept.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
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
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the root svg tag with one carrying only the
// namespace, a zero-origin viewBox and matching width/height.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
