package cli

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/babelgraph/pkg/errors"
	"github.com/matzehuels/babelgraph/pkg/graph"
	"github.com/matzehuels/babelgraph/pkg/render"
	"github.com/matzehuels/babelgraph/pkg/render/nodelink"
)

// Export formats.
const (
	formatBGX  = "bgx"
	formatJSON = "json"
	formatDOT  = "dot"
	formatSVG  = "svg"
	formatPNG  = "png"
	formatPDF  = "pdf"
)

var exportFormats = []string{formatBGX, formatJSON, formatDOT, formatSVG, formatPNG, formatPDF}

// exportOpts holds the flags of the export command.
type exportOpts struct {
	formats string
	output  string
	scale   float64
	labels  bool
	weights bool
}

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	opts := exportOpts{}

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Convert a graph to another format or draw it",
		Long: `Convert a graph to .bgx or JSON, or draw its current layout as a node-link
diagram. Vertices are pinned at their x/y position and filled with the
palette color of their group.

Formats: bgx, json, dot, svg, png, pdf. PNG and PDF require rsvg-convert.`,
		Example: `  babelgraph export graph.bgx -f svg
  babelgraph export graph.bgx -f svg,png --labels -o drawing
  babelgraph export graph.bgx -f json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.formats, "format", "f", formatSVG, "comma-separated formats: "+strings.Join(exportFormats, ","))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output path without extension (default: input name)")
	cmd.Flags().Float64Var(&opts.scale, "scale", nodelink.DefaultScale, "inches per layout unit")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "show vertex names")
	cmd.Flags().BoolVar(&opts.weights, "weights", false, "label edges whose weight is not 1")

	return cmd
}

func (c *CLI) runExport(ctx context.Context, path string, opts exportOpts) error {
	formats, err := parseFormats(opts.formats)
	if err != nil {
		return err
	}

	g, err := loadGraph(ctx, path)
	if err != nil {
		return err
	}

	base := basePath(opts.output, path)
	var written []string
	var svg []byte // rendered at most once
	for _, f := range formats {
		out := base + "." + f
		if out == path {
			return errors.New(errors.ErrCodeInvalidPath, "refusing to overwrite input %s", path)
		}

		var data []byte
		switch f {
		case formatBGX, formatJSON:
			if err := saveGraph(g.Graph, out); err != nil {
				return err
			}
			written = append(written, out)
			continue
		case formatDOT:
			data = []byte(c.toDOT(g.Graph, opts))
		default:
			if svg == nil {
				if svg, err = c.renderSVG(ctx, g.Graph, opts); err != nil {
					return err
				}
			}
			data, err = convertSVG(ctx, svg, f)
			if err != nil {
				return err
			}
		}

		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		written = append(written, out)
	}

	printSuccess("Exported %s", path)
	for _, f := range written {
		printFile(f)
	}
	return nil
}

// parseFormats splits and checks the --format value, dropping duplicates.
func parseFormats(s string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		if !slices.Contains(exportFormats, f) {
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				"unknown format %q (want %s)", f, strings.Join(exportFormats, ", "))
		}
		seen[f] = true
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "no output format given")
	}
	return out, nil
}

func (c *CLI) toDOT(g *graph.Graph, opts exportOpts) string {
	return nodelink.ToDOT(g, nodelink.Options{
		Palette: c.Config.Palette,
		Scale:   opts.scale,
		Labels:  opts.labels,
		Weights: opts.weights,
	})
}

func (c *CLI) renderSVG(ctx context.Context, g *graph.Graph, opts exportOpts) ([]byte, error) {
	prog := newProgress(loggerFromContext(ctx))
	svg, err := nodelink.RenderSVG(ctx, c.toDOT(g, opts))
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Rendered %d vertices", g.VertexCount()))
	return svg, nil
}

func convertSVG(ctx context.Context, svg []byte, format string) ([]byte, error) {
	switch format {
	case formatPNG:
		return render.ToPNG(ctx, svg, 2.0)
	case formatPDF:
		return render.ToPDF(ctx, svg)
	}
	return svg, nil
}
