package cli

import (
	"context"
	"math/rand/v2"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/babelgraph/pkg/errors"
	"github.com/matzehuels/babelgraph/pkg/graph"
	"github.com/matzehuels/babelgraph/pkg/layout"
	"github.com/matzehuels/babelgraph/pkg/observability"
)

// Layout algorithms accepted by --algo and --layout.
const (
	algoNone   = "none"
	algoRandom = "random"
	algoCircle = "circle"
	algoSpiral = "spiral"
	algoSphere = "sphere"
	algoLayers = "layers"
	algoFR     = "fr"
)

var layoutAlgorithms = []string{algoRandom, algoCircle, algoSpiral, algoSphere, algoLayers, algoFR}

func isLayoutAlgorithm(s string) bool {
	return slices.Contains(layoutAlgorithms, s)
}

// layoutCommand creates the layout command.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		algo   string
		radius float64
		seed   uint64
		output string
	)

	cmd := &cobra.Command{
		Use:   "layout <file>",
		Short: "Position the vertices of a graph",
		Long: `Position the vertices of a graph with one of the placement algorithms and
write the result back (or to --output).

Algorithms:
  random   uniform inside the configured bounds
  circle   evenly spaced on a circle in the xy plane
  spiral   two turns of a widening spiral climbing along z
  sphere   an approximately even grid over a sphere
  layers   one row per color group, centered on the y axis
  fr       Fruchterman-Reingold force-directed placement inside the bounds`,
		Example: `  babelgraph layout graph.bgx --algo circle
  babelgraph layout graph.bgx --algo fr -o placed.bgx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !isLayoutAlgorithm(algo) {
				return errors.New(errors.ErrCodeInvalidAlgorithm,
					"unknown algorithm %q (want one of %s)", algo, strings.Join(layoutAlgorithms, ", "))
			}
			if cmd.Flags().Changed("radius") {
				if radius <= 0 {
					return errors.New(errors.ErrCodeInvalidInput, "radius must be positive, got %g", radius)
				}
				c.Config.Layout.Radius = radius
			}

			g, err := loadGraph(ctx, args[0])
			if err != nil {
				return err
			}
			seed = checkSeed(ctx, seed)
			if err := c.applyLayout(ctx, g.Graph, algo, rand.New(rand.NewPCG(seed, seed))); err != nil {
				return err
			}
			out := outputPath(output, args[0])
			if err := saveAndReport(g.Graph, out); err != nil {
				return err
			}
			printNextStep("Draw it", "babelgraph export "+out+" -f svg")
			return nil
		},
	}

	cmd.Flags().StringVarP(&algo, "algo", "a", algoFR, "algorithm: "+strings.Join(layoutAlgorithms, "|"))
	cmd.Flags().Float64Var(&radius, "radius", 0, "radius for circle, spiral, sphere and layers (default from config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")

	return cmd
}

// applyLayout runs one placement algorithm on g and reports it to the hooks.
func (c *CLI) applyLayout(ctx context.Context, g *graph.Graph, algo string, rng *rand.Rand) error {
	hooks := observability.Engine()
	hooks.OnLayoutStart(ctx, algo, g.VertexCount())
	start := time.Now()

	var err error
	r := c.Config.Layout.Radius
	switch algo {
	case algoRandom:
		layout.Random(g, rng, c.layoutBounds())
	case algoCircle:
		layout.Circle(g, r)
	case algoSpiral:
		layout.Spiral(g, r)
	case algoSphere:
		layout.Sphere(g, r)
	case algoLayers:
		layout.LayersByGroup(g, r, c.Config.Layout.NodeSize)
	case algoFR:
		if stacked(g) {
			// Coincident vertices exert no force on each other.
			layout.Random(g, rng, c.layoutBounds())
		}
		sp := newSpinner(ctx, os.Stderr, "Placing %d vertices...", g.VertexCount())
		sp.Start()
		err = layout.FruchtermanReingold(g, c.layoutBounds(), c.Config.FROptions()...)
		sp.Stop()
	default:
		err = errors.New(errors.ErrCodeInvalidAlgorithm, "unknown algorithm %q", algo)
	}

	hooks.OnLayoutComplete(ctx, algo, time.Since(start), err)
	if err != nil {
		return wrapInput(err, "layout %s", algo)
	}
	loggerFromContext(ctx).Debug("placed vertices", "algorithm", algo, "vertices", g.VertexCount())
	return nil
}

// stacked reports whether a graph of two or more vertices has them all at
// the same point.
func stacked(g *graph.Graph) bool {
	if g.VertexCount() < 2 {
		return false
	}
	first, same := true, true
	var p0 r3.Vec
	g.Vertices(func(v graph.Vertex) bool {
		if first {
			p0, first = v.Position, false
			return true
		}
		same = v.Position == p0
		return same
	})
	return same
}
