package cli

import (
	"context"
	stderrors "errors"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/babelgraph/pkg/errors"
	"github.com/matzehuels/babelgraph/pkg/generate"
	"github.com/matzehuels/babelgraph/pkg/graph"
	"github.com/matzehuels/babelgraph/pkg/layout"
	"github.com/matzehuels/babelgraph/pkg/observability"
)

// Generator kinds accepted by the generate command.
const (
	kindEmpty    = "empty"
	kindComplete = "complete"
	kindRandom   = "random"
	kindKRegular = "kregular"
	kindTree     = "tree"
	kindBanquet  = "banquet"
)

var generatorKinds = []string{kindEmpty, kindComplete, kindRandom, kindKRegular, kindTree, kindBanquet}

// generateOpts holds the flags of the generate command.
type generateOpts struct {
	vertices    int
	density     float64
	k           int
	generations int
	groups      int
	mu          float64
	seed        uint64
	undirected  bool
	maxAttempts int
	layout      string
	output      string
}

// validate checks flag ranges before any work is done.
func (o *generateOpts) validate(kind string) error {
	if err := errors.ValidateCount("vertices", o.vertices); err != nil {
		return err
	}
	if err := errors.ValidateCount("max-attempts", o.maxAttempts); err != nil {
		return err
	}
	switch kind {
	case kindRandom:
		return errors.ValidateProbability("density", o.density)
	case kindKRegular:
		return errors.ValidateCount("k", o.k)
	case kindTree:
		return errors.ValidateCount("generations", o.generations)
	case kindBanquet:
		if err := errors.ValidateProbability("density", o.density); err != nil {
			return err
		}
		return errors.ValidateProbability("mu", o.mu)
	}
	return nil
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{}

	cmd := &cobra.Command{
		Use:   "generate <kind>",
		Short: "Build a graph from a generator",
		Long: `Build a graph from one of the classic generators and write it as .bgx or JSON.

Kinds:
  empty      n isolated vertices
  complete   every ordered pair connected
  random     density * n(n-1) edges drawn uniformly
  kregular   circular lattice, each vertex linked to its k nearest neighbors
  tree       binary tree in heap order (use --generations for a full tree)
  banquet    homophily-biased undirected graph over round-robin groups

Vertices are placed at random inside the configured bounds unless --layout
is set to another algorithm or to "none".`,
		Example: `  babelgraph generate random -n 50 --density 0.05 -o random.bgx
  babelgraph generate banquet -n 40 --groups 4 --mu 0.8 --seed 7
  babelgraph generate tree --generations 5 --layout layers`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: generatorKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.vertices, "vertices", "n", 10, "number of vertices")
	cmd.Flags().Float64Var(&opts.density, "density", 0.1, "edge density in [0, 1] (random, banquet)")
	cmd.Flags().IntVar(&opts.k, "k", 4, "neighbors per vertex (kregular)")
	cmd.Flags().IntVar(&opts.generations, "generations", 0, "full tree depth; overrides -n (tree)")
	cmd.Flags().IntVar(&opts.groups, "groups", 2, "number of groups (banquet)")
	cmd.Flags().Float64Var(&opts.mu, "mu", 0.5, "homophily in [0, 1] (banquet)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().BoolVar(&opts.undirected, "undirected", false, "add every connection in both directions")
	cmd.Flags().IntVar(&opts.maxAttempts, "max-attempts", 0, "cap rejection sampling attempts (0 = unbounded)")
	cmd.Flags().StringVar(&opts.layout, "layout", algoRandom, "initial layout algorithm, or none")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "graph.bgx", "output file (.bgx or .json)")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, kind string, opts generateOpts) error {
	if err := opts.validate(kind); err != nil {
		return err
	}
	if opts.layout != algoNone && !isLayoutAlgorithm(opts.layout) {
		return errors.New(errors.ErrCodeInvalidAlgorithm, "unknown layout %q", opts.layout)
	}

	seed := checkSeed(ctx, opts.seed)
	genOpts := []generate.Option{generate.WithSeed(seed)}
	if opts.undirected {
		genOpts = append(genOpts, generate.WithUndirected())
	}
	if opts.maxAttempts > 0 {
		genOpts = append(genOpts, generate.WithMaxAttempts(opts.maxAttempts))
	}

	hooks := observability.Engine()
	hooks.OnGenerateStart(ctx, kind, opts.vertices)
	sp := newSpinner(ctx, os.Stderr, "Generating %s graph...", kind)
	sp.Start()
	start := time.Now()
	g, err := buildGraph(kind, opts, genOpts)
	if g != nil {
		hooks.OnGenerateComplete(ctx, kind, g.VertexCount(), g.EdgeCount(), time.Since(start), err)
	} else {
		hooks.OnGenerateComplete(ctx, kind, 0, 0, time.Since(start), err)
	}

	switch {
	case stderrors.Is(err, generate.ErrNotConverged) && g != nil:
		sp.StopWithError("%v; keeping the partial graph (%d edges)", err, g.EdgeCount())
	case err != nil:
		sp.Stop()
		return wrapInput(err, "generate %s", kind)
	default:
		sp.StopWithSuccess("Generated %d vertices, %d edges", g.VertexCount(), g.EdgeCount())
	}

	if opts.layout != algoNone {
		rng := rand.New(rand.NewPCG(seed, seed))
		if err := c.applyLayout(ctx, g, opts.layout, rng); err != nil {
			return err
		}
	}

	if err := saveAndReport(g, opts.output); err != nil {
		return err
	}
	printNextStep("Lay it out", "babelgraph layout "+opts.output+" --algo fr")
	return nil
}

// buildGraph dispatches to the generator for kind.
func buildGraph(kind string, o generateOpts, opts []generate.Option) (*graph.Graph, error) {
	switch kind {
	case kindEmpty:
		return generate.Empty(o.vertices, opts...)
	case kindComplete:
		return generate.Complete(o.vertices, opts...)
	case kindRandom:
		return generate.Random(o.vertices, o.density, opts...)
	case kindKRegular:
		return generate.KRegular(o.vertices, o.k, opts...)
	case kindTree:
		if o.generations > 0 {
			return generate.BinaryTreeGenerations(o.generations, opts...)
		}
		return generate.BinaryTree(o.vertices, opts...)
	case kindBanquet:
		return generate.StrangersBanquet(o.vertices, o.groups, o.density, o.mu, opts...)
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "unknown generator %q", kind)
}

// layoutBounds returns the configured bounds for random and force-directed
// placement.
func (c *CLI) layoutBounds() layout.Bounds {
	return c.Config.LayoutBounds()
}
