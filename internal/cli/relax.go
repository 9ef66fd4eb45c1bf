package cli

import (
	"fmt"
	"math/rand/v2"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/babelgraph/pkg/errors"
	"github.com/matzehuels/babelgraph/pkg/layout"
)

// relaxCommand creates the relax command, which runs the self-organizing
// auto-arrange step on an existing layout.
func (c *CLI) relaxCommand() *cobra.Command {
	var (
		steps  int
		force  float64
		minLen float64
		maxLen float64
		watch  bool
		seed   uint64
		output string
	)

	cmd := &cobra.Command{
		Use:   "relax <file>",
		Short: "Relax a layout with repeated self-organizing steps",
		Long: `Relax a layout by running the self-organizing step a number of times. Each
step pulls connected vertices toward the preferred edge length range and
pushes every pair of vertices apart.

If every vertex sits at the same point, as after "generate --layout none",
the vertices are first spread at random inside the configured bounds.

With --watch the steps run interactively at the configured interval on a
copy of the graph: space pauses, +/- change the speed, q saves and quits,
and esc quits without saving.`,
		Example: `  babelgraph relax graph.bgx --steps 200
  babelgraph relax graph.bgx --watch --force 0.8`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := errors.ValidateCount("steps", steps); err != nil {
				return err
			}

			a := c.Config.Arranger()
			if cmd.Flags().Changed("force") {
				a.Force = force
			}
			if cmd.Flags().Changed("min") {
				a.Min = minLen
			}
			if cmd.Flags().Changed("max") {
				a.Max = maxLen
			}

			g, err := loadGraph(ctx, args[0])
			if err != nil {
				return err
			}

			logger := loggerFromContext(ctx)
			if stacked(g.Graph) {
				// Coincident vertices push each other nowhere.
				seed = checkSeed(ctx, seed)
				layout.Random(g.Graph, rand.New(rand.NewPCG(seed, seed)), c.layoutBounds())
				logger.Debug("spread stacked vertices", "vertices", g.VertexCount())
			}

			prog := newProgress(logger)
			if watch {
				work := g.Graph.Clone()
				p := tea.NewProgram(newWatchModel(work, a, steps), tea.WithContext(ctx))
				final, err := p.Run()
				if err != nil {
					return fmt.Errorf("watch: %w", err)
				}
				m := final.(watchModel)
				prog.done(fmt.Sprintf("Ran %d relaxation steps", m.steps))
				if m.discard {
					printInfo("Discarded %d relaxation steps, %s is unchanged", m.steps, args[0])
					return nil
				}
				return saveAndReport(work, outputPath(output, args[0]))
			}

			a.Enabled = true
			ran := 0
			for range steps {
				if err := ctx.Err(); err != nil {
					return err
				}
				if a.Tick(g.Graph) {
					ran++
				}
			}
			prog.done(fmt.Sprintf("Ran %d relaxation steps", ran))

			return saveAndReport(g.Graph, outputPath(output, args[0]))
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 10, "number of steps (with --watch, 0 runs until quit)")
	cmd.Flags().Float64Var(&force, "force", 0, "repulsion strength in (0, 1] (default from config)")
	cmd.Flags().Float64Var(&minLen, "min", 0, "preferred minimum edge length (default from config)")
	cmd.Flags().Float64Var(&maxLen, "max", 0, "preferred maximum edge length (default from config)")
	cmd.Flags().BoolVar(&watch, "watch", false, "run interactively")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for spreading stacked vertices (0 picks one)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")

	return cmd
}
