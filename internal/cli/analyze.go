package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/babelgraph/pkg/analysis"
	"github.com/matzehuels/babelgraph/pkg/errors"
)

// analyzeOpts holds the flags of the analyze command.
type analyzeOpts struct {
	vertex     int
	jsonOut    bool
	noCache    bool
	redis      bool
	redisAddr  string
	iterations int
	damping    float64
}

// analyzeCommand creates the analyze command.
func (c *CLI) analyzeCommand() *cobra.Command {
	opts := analyzeOpts{vertex: -1}

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Compute structural metrics of a graph",
		Long: `Compute shortest-path, centrality, PageRank, clustering and homophily metrics.

Results are cached by file contents and PageRank parameters, in the local
cache directory or, with --redis, in a shared redis instance.`,
		Example: `  babelgraph analyze graph.bgx
  babelgraph analyze graph.bgx --vertex 3
  babelgraph analyze graph.bgx --json --iterations 50 --damping 0.9`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAnalyze(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.vertex, "vertex", -1, "show only this vertex")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "always recompute")
	cmd.Flags().BoolVar(&opts.redis, "redis", false, "cache in redis at the configured address")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "", "cache in redis at this address")
	cmd.Flags().IntVar(&opts.iterations, "iterations", analysis.DefaultIterations, "PageRank iterations")
	cmd.Flags().Float64Var(&opts.damping, "damping", analysis.DefaultDamping, "PageRank damping factor in [0, 1]")

	return cmd
}

func (c *CLI) runAnalyze(ctx context.Context, path string, opts analyzeOpts) error {
	if err := errors.ValidateCount("iterations", opts.iterations); err != nil {
		return err
	}
	if err := errors.ValidateProbability("damping", opts.damping); err != nil {
		return err
	}

	g, err := loadGraph(ctx, path)
	if err != nil {
		return err
	}
	if opts.vertex >= 0 && !g.ValidVertex(opts.vertex) {
		return errors.New(errors.ErrCodeVertexNotFound, "vertex %d not in %s", opts.vertex, path)
	}

	addr := opts.redisAddr
	if addr == "" && opts.redis {
		addr = c.Config.Cache.Redis
	}
	cache, err := c.newCache(ctx, opts.noCache, addr)
	if err != nil {
		return err
	}
	defer cache.Close()

	sp := newSpinner(ctx, os.Stderr, "Analyzing %d vertices...", g.VertexCount())
	if !opts.jsonOut {
		sp.Start()
	}
	report, cached, err := analysis.AnalyzeCached(ctx, cache, c.analysisKeyer(addr != ""), g.hash, c.cacheTTL(), g.Graph,
		analysis.WithIterations(opts.iterations), analysis.WithDamping(opts.damping))
	sp.Stop()
	if err != nil {
		if report == nil {
			return err
		}
		// The report is fine; only storing it failed.
		loggerFromContext(ctx).Warn("analysis not cached", "err", err)
	}

	if opts.jsonOut {
		return printReportJSON(report, opts.vertex)
	}
	printReport(report, opts.vertex)
	printStats(report.VertexCount, report.EdgeCount, cacheTag(cached))
	return nil
}

func printReportJSON(r *analysis.Report, vertex int) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if vertex >= 0 {
		v, _ := r.Vertex(vertex)
		return enc.Encode(v)
	}
	return enc.Encode(r)
}

// printReport shows the graph-level metrics followed by a per-vertex table.
func printReport(r *analysis.Report, vertex int) {
	kind := "directed"
	if !r.Directed {
		kind = "undirected"
	}
	printKeyValue("Graph", fmt.Sprintf("%s, %d vertices, %d edges", kind, r.VertexCount, r.EdgeCount))
	printKeyValue("Avg path", pathLength(r.AveragePathLength))
	printKeyValue("Homophily", formatFloat(r.HomophilicDyadDensity))
	printKeyValue("PageRank", fmt.Sprintf("%d iterations, damping %s", r.Iterations, formatFloat(r.Damping)))
	printNewline()

	var rows [][]string
	for _, v := range r.Vertices {
		if vertex >= 0 && v.ID != vertex {
			continue
		}
		rows = append(rows, []string{
			strconv.Itoa(v.ID),
			v.Name,
			strconv.Itoa(v.InDegree),
			strconv.Itoa(v.OutDegree),
			pathLength(v.AveragePath),
			formatFloat(v.Closeness),
			formatFloat(v.PageRank),
			formatFloat(v.Clustering),
		})
	}
	if len(rows) == 0 {
		printInfo("No vertices")
		return
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Name", "In", "Out", "Avg path", "Closeness", "PageRank", "Clustering").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Println(t)
}

// pathLength prints the unreachable marker -1 as a dash.
func pathLength(f float64) string {
	if f < 0 {
		return "-"
	}
	return formatFloat(f)
}
