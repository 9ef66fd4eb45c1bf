package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/babelgraph/pkg/graph"
	"github.com/matzehuels/babelgraph/pkg/palette"
)

// infoCommand creates the info command.
func (c *CLI) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Summarize a graph file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printSummary(g.Graph, c.Config.Palette)
			return nil
		},
	}
}

// graphSummary is what the info command prints.
type graphSummary struct {
	vertices, edges      int
	directed             bool
	nextVertex, nextEdge int
	minDegree, maxDegree int
	meanDegree           float64
	groups               map[int]int
}

func summarize(g *graph.Graph) graphSummary {
	s := graphSummary{
		vertices:   g.VertexCount(),
		edges:      g.EdgeCount(),
		directed:   g.Directed(),
		nextVertex: g.NextVertexID(),
		nextEdge:   g.NextEdgeID(),
		minDegree:  -1,
		groups:     make(map[int]int),
	}
	total := 0
	g.Vertices(func(v graph.Vertex) bool {
		d := g.Degree(v.ID)
		total += d
		if s.minDegree < 0 || d < s.minDegree {
			s.minDegree = d
		}
		s.maxDegree = max(s.maxDegree, d)
		s.groups[v.Color]++
		return true
	})
	if s.vertices == 0 {
		s.minDegree = 0
	} else {
		s.meanDegree = float64(total) / float64(s.vertices)
	}
	return s
}

func printSummary(g *graph.Graph, pal palette.Palette) {
	s := summarize(g)
	kind := "directed"
	if !s.directed {
		kind = "undirected"
	}
	printKeyValue("Kind", kind)
	printKeyValue("Vertices", fmt.Sprintf("%d (next id %d)", s.vertices, s.nextVertex))
	printKeyValue("Edges", fmt.Sprintf("%d (next id %d)", s.edges, s.nextEdge))
	printKeyValue("Degree", fmt.Sprintf("min %d, max %d, mean %s", s.minDegree, s.maxDegree, formatFloat(s.meanDegree)))
	printKeyValue("Groups", formatGroups(s.groups, pal))
}

// formatGroups lists group sizes in tag order, naming each by its palette
// color.
func formatGroups(groups map[int]int, pal palette.Palette) string {
	if len(groups) == 0 {
		return "none"
	}
	tags := make([]int, 0, len(groups))
	for t := range groups {
		tags = append(tags, t)
	}
	sort.Ints(tags)
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = fmt.Sprintf("%d %s: %d", t, pal.Name(t), groups[t])
	}
	return strings.Join(parts, ", ")
}
