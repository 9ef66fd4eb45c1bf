package analysis

import (
	"github.com/matzehuels/babelgraph/pkg/graph"
)

// ClusteringCoefficient returns the fraction of ordered neighbor pairs
// (a, b), a != b, with a directed edge a->b. The neighbor set is the
// deduplicated union of in- and out-neighbors. Vertices with fewer than two
// neighbors (including unknown ids) report 0.
func ClusteringCoefficient(g *graph.Graph, id int) float64 {
	ns := g.Neighbors(id)
	k := len(ns)
	if k < 2 {
		return 0
	}
	links := 0
	for _, a := range ns {
		for _, b := range ns {
			if a != b && g.FromToConnected(a, b) {
				links++
			}
		}
	}
	return float64(links) / float64(k*(k-1))
}

// ClusteringCoefficients returns [ClusteringCoefficient] for every vertex.
func ClusteringCoefficients(g *graph.Graph) map[int]float64 {
	out := make(map[int]float64, g.VertexCount())
	g.Vertices(func(v graph.Vertex) bool {
		out[v.ID] = ClusteringCoefficient(g, v.ID)
		return true
	})
	return out
}

// HomophilicDyadDensity returns the fraction of edge records whose
// endpoints share a color/group tag. An edgeless graph reports 0.
func HomophilicDyadDensity(g *graph.Graph) float64 {
	same, total := 0, 0
	g.Edges(func(e graph.Edge) bool {
		total++
		if g.Color(e.From) == g.Color(e.To) {
			same++
		}
		return true
	})
	if total == 0 {
		return 0
	}
	return float64(same) / float64(total)
}
