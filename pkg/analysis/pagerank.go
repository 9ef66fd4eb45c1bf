package analysis

import (
	"github.com/matzehuels/babelgraph/pkg/graph"
)

// Default PageRank parameters.
const (
	DefaultIterations = 100
	DefaultDamping    = 0.85
)

// PageRankOption customizes [PageRank].
type PageRankOption func(*pageRankConfig)

type pageRankConfig struct {
	iterations int
	damping    float64
}

// WithIterations sets the number of update rounds. Panics on n < 0.
func WithIterations(n int) PageRankOption {
	if n < 0 {
		panic("analysis: WithIterations(n<0)")
	}
	return func(c *pageRankConfig) { c.iterations = n }
}

// WithDamping sets the damping factor. Panics outside [0, 1].
func WithDamping(d float64) PageRankOption {
	if d < 0 || d > 1 {
		panic("analysis: WithDamping(d out of [0,1])")
	}
	return func(c *pageRankConfig) { c.damping = d }
}

// PageRank scores every vertex by the votes of its in-neighbors.
//
// Every vertex starts at 1/N. Each round visits the vertices in ascending id
// order and sets
//
//	PR(v) = (1 - d) + d * Σ PR(u) / outdeg(u)   over in-neighbors u
//
// Updates are applied in place, so a vertex visited later in a round
// already sees the new scores of earlier ones. The base term is not divided
// by N: the result is a fixed point of the update but not a probability
// distribution.
func PageRank(g *graph.Graph, opts ...PageRankOption) map[int]float64 {
	cfg := pageRankConfig{iterations: DefaultIterations, damping: DefaultDamping}
	for _, opt := range opts {
		opt(&cfg)
	}

	ids := g.VertexIDs()
	rank := make(map[int]float64, len(ids))
	if len(ids) == 0 {
		return rank
	}
	initial := 1 / float64(len(ids))
	for _, id := range ids {
		rank[id] = initial
	}

	for range cfg.iterations {
		for _, id := range ids {
			votes := 0.0
			for _, u := range g.InNeighbors(id) {
				votes += rank[u] / float64(g.OutDegree(u))
			}
			rank[id] = (1 - cfg.damping) + cfg.damping*votes
		}
	}
	return rank
}
