package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/matzehuels/babelgraph/pkg/cache"
	"github.com/matzehuels/babelgraph/pkg/graph"
	"github.com/matzehuels/babelgraph/pkg/observability"
)

// VertexReport holds the per-vertex metrics of a [Report].
type VertexReport struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Color       int     `json:"color"`
	InDegree    int     `json:"in_degree"`
	OutDegree   int     `json:"out_degree"`
	AveragePath float64 `json:"average_path"` // -1 when some target is unreachable
	Closeness   float64 `json:"closeness"`
	PageRank    float64 `json:"pagerank"`
	Clustering  float64 `json:"clustering"`
}

// Report bundles every metric the package computes for one graph.
type Report struct {
	VertexCount           int            `json:"vertex_count"`
	EdgeCount             int            `json:"edge_count"`
	Directed              bool           `json:"directed"`
	AveragePathLength     float64        `json:"average_path_length"`
	HomophilicDyadDensity float64        `json:"homophilic_dyad_density"`
	Iterations            int            `json:"pagerank_iterations"`
	Damping               float64        `json:"pagerank_damping"`
	Vertices              []VertexReport `json:"vertices"`
}

// Vertex returns the metrics of one vertex.
func (r *Report) Vertex(id int) (VertexReport, bool) {
	for _, v := range r.Vertices {
		if v.ID == id {
			return v, true
		}
	}
	return VertexReport{}, false
}

// Analyze computes a full [Report]. The context is checked between stages;
// the O(V³) shortest-path stage itself is not interruptible.
func Analyze(ctx context.Context, g *graph.Graph, opts ...PageRankOption) (r *Report, err error) {
	hooks := observability.Engine()
	hooks.OnAnalysisStart(ctx, g.VertexCount())
	start := time.Now()
	defer func() { hooks.OnAnalysisComplete(ctx, time.Since(start), err) }()

	cfg := pageRankConfig{iterations: DefaultIterations, damping: DefaultDamping}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dist := ShortestPaths(g)
	avg := dist.AveragePathLengths()
	closeness := dist.ClosenessCentrality()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rank := PageRank(g, opts...)
	clustering := ClusteringCoefficients(g)

	r = &Report{
		VertexCount:           g.VertexCount(),
		EdgeCount:             g.EdgeCount(),
		Directed:              g.Directed(),
		AveragePathLength:     dist.GraphAveragePathLength(),
		HomophilicDyadDensity: HomophilicDyadDensity(g),
		Iterations:            cfg.iterations,
		Damping:               cfg.damping,
		Vertices:              make([]VertexReport, 0, g.VertexCount()),
	}
	g.Vertices(func(v graph.Vertex) bool {
		r.Vertices = append(r.Vertices, VertexReport{
			ID:          v.ID,
			Name:        v.Name,
			Color:       v.Color,
			InDegree:    g.InDegree(v.ID),
			OutDegree:   g.OutDegree(v.ID),
			AveragePath: avg[v.ID],
			Closeness:   closeness[v.ID],
			PageRank:    rank[v.ID],
			Clustering:  clustering[v.ID],
		})
		return true
	})
	return r, nil
}

// AnalyzeCached returns the cached report for graphHash if present and
// otherwise computes and stores it. The boolean reports a cache hit. A
// corrupt entry is recomputed and overwritten. New entries expire after ttl;
// zero keeps them until evicted.
func AnalyzeCached(ctx context.Context, c cache.Cache, keyer cache.Keyer, graphHash string, ttl time.Duration, g *graph.Graph, opts ...PageRankOption) (*Report, bool, error) {
	cfg := pageRankConfig{iterations: DefaultIterations, damping: DefaultDamping}
	for _, opt := range opts {
		opt(&cfg)
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	key := keyer.AnalysisKey(graphHash, cache.AnalysisKeyOpts{
		PageRankIterations: cfg.iterations,
		Damping:            cfg.damping,
	})

	var cached Report
	hit, err := cache.GetJSON(ctx, c, key, &cached)
	if err != nil && !errors.Is(err, cache.ErrCorrupt) {
		return nil, false, fmt.Errorf("read analysis cache: %w", err)
	}
	if hit {
		return &cached, true, nil
	}

	r, err := Analyze(ctx, g, opts...)
	if err != nil {
		return nil, false, err
	}
	if err := cache.SetJSON(ctx, c, key, r, ttl); err != nil {
		return r, false, fmt.Errorf("write analysis cache: %w", err)
	}
	return r, false, nil
}
